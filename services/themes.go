package services

import (
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
)

// Theme is a named color palette applied to generated documents. Colors are
// "#rrggbb" strings so the same palette feeds both the HTML preview and the
// PDF exporter.
type Theme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Border    string `json:"border"`
	Accent    string `json:"accent"`
	PastelBg  string `json:"pastelBg"`
}

// builtinThemes maps pdf_theme keys to their palettes.
var builtinThemes = map[string]Theme{
	"default": {Primary: "#1a73e8", Secondary: "#174ea6", Border: "#d2e3fc", Accent: "#4285f4", PastelBg: "#e8f0fe"},
	"green":   {Primary: "#188038", Secondary: "#0d652d", Border: "#ceead6", Accent: "#34a853", PastelBg: "#e6f4ea"},
	"red":     {Primary: "#d93025", Secondary: "#a50e0e", Border: "#fad2cf", Accent: "#ea4335", PastelBg: "#fce8e6"},
	"purple":  {Primary: "#7b2ff2", Secondary: "#5b21b6", Border: "#e4d4fc", Accent: "#9b59f5", PastelBg: "#f3e8ff"},
	"orange":  {Primary: "#e8710a", Secondary: "#b4530a", Border: "#fde0c2", Accent: "#fa903e", PastelBg: "#feefe3"},
	"teal":    {Primary: "#12949e", Secondary: "#0b6e75", Border: "#c4ecef", Accent: "#24b0ba", PastelBg: "#e4f7f8"},
	"gray":    {Primary: "#5f6368", Secondary: "#3c4043", Border: "#dadce0", Accent: "#80868b", PastelBg: "#f1f3f4"},
}

// ResolveTheme returns the palette for a theme key. User-defined custom
// themes take precedence over the built-in palette map; an unknown key falls
// back to "default".
func ResolveTheme(key string, custom map[string]Theme) Theme {
	if t, ok := custom[key]; ok {
		return t
	}
	if t, ok := builtinThemes[key]; ok {
		return t
	}
	return builtinThemes["default"]
}

// FontSpec pairs the CSS family used by the HTML preview with the font family
// the PDF library supports.
type FontSpec struct {
	CSS string
	PDF string
}

// fontTable maps stored per-role font keys onto concrete families.
var fontTable = map[string]FontSpec{
	"segoe":   {CSS: `"Segoe UI", Tahoma, sans-serif`, PDF: fontfamily.Helvetica},
	"arial":   {CSS: `Arial, sans-serif`, PDF: fontfamily.Arial},
	"georgia": {CSS: `Georgia, serif`, PDF: fontfamily.Helvetica},
	"courier": {CSS: `"Courier New", monospace`, PDF: fontfamily.Courier},
	"verdana": {CSS: `Verdana, Geneva, sans-serif`, PDF: fontfamily.Helvetica},
}

// ResolveFont maps a stored font key to its font spec. Unknown keys fall
// back to segoe.
func ResolveFont(key string) FontSpec {
	if f, ok := fontTable[key]; ok {
		return f
	}
	return fontTable["segoe"]
}

// DocumentFonts holds the three font roles of a document.
type DocumentFonts struct {
	Primary   FontSpec
	Secondary FontSpec
	Tertiary  FontSpec
}

// ResolveFonts resolves the stored per-role font keys.
func ResolveFonts(primary, secondary, tertiary string) DocumentFonts {
	return DocumentFonts{
		Primary:   ResolveFont(primary),
		Secondary: ResolveFont(secondary),
		Tertiary:  ResolveFont(tertiary),
	}
}
