package services

import (
	"log"
	"os"
	"path/filepath"
)

// ResolveLogo returns the logo bitmap for the PDF header, or nil when none is
// available. Each stage of the chain is best-effort and swallows its own
// failure: a configured logo path first, then the bundled static asset. The
// logo is optional and never blocks an export.
func ResolveLogo(settings Settings, staticDir string) []byte {
	if settings.LogoPath != "" {
		if b, err := os.ReadFile(settings.LogoPath); err == nil {
			return b
		}
		log.Printf("logo: could not read %s, trying static asset", settings.LogoPath)
	}
	if b, err := os.ReadFile(filepath.Join(staticDir, "images", "Logo.png")); err == nil {
		return b
	}
	return nil
}
