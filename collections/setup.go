// Package collections programmatically creates the application's PocketBase
// collections and seeds default data.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup creates/ensures the quotations, price_overrides and app_settings
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "quotations", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "quotation_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "date_created"})
		c.Fields.Add(&core.TextField{Name: "customer_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_phone", Required: true})
		c.Fields.Add(&core.TextField{Name: "customer_email"})
		c.Fields.Add(&core.TextField{Name: "customer_address"})
		c.Fields.Add(&core.JSONField{Name: "items"})
		c.Fields.Add(&core.TextField{Name: "image_url"})
		c.Fields.Add(&core.NumberField{Name: "sub_total"})
		c.Fields.Add(&core.NumberField{Name: "discount_percent"})
		c.Fields.Add(&core.NumberField{Name: "discount_amount"})
		c.Fields.Add(&core.NumberField{Name: "total_gst_amount"})
		c.Fields.Add(&core.NumberField{Name: "grand_total"})
		c.Fields.Add(&core.TextField{Name: "created_by"})
		c.Fields.Add(&core.NumberField{Name: "validity_days"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "price_overrides", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "product_id", Required: true})
		c.Fields.Add(&core.TextField{Name: "product_name"})
		c.Fields.Add(&core.TextField{Name: "type"})
		c.Fields.Add(&core.NumberField{Name: "price"})
		c.Fields.Add(&core.NumberField{Name: "gst"})
		c.Fields.Add(&core.NumberField{Name: "total_price"})
		c.Fields.Add(&core.TextField{Name: "description"})
		c.Fields.Add(&core.TextField{Name: "added_by"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "app_settings", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "brand"})
		c.Fields.Add(&core.TextField{Name: "company_gst_id"})
		c.Fields.Add(&core.TextField{Name: "company_address"})
		c.Fields.Add(&core.TextField{Name: "company_email"})
		c.Fields.Add(&core.TextField{Name: "company_phone"})
		c.Fields.Add(&core.NumberField{Name: "validity_days"})
		c.Fields.Add(&core.TextField{Name: "pdf_theme"})
		c.Fields.Add(&core.JSONField{Name: "item_type_order"})
		c.Fields.Add(&core.JSONField{Name: "type_filters"})
		c.Fields.Add(&core.TextField{Name: "font_primary"})
		c.Fields.Add(&core.TextField{Name: "font_secondary"})
		c.Fields.Add(&core.TextField{Name: "font_tertiary"})
		c.Fields.Add(&core.TextField{Name: "logo_path"})
		c.Fields.Add(&core.JSONField{Name: "custom_themes"})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback populates its fields, and the collection is
// saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
