package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"leadgrid/internal/availability"
	"leadgrid/internal/domain"
	applog "leadgrid/internal/log"
	"leadgrid/internal/services"
	"leadgrid/internal/validate"
)

type AdminHandler struct {
	Catalog   *services.CatalogService
	Rules     *services.RulesService
	Addresses *services.AddressBookService
}

// GET /admin
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	products, _ := h.Catalog.ListProducts()
	rules, _ := h.Rules.List()
	records, _ := h.Addresses.ListRecords()
	return render(c, "admin_dashboard", fiber.Map{
		"ProductCount": len(products),
		"RuleCount":    len(rules),
		"AddressCount": len(records),
	})
}

// GET /admin/rules
func (h *AdminHandler) RulesPage(c *fiber.Ctx) error {
	rules, err := h.Rules.List()
	if err != nil {
		applog.Error(c, "admin.rules.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load rules"})
	}
	type ruleRow struct {
		Rule  domain.AvailabilityRule
		Scope string
	}
	rows := make([]ruleRow, 0, len(rules))
	for _, r := range rules {
		rows = append(rows, ruleRow{Rule: r, Scope: availability.FormatRuleScope(r)})
	}
	return render(c, "admin_rules", fiber.Map{"Rules": rows})
}

// POST /admin/rules
func (h *AdminHandler) CreateRule(c *fiber.Ctx) error {
	ruleType, okType := validate.RuleType(c.FormValue("type"))
	effect, okEffect := validate.RuleEffect(c.FormValue("effect"))
	plz, okPLZ := validate.OptionalPLZ(c.FormValue("postal_code"))
	if !okType || !okEffect || !okPLZ {
		return c.Status(400).SendString("invalid rule input")
	}

	var productIDs []string
	for _, id := range strings.Split(c.FormValue("product_ids"), ",") {
		if cleaned, ok := validate.ID(id); ok {
			productIDs = append(productIDs, cleaned)
		}
	}

	rule := domain.AvailabilityRule{
		Type:            domain.RuleType(ruleType),
		Effect:          domain.RuleEffect(effect),
		Active:          c.FormValue("active", "1") != "0",
		Priority:        validate.Priority(c.FormValue("priority")),
		PostalCode:      plz,
		City:            strings.TrimSpace(c.FormValue("city")),
		Street:          strings.TrimSpace(c.FormValue("street")),
		HouseNumberFrom: validate.Bound(c.FormValue("house_number_from")),
		HouseNumberTo:   validate.Bound(c.FormValue("house_number_to")),
		ProductIDs:      productIDs,
	}

	created, err := h.Rules.Create(rule)
	if err != nil {
		applog.Error(c, "admin.rules.create.fail", err, map[string]any{"type": ruleType})
		return c.Status(400).SendString("could not create rule")
	}
	applog.Audit(c, "admin.rules.create", map[string]any{"rule_id": created.ID, "scope": availability.FormatRuleScope(created)})
	return c.Redirect("/admin/rules")
}

// POST /admin/rules/:id/delete
func (h *AdminHandler) DeleteRule(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	if err := h.Rules.Delete(id); err != nil {
		applog.Error(c, "admin.rules.delete.fail", err, map[string]any{"rule_id": id})
		return c.Status(400).SendString("could not delete rule")
	}
	applog.Audit(c, "admin.rules.delete", map[string]any{"rule_id": id})
	return c.Redirect("/admin/rules")
}

// GET /admin/products
func (h *AdminHandler) ProductsPage(c *fiber.Ctx) error {
	products, err := h.Catalog.ListProducts()
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load products"})
	}
	return render(c, "admin_products", fiber.Map{"Products": products})
}

// POST /admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	id, okID := validate.ID(c.FormValue("id"))
	name, okName := validate.Name(c.FormValue("name"))
	if !okID || !okName {
		return c.Status(400).SendString("invalid product input")
	}
	p := domain.Product{ID: id, Name: name, Active: c.FormValue("active", "1") != "0"}
	if err := h.Catalog.CreateProduct(p); err != nil {
		applog.Error(c, "admin.products.create.fail", err, map[string]any{"product_id": id})
		return c.Status(400).SendString("could not create product")
	}
	applog.Audit(c, "admin.products.create", map[string]any{"product_id": id})
	return c.Redirect("/admin/products")
}

// POST /admin/products/:id/active
func (h *AdminHandler) ToggleProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).SendString("missing id")
	}
	active := c.FormValue("active") == "1"
	if err := h.Catalog.SetProductActive(id, active); err != nil {
		applog.Error(c, "admin.products.toggle.fail", err, map[string]any{"product_id": id})
		return c.Status(400).SendString("could not update product")
	}
	applog.Audit(c, "admin.products.toggle", map[string]any{"product_id": id, "active": active})
	return c.Redirect("/admin/products")
}

// GET /admin/addresses
func (h *AdminHandler) AddressesPage(c *fiber.Ctx) error {
	records, err := h.Addresses.ListRecords()
	if err != nil {
		applog.Error(c, "admin.addresses.list.fail", err, nil)
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load addresses"})
	}
	statuses, _ := h.Addresses.Statuses()
	type addrRow struct {
		Record domain.AddressRecord
		Label  string
	}
	rows := make([]addrRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, addrRow{Record: rec, Label: availability.FormatAddress(rec)})
	}
	return render(c, "admin_addresses", fiber.Map{"Addresses": rows, "Statuses": statuses})
}

// POST /admin/addresses
func (h *AdminHandler) CreateAddress(c *fiber.Ctx) error {
	street, okStreet := validate.Name(c.FormValue("street"))
	houseNo, okNo := validate.HouseNo(c.FormValue("house_number"))
	plz, okPLZ := validate.PLZ(c.FormValue("postal_code"))
	city, okCity := validate.Name(c.FormValue("city"))
	if !okStreet || !okNo || !okPLZ || !okCity {
		return c.Status(400).SendString("invalid address input")
	}

	// Split "12a" into numeric part and suffix for storage.
	i := 0
	for i < len(houseNo) && houseNo[i] >= '0' && houseNo[i] <= '9' {
		i++
	}
	num, _ := strconv.Atoi(houseNo[:i])

	rec := domain.AddressRecord{
		Street:      street,
		HouseNumber: num,
		Suffix:      houseNo[i:],
		PostalCode:  plz,
		City:        city,
	}
	created, err := h.Addresses.CreateRecord(rec)
	if err != nil {
		applog.Error(c, "admin.addresses.create.fail", err, nil)
		return c.Status(400).SendString("could not create address")
	}
	applog.Audit(c, "admin.addresses.create", map[string]any{"address_id": created.ID, "label": availability.FormatAddress(created)})
	return c.Redirect("/admin/addresses")
}

// POST /admin/addresses/:id/mappings
func (h *AdminHandler) CreateMapping(c *fiber.Ctx) error {
	addressID, okAddr := validate.ID(c.Params("id"))
	productID, okProd := validate.ID(c.FormValue("product_id"))
	statusID, okStatus := validate.ID(c.FormValue("status_id"))
	if !okAddr || !okProd || !okStatus {
		return c.Status(400).SendString("invalid mapping input")
	}

	m := domain.AvailabilityMapping{AddressID: addressID, ProductID: productID, StatusID: statusID}
	created, err := h.Addresses.RecordMapping(m)
	if err != nil {
		applog.Error(c, "admin.mappings.create.fail", err, map[string]any{"address_id": addressID})
		return c.Status(400).SendString("could not record mapping")
	}
	applog.Audit(c, "admin.mappings.create", map[string]any{
		"mapping_id": created.ID, "address_id": addressID, "product_id": productID, "status_id": statusID,
	})
	return c.Redirect("/admin/addresses")
}
