package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"leadgrid/internal/domain"
	applog "leadgrid/internal/log"
	"leadgrid/internal/services"
)

type AvailabilityHandler struct {
	Avail *services.AvailabilityService
}

// Page renders the public address-check form.
func (h *AvailabilityHandler) Page(c *fiber.Ctx) error {
	return render(c, "check", fiber.Map{})
}

// Check answers the availability API. The address may be sparse or messy;
// the engine normalizes and degrades, so the only 400 is a grossly oversized
// field that can't be a real address fragment.
func (h *AvailabilityHandler) Check(c *fiber.Ctx) error {
	addr := domain.Address{
		Street:      strings.TrimSpace(c.Query("street")),
		HouseNumber: strings.TrimSpace(c.Query("houseNumber")),
		PostalCode:  strings.TrimSpace(c.Query("postalCode")),
		City:        strings.TrimSpace(c.Query("city")),
	}
	for _, f := range []string{addr.Street, addr.HouseNumber, addr.PostalCode, addr.City} {
		if len(f) > 120 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "address field too long",
			})
		}
	}

	result, err := h.Avail.Check(addr)
	if err != nil {
		applog.Error(c, "availability.check.error", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "availability check failed",
		})
	}

	applog.Info(c, "availability.check", map[string]any{
		"postal_code": addr.PostalCode,
		"serviceable": result.IsServiceable,
		"direct":      result.HasDirectMapping,
	})
	return c.JSON(result)
}
