package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "stonequote/internal/log"
	"stonequote/internal/services"
)

type HomeHandler struct {
	Catalog *services.CatalogService
	Quotes  *services.QuoteService
}

// GET /
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	mats, err := h.Catalog.ListMaterials("")
	if err != nil {
		applog.Error(c, "home.load.fail", err, nil)
		return notice(c, fiber.StatusInternalServerError, "Could not load dashboard")
	}
	qs, err := h.Quotes.List()
	if err != nil {
		applog.Error(c, "home.load.fail", err, nil)
		return notice(c, fiber.StatusInternalServerError, "Could not load dashboard")
	}
	recent := qs
	if len(recent) > 5 {
		recent = recent[:5]
	}
	return render(c, "home", fiber.Map{
		"MaterialCount": len(mats),
		"QuoteCount":    len(qs),
		"Recent":        recent,
	})
}
