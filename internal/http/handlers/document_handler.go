package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"stonequote/internal/domain"
	applog "stonequote/internal/log"
	"stonequote/internal/pdf"
	"stonequote/internal/repos"
	"stonequote/internal/services"
	"stonequote/internal/validate"
)

type DocumentHandler struct {
	Quotes  *services.QuoteService
	Company domain.Company
}

// GET /quotes/:id/pdf
func (h *DocumentHandler) Download(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notice(c, fiber.StatusNotFound, "Quote not found")
	}
	q, err := h.Quotes.Get(id)
	if errors.Is(err, repos.ErrNotFound) {
		return notice(c, fiber.StatusNotFound, "Quote not found")
	}
	if err != nil {
		applog.Error(c, "quote.pdf.load.fail", err, map[string]any{"quote_id": id})
		return notice(c, fiber.StatusInternalServerError, "Could not load quote")
	}

	// Image fetches stay out of the layout step; a dead URL degrades to the
	// placeholder instead of failing the document.
	logo := pdf.FetchImage(h.Company.LogoURL)
	img := pdf.FetchImage(q.Material.ImageURL)

	doc, err := pdf.Render(pdf.BuildLayout(q.Quote, q.Material, h.Company, logo, img))
	if err != nil {
		applog.Error(c, "quote.pdf.render.fail", err, map[string]any{"quote_id": id})
		return notice(c, fiber.StatusInternalServerError, "Could not render quote document")
	}

	applog.Audit(c, "quote.pdf", map[string]any{"quote_id": id})
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="quote-%s.pdf"`, id))
	return c.Send(doc)
}
