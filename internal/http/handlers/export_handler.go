package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"stonequote/internal/export"
	applog "stonequote/internal/log"
	"stonequote/internal/services"
)

type ExportHandler struct {
	Quotes *services.QuoteService
}

// GET /quotes/export
func (h *ExportHandler) QuoteBook(c *fiber.Ctx) error {
	qs, err := h.Quotes.List()
	if err != nil {
		applog.Error(c, "export.load.fail", err, nil)
		return notice(c, fiber.StatusInternalServerError, "Could not load quotes")
	}
	book, err := export.QuoteBook(qs)
	if err != nil {
		applog.Error(c, "export.write.fail", err, nil)
		return notice(c, fiber.StatusInternalServerError, "Could not build export")
	}

	applog.Audit(c, "export.quotes", map[string]any{"rows": len(qs)})
	name := fmt.Sprintf("quotes-%s.xlsx", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, name))
	return c.Send(book)
}
