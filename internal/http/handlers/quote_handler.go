package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"stonequote/internal/domain"
	applog "stonequote/internal/log"
	"stonequote/internal/mail"
	"stonequote/internal/pricing"
	"stonequote/internal/repos"
	"stonequote/internal/services"
	"stonequote/internal/validate"
)

type QuoteHandler struct {
	Quotes  *services.QuoteService
	Catalog *services.CatalogService
	Company domain.Company
}

// quoteView precomputes the display strings templates need; html/template
// stays free of formatting logic.
type quoteView struct {
	domain.QuoteWithMaterial
	CreatedDisplay string
	UnitDisplay    string
	AreaDisplay    string
	TotalDisplay   string
	Mailto         string
}

func (h *QuoteHandler) view(q domain.QuoteWithMaterial) quoteView {
	return quoteView{
		QuoteWithMaterial: q,
		CreatedDisplay:    pricing.Date(q.CreatedAt),
		UnitDisplay:       pricing.Currency(q.Material.PricePerMeter),
		AreaDisplay:       pricing.Area(q.TotalArea),
		TotalDisplay:      pricing.Currency(q.TotalPrice),
		Mailto:            mail.Compose(q.Quote, q.Material, h.Company).MailtoURL(),
	}
}

// GET /quotes
func (h *QuoteHandler) List(c *fiber.Ctx) error {
	qs, err := h.Quotes.List()
	if err != nil {
		applog.Error(c, "quote.list.fail", err, nil)
		return notice(c, fiber.StatusInternalServerError, "Could not load quotes")
	}
	views := make([]quoteView, 0, len(qs))
	for _, q := range qs {
		views = append(views, h.view(q))
	}
	return render(c, "quotes", fiber.Map{"Quotes": views})
}

// GET /quotes/new
func (h *QuoteHandler) NewForm(c *fiber.Ctx) error {
	mats, err := h.Catalog.ListMaterials("name")
	if err != nil {
		applog.Error(c, "quote.form.fail", err, nil)
		return notice(c, fiber.StatusInternalServerError, "Could not load materials")
	}
	return render(c, "quote_new", fiber.Map{"Materials": mats})
}

func (h *QuoteHandler) parseInput(c *fiber.Ctx) (services.QuoteInput, string) {
	name, ok := validate.Name(c.FormValue("client_name"))
	if !ok {
		return services.QuoteInput{}, "client name must be 1-80 characters"
	}
	email, ok := validate.Email(c.FormValue("client_email"))
	if !ok {
		return services.QuoteInput{}, "enter a valid client email"
	}
	matID, ok := validate.ID(c.FormValue("material_id"))
	if !ok {
		return services.QuoteInput{}, "please select a material"
	}
	area, ok := validate.Area(c.FormValue("total_area"))
	if !ok {
		return services.QuoteInput{}, "enter a valid area"
	}
	return services.QuoteInput{
		ClientName:  name,
		ClientEmail: email,
		MaterialID:  matID,
		TotalArea:   area,
		Notes:       validate.Notes(c.FormValue("notes")),
	}, ""
}

// POST /quotes
func (h *QuoteHandler) Create(c *fiber.Ctx) error {
	in, msg := h.parseInput(c)
	if msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"form": "quote"})
		return c.Status(fiber.StatusBadRequest).SendString(msg)
	}

	q, err := h.Quotes.Create(in)
	switch {
	case errors.Is(err, services.ErrNoMaterial):
		return c.Status(fiber.StatusBadRequest).SendString("please select a material")
	case errors.Is(err, services.ErrInvalidArea):
		return c.Status(fiber.StatusBadRequest).SendString("enter a valid area")
	case err != nil:
		applog.Error(c, "quote.create.fail", err, nil)
		return notice(c, fiber.StatusInternalServerError, "Could not create quote")
	}
	applog.Audit(c, "quote.create", map[string]any{"quote_id": q.ID, "total": q.TotalPrice})
	return c.Redirect("/quotes/" + q.ID)
}

// GET /quotes/:id
func (h *QuoteHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notice(c, fiber.StatusNotFound, "Quote not found")
	}
	q, err := h.Quotes.Get(id)
	if errors.Is(err, repos.ErrNotFound) {
		return notice(c, fiber.StatusNotFound, "Quote not found")
	}
	if err != nil {
		applog.Error(c, "quote.get.fail", err, map[string]any{"quote_id": id})
		return notice(c, fiber.StatusInternalServerError, "Could not load quote")
	}
	mats, err := h.Catalog.ListMaterials("name")
	if err != nil {
		applog.Error(c, "quote.form.fail", err, nil)
		return notice(c, fiber.StatusInternalServerError, "Could not load materials")
	}
	return render(c, "quote_detail", fiber.Map{"Q": h.view(q), "Materials": mats})
}

// POST /quotes/:id
func (h *QuoteHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notice(c, fiber.StatusNotFound, "Quote not found")
	}
	in, msg := h.parseInput(c)
	if msg != "" {
		applog.Security(c, "validation.fail", map[string]any{"form": "quote"})
		return c.Status(fiber.StatusBadRequest).SendString(msg)
	}
	status, ok := validate.Status(c.FormValue("status"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "status"})
		return c.Status(fiber.StatusBadRequest).SendString("unknown status")
	}
	in.Status = status

	err := h.Quotes.Update(id, in)
	switch {
	case errors.Is(err, services.ErrNoMaterial):
		return c.Status(fiber.StatusBadRequest).SendString("please select a material")
	case errors.Is(err, repos.ErrNotFound):
		return notice(c, fiber.StatusNotFound, "Quote not found")
	case err != nil:
		applog.Error(c, "quote.update.fail", err, map[string]any{"quote_id": id})
		return notice(c, fiber.StatusInternalServerError, "Could not save quote")
	}
	applog.Audit(c, "quote.update", map[string]any{"quote_id": id})
	return c.Redirect("/quotes/" + id)
}

// POST /quotes/:id/status
func (h *QuoteHandler) SetStatus(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notice(c, fiber.StatusNotFound, "Quote not found")
	}
	status, ok := validate.Status(c.FormValue("status"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "status"})
		return c.Status(fiber.StatusBadRequest).SendString("unknown status")
	}
	err := h.Quotes.SetStatus(id, status)
	if errors.Is(err, repos.ErrNotFound) {
		return notice(c, fiber.StatusNotFound, "Quote not found")
	}
	if err != nil {
		applog.Error(c, "quote.status.fail", err, map[string]any{"quote_id": id})
		return notice(c, fiber.StatusInternalServerError, "Could not update status")
	}
	applog.Audit(c, "quote.status", map[string]any{"quote_id": id, "status": status})
	return c.Redirect("/quotes/" + id)
}

// POST /quotes/:id/delete
func (h *QuoteHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notice(c, fiber.StatusNotFound, "Quote not found")
	}
	err := h.Quotes.Delete(id)
	if errors.Is(err, repos.ErrNotFound) {
		return notice(c, fiber.StatusNotFound, "Quote not found")
	}
	if err != nil {
		applog.Error(c, "quote.delete.fail", err, map[string]any{"quote_id": id})
		return notice(c, fiber.StatusInternalServerError, "Could not delete quote")
	}
	applog.Audit(c, "quote.delete", map[string]any{"quote_id": id})
	return c.Redirect("/quotes")
}
