package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"stonequote/internal/domain"
	applog "stonequote/internal/log"
	"stonequote/internal/repos"
	"stonequote/internal/services"
	"stonequote/internal/validate"
)

type MaterialHandler struct {
	Catalog *services.CatalogService
}

// GET /materials
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	sort := c.Query("sort")
	mats, err := h.Catalog.ListMaterials(sort)
	if err != nil {
		applog.Error(c, "material.list.fail", err, nil)
		return notice(c, fiber.StatusInternalServerError, "Could not load materials")
	}
	return render(c, "materials", fiber.Map{"Materials": mats, "Sort": sort})
}

// POST /materials
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(fiber.StatusBadRequest).SendString("name must be 1-80 characters")
	}
	price, ok := validate.Price(c.FormValue("price_per_meter"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "price_per_meter"})
		return c.Status(fiber.StatusBadRequest).SendString("enter a valid price per m²")
	}
	img, ok := validate.ImageURL(c.FormValue("image_url"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "image_url"})
		return c.Status(fiber.StatusBadRequest).SendString("enter a valid image URL")
	}
	desc := validate.Notes(c.FormValue("description"))

	m, err := h.Catalog.AddMaterial(name, desc, price, img)
	if err != nil {
		applog.Error(c, "material.create.fail", err, nil)
		return notice(c, fiber.StatusInternalServerError, "Could not save material")
	}
	applog.Audit(c, "material.create", map[string]any{"material_id": m.ID})
	return c.Redirect("/materials")
}

// POST /materials/:id
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notice(c, fiber.StatusNotFound, "Material not found")
	}
	name, ok := validate.Name(c.FormValue("name"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "name"})
		return c.Status(fiber.StatusBadRequest).SendString("name must be 1-80 characters")
	}
	price, ok := validate.Price(c.FormValue("price_per_meter"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "price_per_meter"})
		return c.Status(fiber.StatusBadRequest).SendString("enter a valid price per m²")
	}
	img, ok := validate.ImageURL(c.FormValue("image_url"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "image_url"})
		return c.Status(fiber.StatusBadRequest).SendString("enter a valid image URL")
	}

	err := h.Catalog.UpdateMaterial(domain.Material{
		ID:            id,
		Name:          name,
		Description:   validate.Notes(c.FormValue("description")),
		PricePerMeter: price,
		ImageURL:      img,
	})
	if errors.Is(err, repos.ErrNotFound) {
		return notice(c, fiber.StatusNotFound, "Material not found")
	}
	if err != nil {
		applog.Error(c, "material.update.fail", err, map[string]any{"material_id": id})
		return notice(c, fiber.StatusInternalServerError, "Could not save material")
	}
	applog.Audit(c, "material.update", map[string]any{"material_id": id})
	return c.Redirect("/materials")
}

// POST /materials/:id/delete
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return notice(c, fiber.StatusNotFound, "Material not found")
	}

	err := h.Catalog.DeleteMaterial(id)
	var inUse services.ErrMaterialInUse
	if errors.As(err, &inUse) {
		applog.Audit(c, "material.delete.blocked", map[string]any{"material_id": id, "quotes": inUse.Count})
		return notice(c, fiber.StatusConflict,
			fmt.Sprintf("Cannot delete: %d quote(s) still reference this material.", inUse.Count))
	}
	if errors.Is(err, repos.ErrNotFound) {
		return notice(c, fiber.StatusNotFound, "Material not found")
	}
	if err != nil {
		applog.Error(c, "material.delete.fail", err, map[string]any{"material_id": id})
		return notice(c, fiber.StatusInternalServerError, "Could not delete material")
	}
	applog.Audit(c, "material.delete", map[string]any{"material_id": id})
	return c.Redirect("/materials")
}
