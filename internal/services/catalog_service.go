package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"stonequote/internal/domain"
	"stonequote/internal/repos"
)

// ErrMaterialInUse blocks deletion of a material that quotes still reference.
// Count is surfaced to the operator.
type ErrMaterialInUse struct{ Count int }

func (e ErrMaterialInUse) Error() string {
	return fmt.Sprintf("material referenced by %d quote(s)", e.Count)
}

type CatalogService struct {
	Materials *repos.MaterialRepo
	Quotes    *repos.QuoteRepo
}

func NewCatalogService(materials *repos.MaterialRepo, quotes *repos.QuoteRepo) *CatalogService {
	return &CatalogService{Materials: materials, Quotes: quotes}
}

func (s *CatalogService) ListMaterials(orderBy string) ([]domain.Material, error) {
	return s.Materials.List(orderBy)
}

func (s *CatalogService) GetMaterial(id string) (domain.Material, error) {
	return s.Materials.Get(id)
}

func (s *CatalogService) AddMaterial(name, description string, pricePerMeter float64, imageURL string) (domain.Material, error) {
	m := domain.Material{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(name),
		Description:   strings.TrimSpace(description),
		PricePerMeter: pricePerMeter,
		ImageURL:      strings.TrimSpace(imageURL),
	}
	if err := s.Materials.Create(m); err != nil {
		return domain.Material{}, err
	}
	// Re-read so the caller sees the store-assigned timestamp.
	return s.Materials.Get(m.ID)
}

func (s *CatalogService) UpdateMaterial(m domain.Material) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Description = strings.TrimSpace(m.Description)
	m.ImageURL = strings.TrimSpace(m.ImageURL)
	return s.Materials.Update(m)
}

// DeleteMaterial refuses to remove a material while quotes reference it. The
// count check and the delete are separate statements, so a quote created in
// between slips past the guard; accepted for single-operator use.
func (s *CatalogService) DeleteMaterial(id string) error {
	n, err := s.Quotes.CountByMaterial(id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrMaterialInUse{Count: n}
	}
	return s.Materials.Delete(id)
}
