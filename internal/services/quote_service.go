package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"stonequote/internal/domain"
	"stonequote/internal/pricing"
	"stonequote/internal/repos"
)

var (
	ErrNoMaterial  = errors.New("no material selected")
	ErrInvalidArea = errors.New("area must be greater than zero")
	ErrBadStatus   = errors.New("unknown quote status")
)

type QuoteService struct {
	Quotes    *repos.QuoteRepo
	Materials *repos.MaterialRepo
}

func NewQuoteService(quotes *repos.QuoteRepo, materials *repos.MaterialRepo) *QuoteService {
	return &QuoteService{Quotes: quotes, Materials: materials}
}

// QuoteInput carries the operator-entered fields of a quote. The total price
// is never an input; it is derived from the resolved material at save time.
type QuoteInput struct {
	ClientName  string
	ClientEmail string
	MaterialID  string
	TotalArea   float64
	Status      string // update only; creates always start pending
	Notes       string
}

func (s *QuoteService) List() ([]domain.QuoteWithMaterial, error) {
	return s.Quotes.ListWithMaterial()
}

func (s *QuoteService) Get(id string) (domain.QuoteWithMaterial, error) {
	return s.Quotes.GetWithMaterial(id)
}

func (s *QuoteService) Create(in QuoteInput) (domain.Quote, error) {
	if in.TotalArea <= 0 {
		return domain.Quote{}, ErrInvalidArea
	}
	mat, err := s.Materials.Get(in.MaterialID)
	if errors.Is(err, repos.ErrNotFound) {
		return domain.Quote{}, ErrNoMaterial
	}
	if err != nil {
		return domain.Quote{}, err
	}

	q := domain.Quote{
		ID:          uuid.NewString(),
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientEmail: strings.TrimSpace(in.ClientEmail),
		MaterialID:  mat.ID,
		TotalArea:   in.TotalArea,
		TotalPrice:  pricing.Total(in.TotalArea, mat.PricePerMeter),
		Status:      domain.StatusPending,
		Notes:       strings.TrimSpace(in.Notes),
	}
	if err := s.Quotes.Create(q); err != nil {
		return domain.Quote{}, err
	}
	return q, nil
}

// Update re-resolves the material and re-derives the total from its current
// price. Quotes not being edited keep whatever total they were saved with.
func (s *QuoteService) Update(id string, in QuoteInput) error {
	if in.TotalArea <= 0 {
		return ErrInvalidArea
	}
	if !domain.ValidStatus(in.Status) {
		return ErrBadStatus
	}
	mat, err := s.Materials.Get(in.MaterialID)
	if errors.Is(err, repos.ErrNotFound) {
		return ErrNoMaterial
	}
	if err != nil {
		return err
	}

	return s.Quotes.Update(domain.Quote{
		ID:          id,
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientEmail: strings.TrimSpace(in.ClientEmail),
		MaterialID:  mat.ID,
		TotalArea:   in.TotalArea,
		TotalPrice:  pricing.Total(in.TotalArea, mat.PricePerMeter),
		Status:      in.Status,
		Notes:       strings.TrimSpace(in.Notes),
	})
}

func (s *QuoteService) SetStatus(id, status string) error {
	if !domain.ValidStatus(status) {
		return ErrBadStatus
	}
	return s.Quotes.UpdateStatus(id, status)
}

func (s *QuoteService) Delete(id string) error {
	return s.Quotes.Delete(id)
}
