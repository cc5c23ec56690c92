package services_test

import (
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"

	"stonequote/internal/repos"
	"stonequote/internal/services"
)

// memdb opens a seeded in-memory store (Bluestone, Travertine, Granite).
func memdb(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func newServices(t *testing.T) (*services.CatalogService, *services.QuoteService) {
	t.Helper()
	db := memdb(t)
	matRepo := repos.NewMaterialRepo(db)
	quoteRepo := repos.NewQuoteRepo(db)
	return services.NewCatalogService(matRepo, quoteRepo), services.NewQuoteService(quoteRepo, matRepo)
}

func TestDeleteMaterialBlockedByQuotes(t *testing.T) {
	catalog, quotes := newServices(t)

	for i := 0; i < 2; i++ {
		if _, err := quotes.Create(services.QuoteInput{
			ClientName:  "Dana Fox",
			ClientEmail: "dana@example.com",
			MaterialID:  "blt-001",
			TotalArea:   10,
		}); err != nil {
			t.Fatal(err)
		}
	}

	err := catalog.DeleteMaterial("blt-001")
	var inUse services.ErrMaterialInUse
	if !errors.As(err, &inUse) {
		t.Fatalf("want ErrMaterialInUse, got %v", err)
	}
	if inUse.Count != 2 {
		t.Fatalf("want blocking count 2, got %d", inUse.Count)
	}

	// Nothing was deleted on the blocked path.
	if _, err := catalog.GetMaterial("blt-001"); err != nil {
		t.Fatalf("material should still exist: %v", err)
	}
	qs, err := quotes.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(qs) != 2 {
		t.Fatalf("want 2 quotes untouched, got %d", len(qs))
	}
}

func TestDeleteMaterialUnreferenced(t *testing.T) {
	catalog, _ := newServices(t)

	if err := catalog.DeleteMaterial("grn-001"); err != nil {
		t.Fatalf("unreferenced delete should succeed: %v", err)
	}

	mats, err := catalog.ListMaterials("")
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range mats {
		if m.ID == "grn-001" {
			t.Fatal("deleted material still listed")
		}
	}
}

func TestDeleteMaterialMissing(t *testing.T) {
	catalog, _ := newServices(t)
	if err := catalog.DeleteMaterial("nope"); !errors.Is(err, repos.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestAddMaterialAssignsIDAndTimestamp(t *testing.T) {
	catalog, _ := newServices(t)
	m, err := catalog.AddMaterial("Slate", "Dark split-face slate.", 52.75, "")
	if err != nil {
		t.Fatal(err)
	}
	if m.ID == "" || m.CreatedAt == "" {
		t.Fatalf("want store-assigned id and timestamp, got %+v", m)
	}
	if m.PricePerMeter != 52.75 {
		t.Fatalf("price = %v", m.PricePerMeter)
	}
}
