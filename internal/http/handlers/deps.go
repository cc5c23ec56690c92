package handlers

import (
	"github.com/jmoiron/sqlx"

	"stonequote/internal/config"
	"stonequote/internal/repos"
	"stonequote/internal/services"
)

type Deps struct {
	HomeHandler     *HomeHandler
	MaterialHandler *MaterialHandler
	QuoteHandler    *QuoteHandler
	DocumentHandler *DocumentHandler
	ExportHandler   *ExportHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	matRepo := repos.NewMaterialRepo(db)
	quoteRepo := repos.NewQuoteRepo(db)

	catalogSvc := services.NewCatalogService(matRepo, quoteRepo)
	quoteSvc := services.NewQuoteService(quoteRepo, matRepo)

	co := cfg.Identity()
	return &Deps{
		HomeHandler:     &HomeHandler{Catalog: catalogSvc, Quotes: quoteSvc},
		MaterialHandler: &MaterialHandler{Catalog: catalogSvc},
		QuoteHandler:    &QuoteHandler{Quotes: quoteSvc, Catalog: catalogSvc, Company: co},
		DocumentHandler: &DocumentHandler{Quotes: quoteSvc, Company: co},
		ExportHandler:   &ExportHandler{Quotes: quoteSvc},
	}
}
