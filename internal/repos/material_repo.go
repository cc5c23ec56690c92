package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"stonequote/internal/domain"
)

type MaterialRepo struct{ db *sqlx.DB }

func NewMaterialRepo(db *sqlx.DB) *MaterialRepo { return &MaterialRepo{db: db} }

// List returns every material. orderBy accepts "name"; anything else sorts
// newest first.
func (r *MaterialRepo) List(orderBy string) ([]domain.Material, error) {
	order := `datetime(created_at) DESC`
	if orderBy == "name" {
		order = `LOWER(name)`
	}
	var out []domain.Material
	err := r.db.Select(&out, `
	  SELECT id, name, COALESCE(description,'') AS description, price_per_meter,
	         COALESCE(image_url,'') AS image_url, created_at
	  FROM materials
	  ORDER BY `+order)
	return out, err
}

func (r *MaterialRepo) Get(id string) (domain.Material, error) {
	var m domain.Material
	err := r.db.Get(&m, `
	  SELECT id, name, COALESCE(description,'') AS description, price_per_meter,
	         COALESCE(image_url,'') AS image_url, created_at
	  FROM materials
	  WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Material{}, ErrNotFound
	}
	return m, err
}

func (r *MaterialRepo) Create(m domain.Material) error {
	_, err := r.db.Exec(`
	  INSERT INTO materials(id, name, description, price_per_meter, image_url, created_at)
	  VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, m.ID, m.Name, m.Description, m.PricePerMeter, m.ImageURL)
	return err
}

func (r *MaterialRepo) Update(m domain.Material) error {
	res, err := r.db.Exec(`
	  UPDATE materials
	  SET name = ?, description = ?, price_per_meter = ?, image_url = ?
	  WHERE id = ?
	`, m.Name, m.Description, m.PricePerMeter, m.ImageURL, m.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MaterialRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM materials WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
