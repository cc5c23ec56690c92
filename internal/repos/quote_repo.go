package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"stonequote/internal/domain"
)

type QuoteRepo struct{ db *sqlx.DB }

func NewQuoteRepo(db *sqlx.DB) *QuoteRepo { return &QuoteRepo{db: db} }

// quoteJoinRow is the flat scan target for the join-style reads; the material
// columns are aliased m_* and reshaped into QuoteWithMaterial afterwards.
type quoteJoinRow struct {
	domain.Quote
	MatID      string  `db:"m_id"`
	MatName    string  `db:"m_name"`
	MatDesc    string  `db:"m_description"`
	MatPrice   float64 `db:"m_price_per_meter"`
	MatImage   string  `db:"m_image_url"`
	MatCreated string  `db:"m_created_at"`
}

func (row quoteJoinRow) shape() domain.QuoteWithMaterial {
	return domain.QuoteWithMaterial{
		Quote: row.Quote,
		Material: domain.Material{
			ID:            row.MatID,
			Name:          row.MatName,
			Description:   row.MatDesc,
			PricePerMeter: row.MatPrice,
			ImageURL:      row.MatImage,
			CreatedAt:     row.MatCreated,
		},
	}
}

const quoteJoinSelect = `
  SELECT q.id, q.client_name, q.client_email, q.material_id, q.total_area,
         q.total_price, q.status, COALESCE(q.notes,'') AS notes, q.created_at,
         m.id AS m_id, m.name AS m_name,
         COALESCE(m.description,'') AS m_description,
         m.price_per_meter AS m_price_per_meter,
         COALESCE(m.image_url,'') AS m_image_url,
         m.created_at AS m_created_at
  FROM quotes q
  JOIN materials m ON m.id = q.material_id`

// ListWithMaterial returns all quotes newest first with the referenced
// material inlined.
func (r *QuoteRepo) ListWithMaterial() ([]domain.QuoteWithMaterial, error) {
	var rows []quoteJoinRow
	err := r.db.Select(&rows, quoteJoinSelect+`
	  ORDER BY datetime(q.created_at) DESC, q.id`)
	if err != nil {
		return nil, err
	}
	out := make([]domain.QuoteWithMaterial, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.shape())
	}
	return out, nil
}

func (r *QuoteRepo) GetWithMaterial(id string) (domain.QuoteWithMaterial, error) {
	var row quoteJoinRow
	err := r.db.Get(&row, quoteJoinSelect+`
	  WHERE q.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.QuoteWithMaterial{}, ErrNotFound
	}
	if err != nil {
		return domain.QuoteWithMaterial{}, err
	}
	return row.shape(), nil
}

func (r *QuoteRepo) Create(q domain.Quote) error {
	_, err := r.db.Exec(`
	  INSERT INTO quotes
	    (id, client_name, client_email, material_id, total_area, total_price, status, notes, created_at)
	  VALUES
	    (?,  ?,           ?,            ?,           ?,          ?,           ?,      ?,     CURRENT_TIMESTAMP)
	`, q.ID, q.ClientName, q.ClientEmail, q.MaterialID, q.TotalArea, q.TotalPrice, q.Status, q.Notes)
	return err
}

func (r *QuoteRepo) Update(q domain.Quote) error {
	res, err := r.db.Exec(`
	  UPDATE quotes
	  SET client_name = ?, client_email = ?, material_id = ?, total_area = ?,
	      total_price = ?, status = ?, notes = ?
	  WHERE id = ?
	`, q.ClientName, q.ClientEmail, q.MaterialID, q.TotalArea, q.TotalPrice, q.Status, q.Notes, q.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuoteRepo) UpdateStatus(id, status string) error {
	res, err := r.db.Exec(`UPDATE quotes SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *QuoteRepo) Delete(id string) error {
	res, err := r.db.Exec(`DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByMaterial reports how many quotes reference the given material. The
// deletion guard runs on this number.
func (r *QuoteRepo) CountByMaterial(materialID string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM quotes WHERE material_id = ?`, materialID)
	return n, err
}
