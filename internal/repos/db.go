package repos

import (
	"errors"
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned whenever a lookup resolves to no record. The service
// layer tests for it instead of inspecting driver errors.
var ErrNotFound = errors.New("record not found")

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed a starter catalog if the DB is brand new (idempotent).
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Materials
CREATE TABLE IF NOT EXISTS materials(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT,
  price_per_meter NUMERIC NOT NULL CHECK (price_per_meter >= 0),
  image_url TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_materials_name       ON materials(LOWER(name));
CREATE INDEX IF NOT EXISTS idx_materials_created_at ON materials(created_at);

-- Quotes
CREATE TABLE IF NOT EXISTS quotes(
  id TEXT PRIMARY KEY,
  client_name TEXT NOT NULL,
  client_email TEXT NOT NULL,
  material_id TEXT NOT NULL REFERENCES materials(id) ON DELETE RESTRICT,
  total_area NUMERIC NOT NULL CHECK (total_area > 0),
  total_price NUMERIC NOT NULL CHECK (total_price >= 0),
  status TEXT NOT NULL DEFAULT 'pending' CHECK (status IN ('pending','sent','approved','rejected')),
  notes TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_quotes_material   ON quotes(material_id);
CREATE INDEX IF NOT EXISTS idx_quotes_created_at ON quotes(created_at);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM materials`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting starter materials")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO materials(id,name,description,price_per_meter,image_url) VALUES
	  ('blt-001','Bluestone','Dense blue-grey paving stone, honed finish.',45.00,''),
	  ('trv-001','Travertine','Beige limestone with tumbled edges for patios.',38.50,''),
	  ('grn-001','Granite','Flamed grey granite slabs for steps and walls.',62.00,'')`)

	return tx.Commit()
}
