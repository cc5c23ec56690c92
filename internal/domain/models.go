package domain

// Quote lifecycle statuses. Transitions are free-form: the operator can move a
// quote to any status from the edit form.
const (
	StatusPending  = "pending"
	StatusSent     = "sent"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus reports whether s is one of the known quote statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusSent, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Material struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Description   string  `db:"description"`
	PricePerMeter float64 `db:"price_per_meter"`
	ImageURL      string  `db:"image_url"`
	CreatedAt     string  `db:"created_at"`
}

type Quote struct {
	ID          string  `db:"id"`
	ClientName  string  `db:"client_name"`
	ClientEmail string  `db:"client_email"`
	MaterialID  string  `db:"material_id"`
	TotalArea   float64 `db:"total_area"`
	TotalPrice  float64 `db:"total_price"` // derived at save time, never recomputed on read
	Status      string  `db:"status"`
	Notes       string  `db:"notes"`
	CreatedAt   string  `db:"created_at"`
}

// QuoteWithMaterial is the join-style read used by lists, documents and email.
type QuoteWithMaterial struct {
	Quote
	Material Material
}

// Company is the identity block stamped on documents and emails. Built once at
// startup from config and passed explicitly; call sites never re-literal it.
type Company struct {
	Owner   string
	Name    string
	Tagline string
	Phone   string
	Website string
	Email   string
	LogoURL string
}
