package model

const (
	EntityName = "guest"
)

// Guest is read-only reference data seeded from the catalog.
type Guest struct {
	ID      int64
	Name    string
	Phone   string
	Email   string
	Address string
}
