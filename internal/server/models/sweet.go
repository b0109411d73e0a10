package models

import "time"

// Sweet is a single catalog item. Price and Quantity never go negative;
// repositories enforce the guard before commit.
type Sweet struct {
	ID        string
	Name      string
	Category  string
	Price     float64
	Quantity  int
	CreatedAt time.Time
}
