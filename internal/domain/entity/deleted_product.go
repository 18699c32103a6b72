package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DeletedProduct es la fotografía de un producto en el momento de eliminarlo.
type DeletedProduct struct {
	ID           string
	ProductID    string
	Name         string
	Price        decimal.Decimal
	Stock        int
	CategoryName string
	DeletedAt    time.Time
}
