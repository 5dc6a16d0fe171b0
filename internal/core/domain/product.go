package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryMen         Category = "Men"
	CategoryWomen       Category = "Women"
	CategoryKids        Category = "Kids"
	CategoryAccessories Category = "Accessories"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMen, CategoryWomen, CategoryKids, CategoryAccessories:
		return true
	}
	return false
}

// VariantKey identifies the unit of stock tracking.
type VariantKey struct {
	ProductID string
	Size      string
	Color     string
}

func (k VariantKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.ProductID, k.Size, k.Color)
}

type Variant struct {
	Size  string
	Color string
	SKU   string
	Stock int // never negative; mutated only through the stock ledger
}

type Product struct {
	ID          string
	Name        string
	Description string
	Category    Category
	Price       decimal.Decimal
	Images      []string
	Sizes       []string
	Colors      []string
	Variants    []Variant
	Rating      float64
	ReviewCount int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Variant returns the variant matching size and color, or nil.
func (p *Product) Variant(size, color string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].Size == size && p.Variants[i].Color == color {
			return &p.Variants[i]
		}
	}
	return nil
}
