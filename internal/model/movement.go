package model

import "github.com/shopspring/decimal"

type MovementType string

const (
	MovementPurchase MovementType = "Compra"
	MovementSale     MovementType = "Venta"
)

// Movement is one purchase or sale of a product. Stock is never stored; it is
// derived from the movements of each product.
type Movement struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Date      string          `gorm:"type:varchar(10);not null" json:"date"`
	Type      MovementType    `gorm:"type:varchar(10);not null" json:"type"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Notes     string          `json:"notes"`
}

func (Movement) TableName() string {
	return "movements"
}

// LineTotal is unit price times quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// MovementRow is a movement joined with the product name, for ledger listings.
type MovementRow struct {
	ID          uint            `json:"id"`
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Date        string          `json:"date"`
	Type        MovementType    `json:"type"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Notes       string          `json:"notes"`
	Total       decimal.Decimal `gorm:"-" json:"total"`
}

func (m MovementRow) SearchText() []string {
	return []string{m.Date, m.ProductName, string(m.Type), m.Notes}
}
