package model

type Product struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Code       string `gorm:"type:varchar(50);uniqueIndex;not null" json:"code"`
	Name       string `gorm:"type:varchar(255);not null" json:"name"`
	CategoryID *uint  `gorm:"index" json:"category_id"` // nullable, no cascade on category delete
	Laboratory string `gorm:"type:varchar(255)" json:"laboratory"`
}

func (Product) TableName() string {
	return "products"
}

// ProductDetail is a product joined with its category name. CategoryName is
// empty when the product has no category or the category was deleted.
type ProductDetail struct {
	ID           uint   `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	CategoryID   *uint  `json:"category_id"`
	CategoryName string `json:"category_name"`
	Laboratory   string `json:"laboratory"`
}

func (p ProductDetail) SearchText() []string {
	return []string{p.Code, p.Name, p.CategoryName, p.Laboratory}
}

// ProductOption is the (id, name) pair used by product pickers.
type ProductOption struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
