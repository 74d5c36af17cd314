package model

// Category groups products. Name is unique (exact, case-sensitive match).
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Category) TableName() string {
	return "categories"
}

func (c Category) SearchText() []string {
	return []string{c.Name}
}
