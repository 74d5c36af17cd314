package model

type StockStatus string

const (
	StockOut    StockStatus = "out_of_stock"
	StockLow    StockStatus = "low_stock"
	StockNormal StockStatus = "normal"
)

// DefaultLowStockThreshold is the stock level at or below which a product is
// flagged as low.
const DefaultLowStockThreshold = 10

// ClassifyStock maps a derived stock to its status. Stock can go negative when
// sales exceed purchases; that counts as out of stock.
func ClassifyStock(stock, threshold int) StockStatus {
	switch {
	case stock <= 0:
		return StockOut
	case stock <= threshold:
		return StockLow
	default:
		return StockNormal
	}
}

// Label is the human readable status shown in listings and exports.
func (s StockStatus) Label() string {
	switch s {
	case StockOut:
		return "Out of stock"
	case StockLow:
		return "Low stock"
	case StockNormal:
		return "Normal"
	}
	return string(s)
}

// InventoryRow is one line of the inventory view: a product with its derived
// stock and classification.
type InventoryRow struct {
	ProductID    uint        `json:"product_id"`
	Code         string      `json:"code"`
	Name         string      `json:"name"`
	CategoryName string      `json:"category_name"`
	Laboratory   string      `json:"laboratory"`
	Stock        int         `json:"stock"`
	Status       StockStatus `json:"status"`
}

func (r InventoryRow) SearchText() []string {
	return []string{r.Code, r.Name, r.CategoryName, r.Laboratory}
}

func (r InventoryRow) StatusValue() string {
	return string(r.Status)
}

// DashboardStats summarises the inventory for the overview page.
type DashboardStats struct {
	TotalCategories int64 `json:"total_categories"`
	TotalProducts   int64 `json:"total_products"`
	TotalMovements  int64 `json:"total_movements"`
	LowStockCount   int64 `json:"low_stock_count"`
	OutOfStockCount int64 `json:"out_of_stock_count"`

	LowStockThreshold int `json:"low_stock_threshold"`
}
