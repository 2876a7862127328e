package entity

type ProductCategory string

const (
	CategoryStaticModels ProductCategory = "static_models"
	CategoryFlyingModels ProductCategory = "flying_models"
	CategoryTools        ProductCategory = "tools"
)

// PriceVaries is the price sentinel for records without a fixed price.
const PriceVaries = "Prices vary"

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ProductCategory `json:"category"`
	Price       string          `json:"price"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
	Specs       string          `json:"specs"`
	IdealFor    string          `json:"ideal_for"`
	Url         string          `json:"url"`
}
