package catalog

import (
	"fmt"

	"github.com/aluiziolira/go-product-slider/models"
	"github.com/shopspring/decimal"
)

var maxRate = decimal.NewFromInt(5)

// ValidateProduct checks the fields the slider relies on.
func ValidateProduct(p *models.Product) error {
	if p == nil {
		return fmt.Errorf("product is nil")
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("product %d has negative price %s", p.ID, p.Price)
	}
	if p.Rating.Rate.IsNegative() || p.Rating.Rate.GreaterThan(maxRate) {
		return fmt.Errorf("product %d rating %s outside 0-5", p.ID, p.Rating.Rate)
	}
	if p.Rating.Count < 0 {
		return fmt.Errorf("product %d has negative rating count", p.ID)
	}
	return nil
}

// Validate checks every product and that ids are unique, since selection is keyed by id.
func Validate(products []models.Product) error {
	seen := make(map[int]struct{}, len(products))
	for i := range products {
		if err := ValidateProduct(&products[i]); err != nil {
			return err
		}
		if _, ok := seen[products[i].ID]; ok {
			return fmt.Errorf("duplicate product id %d", products[i].ID)
		}
		seen[products[i].ID] = struct{}{}
	}
	return nil
}
