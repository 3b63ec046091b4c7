package catalog

import (
	"testing"

	"github.com/aluiziolira/go-product-slider/models"
	"github.com/shopspring/decimal"
)

func validProduct(id int) models.Product {
	return models.Product{
		ID:    id,
		Title: "Test Product",
		Price: decimal.RequireFromString("10.00"),
		Rating: models.Rating{
			Rate:  decimal.RequireFromString("4.5"),
			Count: 12,
		},
	}
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Product)
		wantErr bool
	}{
		{name: "valid product", mutate: func(*models.Product) {}, wantErr: false},
		{name: "zero rating", mutate: func(p *models.Product) { p.Rating.Rate = decimal.Zero }, wantErr: false},
		{name: "max rating", mutate: func(p *models.Product) { p.Rating.Rate = decimal.NewFromInt(5) }, wantErr: false},
		{name: "rating above five", mutate: func(p *models.Product) { p.Rating.Rate = decimal.RequireFromString("5.01") }, wantErr: true},
		{name: "negative rating", mutate: func(p *models.Product) { p.Rating.Rate = decimal.RequireFromString("-0.5") }, wantErr: true},
		{name: "negative count", mutate: func(p *models.Product) { p.Rating.Count = -1 }, wantErr: true},
		{name: "negative price", mutate: func(p *models.Product) { p.Price = decimal.RequireFromString("-1") }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct(1)
			tt.mutate(&p)
			err := ValidateProduct(&p)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProduct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateProductNil(t *testing.T) {
	if err := ValidateProduct(nil); err == nil {
		t.Fatalf("expected error for nil product")
	}
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	products := []models.Product{validProduct(1), validProduct(2), validProduct(1)}
	if err := Validate(products); err == nil {
		t.Fatalf("expected duplicate id error")
	}
}

func TestValidateEmpty(t *testing.T) {
	if err := Validate(nil); err != nil {
		t.Fatalf("empty collection should validate, got %v", err)
	}
}
