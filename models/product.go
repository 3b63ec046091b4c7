// Package models defines data structures for the product slider.
package models

import "github.com/shopspring/decimal"

// Product represents a catalog item returned by the catalog API.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// Rating is the average score (0-5) and the number of ratings contributed.
type Rating struct {
	Rate  decimal.Decimal `json:"rate"`
	Count int             `json:"count"`
}

// Status is the lifecycle stage of the slider's view state.
type Status int

const (
	StatusLoading Status = iota
	StatusError
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// ViewState is a snapshot of everything the slider renders from.
type ViewState struct {
	Status   Status
	Products []Product
	Selected *Product
	Err      string
}

// HasSelection reports whether a product is selected.
func (v ViewState) HasSelection() bool {
	return v.Selected != nil
}
