// Package rating converts average ratings into star glyph sequences.
package rating

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaxStars is the fixed length of every star sequence.
const MaxStars = 5

// Star is a single glyph in a rating display.
type Star int

const (
	Empty Star = iota
	Half
	Filled
)

var (
	zero     = decimal.Zero
	one      = decimal.NewFromInt(1)
	maxScore = decimal.NewFromInt(MaxStars)
)

// Glyph returns the terminal glyph for the star.
func (s Star) Glyph() string {
	switch s {
	case Filled:
		return "★"
	case Half:
		return "⯪"
	default:
		return "☆"
	}
}

func (s Star) String() string {
	switch s {
	case Filled:
		return "filled"
	case Half:
		return "half"
	default:
		return "empty"
	}
}

// StarsFor maps a 0-5 rate to MaxStars glyphs: floor(rate) filled, one half
// when the rate has a fractional part, then 5-ceil(rate) empty.
func StarsFor(rate decimal.Decimal) []Star {
	rate = clamp(rate)

	filled := int(rate.Floor().IntPart())
	hasHalf := !rate.Mod(one).IsZero()
	empty := MaxStars - int(rate.Ceil().IntPart())

	stars := make([]Star, 0, MaxStars)
	for i := 0; i < filled; i++ {
		stars = append(stars, Filled)
	}
	if hasHalf {
		stars = append(stars, Half)
	}
	for i := 0; i < empty; i++ {
		stars = append(stars, Empty)
	}
	return stars
}

// Counts tallies a star sequence.
func Counts(stars []Star) (filled, half, empty int) {
	for _, s := range stars {
		switch s {
		case Filled:
			filled++
		case Half:
			half++
		default:
			empty++
		}
	}
	return filled, half, empty
}

// Render joins the glyphs of a star sequence.
func Render(stars []Star) string {
	var b strings.Builder
	for _, s := range stars {
		b.WriteString(s.Glyph())
	}
	return b.String()
}

func clamp(rate decimal.Decimal) decimal.Decimal {
	if rate.LessThan(zero) {
		return zero
	}
	if rate.GreaterThan(maxScore) {
		return maxScore
	}
	return rate
}
