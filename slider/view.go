package slider

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aluiziolira/go-product-slider/models"
	"github.com/aluiziolira/go-product-slider/rating"
	"github.com/charmbracelet/lipgloss"
)

const (
	headerTitle       = "Featured Products"
	headerDescription = "Discover our carefully curated selection of premium products designed to enhance your lifestyle. " +
		"Each item is handpicked for its quality, style, and value."

	thumbnailGlyph  = "▣"
	chevronClosed   = "›"
	chevronOpen     = "⌄"
	focusMarker     = "▌"
	ctaLabel        = "Add to Cart"
	columnGap       = 2
	minListWidth    = 24
	maxListWidth    = 48
	minDetailWidth  = 20
	loadingText     = "Loading products..."
	emptyCollection = "No products available"
)

type detailKey struct {
	id         int
	width      int
	ctaFocused bool
}

// View renders the widget for the current status.
func (m Model) View() string {
	switch m.status {
	case models.StatusLoading:
		return m.spinner.View() + " " + loadingText
	case models.StatusError:
		return ErrorStyle.Render("Error: " + m.errMsg)
	}

	sections := []string{m.renderHeader(), m.renderBody(), m.renderStatus(), m.help.View(m.keys)}
	return strings.Join(sections, "\n\n")
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render(headerTitle)
	desc := DescriptionStyle.Width(m.width).Render(headerDescription)
	return title + "\n" + desc
}

// listTop is the terminal row of the first list entry. When the view is
// taller than the window the renderer keeps only its last m.height lines, so
// the rows scrolled off the top are subtracted; the result can be negative.
func (m Model) listTop() int {
	top := lipgloss.Height(m.renderHeader()) + 1
	if m.height > 0 {
		if overflow := lipgloss.Height(m.View()) - m.height; overflow > 0 {
			top -= overflow
		}
	}
	return top
}

func (m Model) listWidth() int {
	w := m.width * 2 / 5
	if w < minListWidth {
		w = minListWidth
	}
	if w > maxListWidth {
		w = maxListWidth
	}
	return w
}

func (m Model) detailWidth() int {
	w := m.width - m.listWidth() - columnGap
	if w < minDetailWidth {
		w = minDetailWidth
	}
	return w
}

func (m Model) renderBody() string {
	list := m.renderList()
	if _, ok := m.Selected(); !ok {
		return list
	}
	gap := strings.Repeat(" ", columnGap)
	return lipgloss.JoinHorizontal(lipgloss.Top, list, gap, m.renderDetail())
}

func (m Model) renderList() string {
	width := m.listWidth()
	if len(m.products) == 0 {
		return lipgloss.NewStyle().Width(width).Render("")
	}

	lines := make([]string, len(m.products))
	for i, p := range m.products {
		lines[i] = m.renderEntry(p, i == m.selected, i == m.focus, width)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderEntry(p models.Product, selected, focused bool, width int) string {
	marker := " "
	if focused {
		marker = focusMarker
	}
	chevron := chevronClosed
	if selected {
		chevron = chevronOpen
	}

	// marker, space, thumbnail, space ... space, chevron
	titleWidth := width - 6
	if titleWidth < 1 {
		titleWidth = 1
	}
	title := padRight(truncate(p.Title, titleWidth), titleWidth)
	line := fmt.Sprintf("%s %s %s %s", marker, thumbnailGlyph, title, chevron)

	if selected {
		return ActiveItemStyle.Render(line)
	}
	return ItemStyle.Render(line)
}

func (m Model) renderDetail() string {
	p, ok := m.Selected()
	if !ok {
		return ""
	}

	width := m.detailWidth()
	key := detailKey{id: p.ID, width: width, ctaFocused: m.focus == len(m.products)}
	if m.details != nil {
		if cached, ok := m.details.Get(key); ok {
			return cached
		}
	}

	var b strings.Builder
	b.WriteString(PriceStyle.Render("$" + p.Price.StringFixed(2)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Render(p.Description))
	b.WriteString("\n\n")
	b.WriteString(renderStars(rating.StarsFor(p.Rating.Rate)))
	b.WriteString(" ")
	b.WriteString(CountStyle.Render("(" + strconv.Itoa(p.Rating.Count) + ")"))
	b.WriteString("\n\n")
	if key.ctaFocused {
		b.WriteString(FocusedCTAStyle.Render("[ " + ctaLabel + " ]"))
	} else {
		b.WriteString(CTAStyle.Render("[ " + ctaLabel + " ]"))
	}

	out := b.String()
	if m.details != nil {
		m.details.Add(key, out)
	}
	return out
}

func renderStars(stars []rating.Star) string {
	var b strings.Builder
	for _, s := range stars {
		switch s {
		case rating.Filled:
			b.WriteString(FilledStarStyle.Render(s.Glyph()))
		case rating.Half:
			b.WriteString(HalfStarStyle.Render(s.Glyph()))
		default:
			b.WriteString(EmptyStarStyle.Render(s.Glyph()))
		}
	}
	return b.String()
}

func (m Model) renderStatus() string {
	if m.notice != "" {
		return StatusBarStyle.Render(m.notice)
	}
	if len(m.products) == 0 {
		return StatusBarStyle.Render(emptyCollection)
	}
	return StatusBarStyle.Render(m.focusedLabel())
}

// focusedLabel is the accessible name of the focused element.
func (m Model) focusedLabel() string {
	if m.focus >= 0 && m.focus < len(m.products) {
		return AccessibleLabel(m.products[m.focus])
	}
	if p, ok := m.Selected(); ok {
		return ctaLabel + ": " + p.Title
	}
	return ""
}

// entryAt maps a pointer position to a list entry.
func (m Model) entryAt(x, y int) (int, bool) {
	if x < 0 || x >= m.listWidth() {
		return 0, false
	}
	i := y - m.listTop()
	if i < 0 || i >= len(m.products) {
		return 0, false
	}
	return i, true
}

// ctaAt reports whether a pointer position falls on the call-to-action row.
func (m Model) ctaAt(x, y int) bool {
	if _, ok := m.Selected(); !ok {
		return false
	}
	if x < m.listWidth()+columnGap {
		return false
	}
	return y == m.listTop()+lipgloss.Height(m.renderDetail())-1
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func padRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
