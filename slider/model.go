// Package slider implements the product slider widget as a Bubble Tea model.
//
// The model starts in the loading state, fetches the catalog once from Init
// and moves to ready or error when the result arrives. After that the only
// state that changes is the selection and keyboard focus.
package slider

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aluiziolira/go-product-slider/catalog"
	"github.com/aluiziolira/go-product-slider/models"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultWidth    = 80
	detailCacheSize = 64

	inputPointer  = "pointer"
	inputKeyboard = "keyboard"
)

var errFetchFailed = errors.New("failed to fetch products")

// Fetcher loads the product collection. *catalog.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context) ([]models.Product, error)
}

// Options configures optional collaborators of the model.
type Options struct {
	// Context bounds the catalog request. Defaults to context.Background.
	Context context.Context
	Metrics *catalog.Metrics
	// OnAddToCart is invoked when the call-to-action is activated.
	OnAddToCart func(models.Product)
}

// Model is the product slider.
type Model struct {
	fetcher     Fetcher
	ctx         context.Context
	metrics     *catalog.Metrics
	onAddToCart func(models.Product)

	status   models.Status
	products []models.Product
	selected int
	focus    int
	errMsg   string
	notice   string

	spinner spinner.Model
	help    help.Model
	keys    keyMap
	width   int
	height  int
	details *lru.Cache[detailKey, string]
}

type productsLoadedMsg struct {
	products []models.Product
	err      error
}

// New creates a slider in the loading state.
func New(fetcher Fetcher, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = TitleStyle

	h := help.New()
	h.Styles.ShortKey = CountStyle
	h.Styles.ShortDesc = StatusBarStyle

	// Only fails for a non-positive size.
	details, _ := lru.New[detailKey, string](detailCacheSize)

	return Model{
		fetcher:     fetcher,
		ctx:         ctx,
		metrics:     opts.Metrics,
		onAddToCart: opts.OnAddToCart,
		status:      models.StatusLoading,
		selected:    -1,
		spinner:     s,
		help:        h,
		keys:        keys,
		width:       defaultWidth,
		details:     details,
	}
}

// Init starts the one-shot catalog fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchProducts(m.ctx, m.fetcher))
}

func fetchProducts(ctx context.Context, fetcher Fetcher) tea.Cmd {
	return func() tea.Msg {
		if fetcher == nil {
			return productsLoadedMsg{err: errFetchFailed}
		}
		products, err := fetcher.Fetch(ctx)
		return productsLoadedMsg{products: products, err: err}
	}
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case productsLoadedMsg:
		return m.loaded(msg), nil

	case spinner.TickMsg:
		if m.status == models.StatusLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.status != models.StatusReady {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Down):
			m.moveFocus(1)
		case key.Matches(msg, m.keys.Up):
			m.moveFocus(-1)
		case key.Matches(msg, m.keys.Activate):
			if m.focus == len(m.products) {
				return m.addToCart()
			}
			m = m.activate(m.focus, inputKeyboard)
		}
		return m, nil

	case tea.MouseMsg:
		if m.status != models.StatusReady {
			return m, nil
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if i, ok := m.entryAt(msg.X, msg.Y); ok {
			return m.activate(i, inputPointer), nil
		}
		if m.ctaAt(msg.X, msg.Y) {
			m.focus = len(m.products)
			return m.addToCart()
		}
		return m, nil
	}

	return m, nil
}

// loaded applies the fetch result. The transition out of loading happens once.
func (m Model) loaded(msg productsLoadedMsg) Model {
	if m.status != models.StatusLoading {
		return m
	}

	if msg.err != nil {
		m.status = models.StatusError
		m.errMsg = msg.err.Error()
		if m.errMsg == "" {
			m.errMsg = errFetchFailed.Error()
		}
		slog.Warn("product slider showing error", slog.String("error", m.errMsg))
		return m
	}

	m.status = models.StatusReady
	m.products = msg.products
	m.selected = -1
	m.focus = 0
	if len(m.products) > 0 {
		m.selected = 0
	}
	slog.Info("product slider ready", slog.Int("products", len(m.products)))
	return m
}

// Select makes p the selected product. Products not in the collection are
// ignored; selecting the current product is a no-op.
func (m Model) Select(p models.Product) Model {
	if i := m.indexOf(p.ID); i >= 0 {
		m.selectIndex(i)
	}
	return m
}

// activate is the single entry point for pointer and keyboard activation of
// a list entry.
func (m Model) activate(i int, input string) Model {
	if i < 0 || i >= len(m.products) {
		return m
	}
	m.focus = i
	m.notice = ""
	m.selectIndex(i)
	m.metrics.IncSelection(input)
	slog.Debug("product selected",
		slog.Int("id", m.products[i].ID),
		slog.String("input", input),
	)
	return m
}

func (m *Model) selectIndex(i int) {
	if i < 0 || i >= len(m.products) {
		return
	}
	m.selected = i
}

func (m *Model) moveFocus(delta int) {
	n := m.focusCount()
	if n == 0 {
		return
	}
	m.focus = ((m.focus+delta)%n + n) % n
	m.notice = ""
}

// focusCount is the number of focusable elements: every list entry plus the
// call-to-action when a detail panel is shown.
func (m Model) focusCount() int {
	n := len(m.products)
	if m.selected >= 0 {
		n++
	}
	return n
}

func (m Model) addToCart() (tea.Model, tea.Cmd) {
	p, ok := m.Selected()
	if !ok {
		return m, nil
	}
	m.notice = "Added " + p.Title + " to cart"
	m.metrics.IncAddToCart()
	slog.Info("add to cart", slog.Int("id", p.ID))
	if m.onAddToCart == nil {
		return m, nil
	}
	hook := m.onAddToCart
	return m, func() tea.Msg {
		hook(p)
		return nil
	}
}

func (m Model) indexOf(id int) int {
	for i := range m.products {
		if m.products[i].ID == id {
			return i
		}
	}
	return -1
}

// Status returns the current lifecycle stage.
func (m Model) Status() models.Status {
	return m.status
}

// Products returns the fetched collection in response order.
func (m Model) Products() []models.Product {
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out
}

// Selected returns the selected product, if any.
func (m Model) Selected() (models.Product, bool) {
	if m.selected < 0 || m.selected >= len(m.products) {
		return models.Product{}, false
	}
	return m.products[m.selected], true
}

// Focused returns the index of the focused element. len(Products()) denotes
// the call-to-action.
func (m Model) Focused() int {
	return m.focus
}

// ViewState returns a snapshot of the state the widget renders from.
func (m Model) ViewState() models.ViewState {
	vs := models.ViewState{
		Status:   m.status,
		Products: m.Products(),
		Err:      m.errMsg,
	}
	if m.selected >= 0 && m.selected < len(vs.Products) {
		vs.Selected = &vs.Products[m.selected]
	}
	return vs
}

// AccessibleLabel names the list entry for product p.
func AccessibleLabel(p models.Product) string {
	return "Select " + p.Title
}

// ChevronLabel names the direction indicator of the list entry for p.
func ChevronLabel(p models.Product) string {
	return "View details for " + p.Title
}
