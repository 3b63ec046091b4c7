// Package catalog fetches the product list from the remote catalog API.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aluiziolira/go-product-slider/config"
	"github.com/aluiziolira/go-product-slider/models"
	"github.com/gocolly/colly/v2"
)

// Client issues the catalog request through a colly collector.
type Client struct {
	cfg       *config.Config
	endpoint  string
	transport http.RoundTripper
	Metrics   *Metrics
}

// NewClient builds a catalog client configured from cfg.
func NewClient(cfg *config.Config) (*Client, error) {
	endpoint, err := Endpoint(cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		cfg:      cfg,
		endpoint: endpoint,
		transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   cfg.Timeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
		Metrics: NewMetrics(),
	}, nil
}

// Endpoint returns the catalog URL with the limit query parameter applied.
// Other query parameters already present on the base URL are preserved.
func Endpoint(cfg *config.Config) (string, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("base url must include a host")
	}
	if cfg.Limit <= 0 {
		return "", fmt.Errorf("limit must be positive")
	}
	query := parsed.Query()
	query.Set("limit", strconv.Itoa(cfg.Limit))
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// Endpoint returns the URL Fetch requests.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// WithTransport replaces the HTTP transport used for requests.
func (c *Client) WithTransport(rt http.RoundTripper) {
	c.transport = rt
}

// Fetch performs exactly one GET against the catalog and returns the products
// in response order. Every failure is reported as a *FetchError.
func (c *Client) Fetch(ctx context.Context) ([]models.Product, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, c.fail(&FetchError{Kind: KindCanceled, Err: err})
	}

	collector := c.newCollector(ctx)

	var (
		body   []byte
		status int
	)
	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", "application/json")
		c.Metrics.IncRequest("started")
	})
	collector.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})
	collector.OnError(func(r *colly.Response, err error) {
		if r != nil {
			status = r.StatusCode
		}
	})

	start := time.Now()
	err := collector.Visit(c.endpoint)
	c.Metrics.ObserveDuration(time.Since(start))
	if err != nil {
		classified := classifyError(err, status)
		if classified == nil {
			classified = &FetchError{Kind: KindRequest, Err: err}
		}
		return nil, c.fail(classified)
	}
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return nil, c.fail(&FetchError{Kind: KindHTTPStatus, StatusCode: status, Err: fmt.Errorf("http status %d", status)})
	}

	products, err := decodeProducts(body)
	if err != nil {
		return nil, c.fail(&FetchError{Kind: KindDecode, StatusCode: status, Err: err})
	}
	if err := Validate(products); err != nil {
		return nil, c.fail(&FetchError{Kind: KindInvalidRecord, StatusCode: status, Err: err})
	}

	c.Metrics.IncRequest("succeeded")
	c.Metrics.AddProducts(len(products))
	slog.Debug("catalog fetched",
		slog.String("url", c.endpoint),
		slog.Int("status", status),
		slog.Int("products", len(products)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return products, nil
}

func (c *Client) newCollector(ctx context.Context) *colly.Collector {
	collector := colly.NewCollector(
		colly.UserAgent(c.cfg.UserAgent),
		colly.AllowURLRevisit(),
	)
	// Status codes are judged in Fetch; colly alone rejects 203-299.
	collector.ParseHTTPErrorResponse = true
	collector.SetRequestTimeout(c.cfg.Timeout)
	collector.WithTransport(&contextTransport{ctx: ctx, next: c.transport})
	return collector
}

func (c *Client) fail(err *FetchError) error {
	category := errorTypeLabel(err)
	c.Metrics.IncRequest("failed")
	c.Metrics.IncError(category)
	slog.Error("catalog fetch failed",
		slog.String("url", c.endpoint),
		slog.String("category", category),
		slog.Int("status", err.StatusCode),
		slog.Any("error", err.Err),
	)
	return err
}

func decodeProducts(body []byte) ([]models.Product, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("response is not a JSON array")
	}
	var products []models.Product
	if err := json.Unmarshal(trimmed, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// contextTransport binds outgoing requests to the fetch context so quitting
// the widget cancels an in-flight request.
type contextTransport struct {
	ctx  context.Context
	next http.RoundTripper
}

func (t *contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	return next.RoundTrip(req.WithContext(t.ctx))
}
