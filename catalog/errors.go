package catalog

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorKind labels the cause of a failed fetch. Users only ever see one kind of
// failure; the label feeds logs and metrics.
type ErrorKind string

const (
	KindTimeout       ErrorKind = "timeout"
	KindConnection    ErrorKind = "connection"
	KindHTTPStatus    ErrorKind = "http_status"
	KindDecode        ErrorKind = "decode"
	KindInvalidRecord ErrorKind = "invalid_record"
	KindCanceled      ErrorKind = "canceled"
	KindRequest       ErrorKind = "request"
)

// FetchError is returned for every failed catalog fetch.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Kind == KindHTTPStatus && e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch products: http status %d", e.StatusCode)
	}
	if e.Err == nil {
		return "failed to fetch products"
	}
	return fmt.Errorf("failed to fetch products: %w", e.Err).Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func errorTypeLabel(err error) string {
	if err == nil {
		return "unknown"
	}
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return string(fetchErr.Kind)
	}
	return "other"
}

func classifyError(err error, statusCode int) *FetchError {
	if err == nil && statusCode == 0 {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return &FetchError{Kind: KindCanceled, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &FetchError{Kind: KindTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &FetchError{Kind: KindTimeout, Err: err}
	}

	if statusCode != 0 && (statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices) {
		wrapped := err
		if wrapped == nil {
			wrapped = fmt.Errorf("http status %d", statusCode)
		}
		return &FetchError{Kind: KindHTTPStatus, StatusCode: statusCode, Err: wrapped}
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &FetchError{Kind: KindConnection, Err: err}
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &FetchError{Kind: KindConnection, Err: err}
	}

	if err == nil {
		return nil
	}
	return &FetchError{Kind: KindRequest, Err: err}
}
