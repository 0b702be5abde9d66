package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"pleadmd/internal/domain"
)

// ProviderError is a failure reported by, or about, an LLM provider. Its
// message is shown to users as-is.
type ProviderError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return e.Message
}

func newProviderError(provider string, status int, format string, args ...interface{}) *ProviderError {
	return &ProviderError{Provider: provider, StatusCode: status, Message: fmt.Sprintf(format, args...)}
}

// noContentError reports a 2xx response that carried no completion text.
func noContentError(desc domain.ProviderDescriptor) *ProviderError {
	return newProviderError(desc.ID, 0, "No response content from %s", desc.Name)
}

// TimeoutError is returned when a call exceeds the client's deadline.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return "Request timed out after " + formatTimeout(e.After)
}

func formatTimeout(d time.Duration) string {
	if d%time.Second == 0 {
		return fmt.Sprintf("%ds", int64(d/time.Second))
	}
	return d.String()
}

// errorMessage renders err for a failure result.
func errorMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Unknown error occurred"
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	if msg, ok := transportMessage(err); ok {
		return msg
	}
	return err.Error()
}

// transportMessage renders an HTTP transport failure without the request
// URL or dialed address.
func transportMessage(err error) (string, bool) {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return "", false
	}

	var dnsErr *net.DNSError
	var opErr *net.OpError
	switch {
	case errors.Is(err, context.Canceled):
		return "Request cancelled", true
	case errors.As(err, &dnsErr):
		return "Network error: could not resolve " + dnsErr.Name, true
	case errors.As(err, &opErr) && opErr.Op == "dial":
		return "Network error: could not connect to provider", true
	default:
		return "Network error", true
	}
}
