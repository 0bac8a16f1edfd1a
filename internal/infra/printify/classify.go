package printify

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/vredrick/printify-mcp-web/internal/core/domain"
)

// classifyStatus maps a non-2xx upstream response onto the error taxonomy.
func classifyStatus(endpoint string, status int, body string) *domain.CatalogError {
	kind := domain.ErrUnknown
	switch {
	case status == http.StatusUnauthorized:
		kind = domain.ErrAuthFailed
	case status == http.StatusNotFound:
		kind = domain.ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		kind = domain.ErrValidation
	case status == http.StatusTooManyRequests:
		kind = domain.ErrRateLimited
	case status >= 500:
		kind = domain.ErrServer
	}

	return &domain.CatalogError{
		Kind:       kind,
		HTTPStatus: status,
		Endpoint:   endpoint,
		Body:       body,
	}
}

// classifyTransport maps a transport-level failure onto the error taxonomy.
// Timeouts get their own kind because they back off more conservatively.
func classifyTransport(endpoint string, err error) *domain.CatalogError {
	kind := domain.ErrUnknown

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		kind = domain.ErrTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		kind = domain.ErrTimeout
	case isTransient(err):
		kind = domain.ErrNetwork
	}

	return &domain.CatalogError{
		Kind:     kind,
		Endpoint: endpoint,
		Err:      err,
	}
}

// isTransient detects connection-level failures worth retrying.
func isTransient(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	s := strings.ToLower(err.Error())
	for _, marker := range []string{
		"connection reset",
		"connection refused",
		"broken pipe",
		"no such host",
		"unexpected eof",
		"eof",
	} {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
