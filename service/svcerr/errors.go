// Package svcerr classifies errors returned at the GCP service boundary so
// callers can dispatch on structured kinds instead of matching message text.
package svcerr

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"
)

type Kind int

const (
	// Unknown covers everything the classifier cannot place.
	Unknown Kind = iota
	// Unavailable means the service could not be reached at all.
	Unavailable
	// NotProvisioned means the scope or source is not available to the
	// project (permission denied or not found).
	NotProvisioned
	// RelationshipsUnsupported means the inventory rejected a
	// relationship-enriched query for this asset type.
	RelationshipsUnsupported
	// Transient covers rate limiting and server-side failures worth retrying.
	Transient
)

func (k Kind) String() string {
	switch k {
	case Unavailable:
		return "unavailable"
	case NotProvisioned:
		return "not_provisioned"
	case RelationshipsUnsupported:
		return "relationships_unsupported"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// Classify maps an error from a GCP client call to a Kind.
func Classify(err error) Kind {
	if err == nil {
		return Unknown
	}

	msg := err.Error()
	if strings.Contains(msg, "No RELATIONSHIP found") {
		return RelationshipsUnsupported
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusForbidden || gerr.Code == http.StatusNotFound:
			return NotProvisioned
		case gerr.Code == http.StatusTooManyRequests || gerr.Code >= http.StatusInternalServerError:
			return Transient
		case gerr.Code == http.StatusBadRequest && strings.Contains(gerr.Message, "RELATIONSHIP"):
			return RelationshipsUnsupported
		}
		return Unknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return Unavailable
	}

	switch {
	case strings.Contains(msg, "PERMISSION_DENIED"), strings.Contains(msg, "NOT_FOUND"):
		return NotProvisioned
	case strings.Contains(msg, "connection refused"), strings.Contains(msg, "dial tcp"), strings.Contains(msg, "no such host"):
		return Unavailable
	}

	return Unknown
}

// Recoverable reports whether the error kind is expected during a scan and
// should be skipped without logging noise.
func Recoverable(k Kind) bool {
	return k == NotProvisioned || k == RelationshipsUnsupported
}
