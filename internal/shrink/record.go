package shrink

import (
	"net/http"
	"strconv"
	"time"
)

// Store field names for a bound origin.
const (
	FieldTarget = "target"
	FieldStatus = "status"
)

// Mapping is the input for binding an origin to a target URL.
type Mapping struct {
	Origin     string
	Target     string
	StatusCode int
	ExpireAt   *time.Time // nil means the record never expires
}

// Redirect is the resolved decision for a bound origin: the HTTP status to
// answer with and the Location to point at.
type Redirect struct {
	Status int
	Target string
}

// redirectFromFields builds a Redirect from the raw field map of a record.
// A record missing its target, missing its status, or carrying a status that
// does not parse as an integer is unusable and reads as absent.
func redirectFromFields(fields map[string]string) (*Redirect, bool) {
	target, ok := fields[FieldTarget]
	if !ok {
		return nil, false
	}

	raw, ok := fields[FieldStatus]
	if !ok {
		return nil, false
	}

	status, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}

	return &Redirect{
		Status: normalizeStatus(status),
		Target: target,
	}, true
}

// normalizeStatus maps a stored status to the redirect status actually issued.
// Only the five redirect codes pass through; everything else falls back to
// 303 See Other.
func normalizeStatus(status int) int {
	switch status {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return status
	default:
		return http.StatusSeeOther
	}
}
