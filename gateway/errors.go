package gateway

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind tags an upstream failure so views can present differentiated messages
// instead of one undifferentiated alert.
type Kind int

const (
	KindNetwork Kind = iota + 1
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindBadRequest
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindServer:
		return "server"
	}
	return "unknown"
}

// Error is the tagged result of a failed gateway call.
type Error struct {
	Kind    Kind
	Op      string
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (%d): %s", e.Op, e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

// KindOf returns the Kind of a gateway error, or 0 for any other error.
func KindOf(err error) Kind {
	if apiErr, ok := errors.Cause(err).(*Error); ok {
		return apiErr.Kind
	}
	return 0
}

// IsNotFound reports whether err is an upstream 404. Views use it to treat
// "no record yet" (e.g. a thesis without a review) as data, not failure.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
