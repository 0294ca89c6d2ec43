package web

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/unithesis/portal/core"
	"github.com/unithesis/portal/gateway"
)

// alertMessage is the single presentation function for failures: every
// gateway error funnels through here so user messaging is differentiated by
// kind in exactly one place.
func alertMessage(err error) string {
	switch gateway.KindOf(err) {
	case gateway.KindNetwork:
		return "Could not reach the university server. Please try again later."
	case gateway.KindUnauthorized:
		return "Your session is no longer valid. Please log out and sign in again."
	case gateway.KindForbidden:
		return "You do not have permission to perform this action."
	case gateway.KindNotFound:
		return "The requested record was not found."
	case gateway.KindBadRequest:
		if apiErr, ok := errors.Cause(err).(*gateway.Error); ok && apiErr.Message != "" {
			return apiErr.Message
		}
		return "The request was rejected. Please check the form and try again."
	default:
		return "Something went wrong. Please try again later."
	}
}

// newAppHTTPErrorHandler returns a custom echo.HTTPErrorHandler for errors
// that escape the handlers. signalShutdown is called whenever a core.shutdown
// error is caught so the server can stop gracefully.
func newAppHTTPErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code := http.StatusInternalServerError
		message := http.StatusText(code)

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
				origErr = herr
			}
			code = origErr.Code
			if msg, ok := origErr.Message.(string); ok {
				message = msg
			}
		default: // any other error is a server error
			if sess, ok := contextSession(ctx); ok {
				logger.Error(message, errors.Wrap(err, message), sess)
			} else {
				logger.Error(message, errors.Wrap(err, message))
			}

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}

		if !ctx.Response().Committed {
			p := newPage(ctx, "Error")
			p.fail(message)
			if rErr := ctx.Render(code, "error", p); rErr != nil {
				_ = ctx.String(code, message)
			}
		}
	}
}
