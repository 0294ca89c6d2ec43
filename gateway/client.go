package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/unithesis/portal/core"
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "portal_gateway_requests_total",
		Help: "Outbound requests to the thesis-management API, by operation and outcome.",
	},
	[]string{"op", "outcome"},
)

// Client is the single configured HTTP client for the thesis-management API.
// It owns no state beyond its configuration: the credential is passed per
// call so that the session store remains the only place it lives.
type Client struct {
	baseURL string
	http    *http.Client
	logger  core.Logger
}

func NewClient(conf core.UpstreamConfig, logger core.Logger) *Client {
	return &Client{
		baseURL: conf.BaseURL,
		http:    &http.Client{Timeout: conf.Timeout},
		logger:  logger,
	}
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, token string, out interface{}) error {
	return c.send(ctx, op, http.MethodGet, path, query, token, nil, out)
}

// send issues a request with an optional JSON body. All calls — aggregate
// queries included — go through here; nothing talks to the upstream raw.
func (c *Client) send(ctx context.Context, op, method, path string, query url.Values, token string, in, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "%s: encoding request body", op)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return errors.Wrapf(err, "%s: building request", op)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())

	resp, err := c.http.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues(op, "network").Inc()
		return &Error{Kind: KindNetwork, Op: op, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := errorFromResponse(op, resp)
		requestsTotal.WithLabelValues(op, apiErr.Kind.String()).Inc()
		c.logger.Warn(op+": upstream error", apiErr)
		return apiErr
	}
	requestsTotal.WithLabelValues(op, "ok").Inc()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "%s: decoding response", op)
	}
	return nil
}

func errorFromResponse(op string, resp *http.Response) *Error {
	apiErr := &Error{Op: op, Status: resp.StatusCode}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		apiErr.Kind = KindUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		apiErr.Kind = KindForbidden
	case resp.StatusCode == http.StatusNotFound:
		apiErr.Kind = KindNotFound
	case resp.StatusCode < http.StatusInternalServerError:
		apiErr.Kind = KindBadRequest
	default:
		apiErr.Kind = KindServer
	}

	// best effort: upstream errors carry {"error": "..."} or a plain message
	if data, err := ioutil.ReadAll(io.LimitReader(resp.Body, 4<<10)); err == nil {
		var wrapped struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if jErr := json.Unmarshal(data, &wrapped); jErr == nil {
			if wrapped.Error != "" {
				apiErr.Message = wrapped.Error
			} else {
				apiErr.Message = wrapped.Message
			}
		}
		if apiErr.Message == "" {
			apiErr.Message = string(bytes.TrimSpace(data))
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
