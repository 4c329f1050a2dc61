package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"travel-checkout/internal/pkg/errs"
	"travel-checkout/internal/pkg/requestid"
)

var (
	ErrMissingID        = errs.New("response carries no id")
	ErrInvalidResponse  = errs.New("invalid response body")
	ErrTransportFailure = errs.New("backend unreachable")
)

// maxErrorBody bounds how much of a failed response is read for its message.
const maxErrorBody = 64 << 10

// UpstreamError is a non-2xx answer from one of the backend services.
type UpstreamError struct {
	Service    string
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("%s %s %s: status %d", e.Service, e.Method, e.Path, e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// ID accepts both JSON strings and JSON numbers; the backends are not
// consistent about which one they send.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*id = ID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

// firstID returns the first non-empty candidate.
func firstID(candidates ...ID) string {
	for _, c := range candidates {
		if c != "" {
			return string(c)
		}
	}
	return ""
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// baseClient is the JSON-over-HTTP transport shared by the service clients.
type baseClient struct {
	service string
	baseURL string
	http    *http.Client
}

func newBaseClient(service, baseURL string, httpClient *http.Client) baseClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return baseClient{
		service: service,
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c baseClient) doJSON(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errs.Wrapf(err, "encode %s request", c.service)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrapf(err, "build %s request", c.service)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errs.Mark(errs.Wrapf(err, "%s %s %s", c.service, method, path), ErrTransportFailure)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		upstreamErr := &UpstreamError{
			Service:    c.service,
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp.Body),
		}
		slog.Warn("backend call failed",
			"service", c.service,
			"method", method,
			"path", path,
			"status_code", resp.StatusCode,
			"message", upstreamErr.Message)
		return upstreamErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return errs.Mark(errs.Newf("%s %s %s: empty body", c.service, method, path), ErrInvalidResponse)
		}
		return errs.Mark(errs.Wrapf(err, "decode %s response", c.service), ErrInvalidResponse)
	}
	return nil
}

func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
		return ""
	}
	return strings.TrimSpace(string(raw))
}
