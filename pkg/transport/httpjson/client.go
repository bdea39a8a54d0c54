// Package httpjson provides a transport.Client that POSTs the email as a JSON
// document to a fixed endpoint.
package httpjson

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"earlyaccess/pkg/domain"
	"earlyaccess/pkg/serrors"
	"earlyaccess/pkg/transport"
)

// maxErrorBody bounds how much of a failed response is kept in the error.
const maxErrorBody = 512

// Client submits emails to an HTTP endpoint. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

type submitReq struct {
	Email string `json:"email"`
}

// Submit sends {"email": ...} to the endpoint. Any 2xx answer is a success.
// Other statuses produce an ErrTransport (ErrRateLimited for 429) and an
// expired ctx deadline produces an ErrTimeout.
func (c *Client) Submit(ctx context.Context, email domain.EmailAddress) error {
	body, err := json.Marshal(submitReq{Email: string(email)})
	if err != nil {
		return fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return serrors.Wrap(serrors.ErrTimeout, err, "submission timed out")
		}

		return serrors.Wrap(serrors.ErrTransport, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(b))
	if resp.StatusCode == http.StatusTooManyRequests {
		return serrors.With(serrors.ErrRateLimited, "rate limited: %s", msg)
	}

	return serrors.With(serrors.ErrTransport, "submit failed with status %d: %s", resp.StatusCode, msg)
}

// Endpoint returns the URL submissions are sent to.
func (c *Client) Endpoint() string { return c.endpoint }

var _ transport.Client = (*Client)(nil)

// New constructs a Client that posts to endpoint using httpClient. A nil
// httpClient falls back to http.DefaultClient.
func New(httpClient *http.Client, endpoint string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}
