package collector

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/customer-relay/internal/auth"
	apperrors "github.com/umalmyha/customer-relay/internal/errors"
	"github.com/umalmyha/customer-relay/internal/requestid"
)

// maxDrainBytes limits how much of response body is read before connection is returned to the pool
const maxDrainBytes = 64 << 10

// Doer sends http requests, *http.Client satisfies it
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// TokenSigner signs bearer token attached to collector requests
type TokenSigner interface {
	Sign(string, time.Time) (*auth.Jwt, error)
}

// NewHTTPClient builds http client for collector. Redirects are not followed, 3xx response
// is returned as is, so one Send produces exactly one request.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Client posts payloads to collector
type Client struct {
	url         string
	contentType string
	doer        Doer
	signer      TokenSigner
}

// NewClient builds Client, signer is optional
func NewClient(url, mediaType string, doer Doer, signer TokenSigner) *Client {
	return &Client{
		url:         url,
		contentType: mime.FormatMediaType(mediaType, map[string]string{"charset": "utf-8"}),
		doer:        doer,
		signer:      signer,
	}
}

// URL returns collector address
func (c *Client) URL() string {
	return c.url
}

// Send posts payload to collector exactly once. Any http response is returned as Receipt,
// failures to get response are reported as *errors.CollectorUnavailableErr.
func (c *Client) Send(ctx context.Context, payload []byte) (*Receipt, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build collector request - %w", err)
	}
	req.Header.Set(echo.HeaderContentType, c.contentType)

	reqID := requestid.FromContext(ctx)
	if reqID != "" {
		req.Header.Set(echo.HeaderXRequestID, reqID)
	}

	if c.signer != nil {
		token, err := c.signer.Sign(reqID, time.Now().UTC())
		if err != nil {
			return nil, fmt.Errorf("failed to sign collector request - %w", err)
		}
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token.Signed)
	}

	res, err := c.doer.Do(req)
	if err != nil {
		return nil, apperrors.NewCollectorUnavailableErr(c.url, err)
	}
	defer res.Body.Close()

	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxDrainBytes))

	return newReceipt(res), nil
}
