package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/sweetshop/internal/common"
	"github.com/dmitrijs2005/sweetshop/internal/models"
	"github.com/google/uuid"
)

// HTTPClient is the concrete Client over HTTP/JSON.
//
// The bearer token is pulled from tokenFn on every request, so the client
// always carries the current session's token without holding auth state of
// its own.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokenFn func() string
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokenFn: func() string { return "" },
	}
}

// SetTokenSource wires the session's current token into outbound requests.
func (c *HTTPClient) SetTokenSource(fn func() string) {
	if fn != nil {
		c.tokenFn = fn
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// Login posts form-encoded credentials (the backend speaks the OAuth2
// password flow, which expects the email in the "username" field) and
// returns the issued bearer token.
func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", string(password))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", newError(resp)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	return tr.AccessToken, nil
}

func (c *HTTPClient) Register(ctx context.Context, email string, password []byte) error {
	body := map[string]string{"email": email, "password": string(password)}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

func (c *HTTPClient) List(ctx context.Context, filter *Filter) ([]models.Sweet, error) {
	path := "/sweets"
	if !filter.IsZero() {
		path = "/sweets/search?" + filter.values().Encode()
	}

	var items []models.Sweet
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) Purchase(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/sweets/%d/purchase", id), nil, nil)
}

func (c *HTTPClient) Create(ctx context.Context, item models.NewSweet) (*models.Sweet, error) {
	var created models.Sweet
	if err := c.do(ctx, http.MethodPost, "/sweets/", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) Update(ctx context.Context, id int64, patch models.SweetPatch) (*models.Sweet, error) {
	var updated models.Sweet
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/sweets/%d", id), patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/sweets/%d", id), nil, nil)
}

func (c *HTTPClient) Restock(ctx context.Context, id int64, amount int) (*models.Sweet, error) {
	var updated models.Sweet
	body := models.RestockRequest{Amount: amount}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/sweets/%d/restock", id), body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil and the response has a body). Non-2xx responses become *Error.
func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.tokenFn(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrorUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// newError reads the error body and classifies the failure. The backend
// reports problems as {"detail": "..."}; anything else leaves Message empty
// and the caller falls back to a generic text.
func newError(resp *http.Response) *Error {
	var detail string
	if b, err := io.ReadAll(io.LimitReader(resp.Body, 4096)); err == nil {
		var er errorResponse
		if json.Unmarshal(b, &er) == nil {
			detail = er.Detail
		}
	}
	return &Error{
		Status:  resp.StatusCode,
		Kind:    classify(resp.StatusCode, detail),
		Message: detail,
	}
}
