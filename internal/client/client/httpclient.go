package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/packmate/internal/client/models"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"

	maxErrorBody = 4 << 10
)

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	tokens  TokenSource
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the API rooted at baseURL. timeout
// bounds every request; zero means no client-side timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse base url: unsupported scheme %q", u.Scheme)
	}

	c := &HTTPClient{
		baseURL: u,
		tokens:  TokenFunc(func() string { return "" }),
	}
	c.http = &http.Client{
		Timeout:   timeout,
		Transport: &bearerTransport{base: http.DefaultTransport, tokens: func() TokenSource { return c.tokens }},
	}

	return c, nil
}

// SetTokenSource swaps the token provider after construction; the session
// store is created after the client it logs in through.
func (c *HTTPClient) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

type authKey struct{}

// withAuth marks the request context so bearerTransport attaches a token.
func withAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, authKey{}, true)
}

type bearerTransport struct {
	base   http.RoundTripper
	tokens func() TokenSource
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if auth, _ := req.Context().Value(authKey{}).(bool); !auth {
		return t.base.RoundTrip(req)
	}

	token := t.tokens().Token()
	if token == "" {
		return t.base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	r.Header.Set(AuthorizationHeader, BearerScheme+" "+token)
	return t.base.RoundTrip(r)
}

func (c *HTTPClient) endpoint(path string) string {
	u := *c.baseURL
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String()
}

func (c *HTTPClient) newJSONRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do sends req and returns the raw body of a 2xx response.
func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.mapTransportError(req.Context(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.mapStatus(resp)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.mapTransportError(req.Context(), err)
	}
	return b, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, in, out any) error {
	req, err := c.newJSONRequest(ctx, method, path, in)
	if err != nil {
		return err
	}
	b, err := c.do(req)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrRequestFailed, err)
	}
	return nil
}

func (c *HTTPClient) mapTransportError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return ctx.Err()
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *HTTPClient) mapStatus(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(b, &body) == nil {
		apiErr.Message = body.Error
		if apiErr.Message == "" {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := c.newJSONRequest(ctx, http.MethodGet, "/", nil)
	if err != nil {
		return err
	}
	_, err = c.do(req)
	return err
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/login", credentials{username, password}, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", ErrEmptyToken
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, username, password string) error {
	return c.doJSON(ctx, http.MethodPost, "/register", credentials{username, password}, nil)
}

func (c *HTTPClient) ListTrips(ctx context.Context) ([]models.Trip, error) {
	req, err := c.newJSONRequest(withAuth(ctx), http.MethodGet, "/trips", nil)
	if err != nil {
		return nil, err
	}
	b, err := c.do(req)
	if err != nil {
		return nil, err
	}
	trips, err := models.DecodeTrips(b)
	if err != nil {
		return nil, fmt.Errorf("%w: decode trips: %v", ErrRequestFailed, err)
	}
	return trips, nil
}

func (c *HTTPClient) CreateTrip(ctx context.Context, trip models.NewTrip) (models.Trip, error) {
	req, err := c.newJSONRequest(withAuth(ctx), http.MethodPost, "/trips", trip)
	if err != nil {
		return models.Trip{}, err
	}
	b, err := c.do(req)
	if err != nil {
		return models.Trip{}, err
	}
	t, err := models.DecodeTrip(b)
	if err != nil {
		return models.Trip{}, fmt.Errorf("%w: decode trip: %v", ErrRequestFailed, err)
	}
	return t, nil
}

func (c *HTTPClient) GetTrip(ctx context.Context, id string) (models.Trip, error) {
	req, err := c.newJSONRequest(withAuth(ctx), http.MethodGet, "/trips/"+url.PathEscape(id), nil)
	if err != nil {
		return models.Trip{}, err
	}
	b, err := c.do(req)
	if err != nil {
		return models.Trip{}, err
	}
	t, err := models.DecodeTrip(b)
	if err != nil {
		return models.Trip{}, fmt.Errorf("%w: decode trip: %v", ErrRequestFailed, err)
	}
	return t, nil
}

func (c *HTTPClient) EditPackingList(ctx context.Context, tripID string, items []models.PackingItem) error {
	body := struct {
		TripID string               `json:"trip_id"`
		Items  []models.PackingItem `json:"items"`
	}{TripID: tripID, Items: items}
	return c.doJSON(withAuth(ctx), http.MethodPost, "/edit_packing_list", body, nil)
}

func (c *HTTPClient) GeneratePackingList(ctx context.Context, r models.PackingRequest) (models.GeneratedList, error) {
	var resp struct {
		PackingList json.RawMessage `json:"packing_list"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/generate_packing_list", r, &resp); err != nil {
		return models.GeneratedList{}, err
	}

	var out models.GeneratedList
	if len(resp.PackingList) == 0 || string(resp.PackingList) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(resp.PackingList, &out.Text); err == nil {
		return out, nil
	}
	if err := json.Unmarshal(resp.PackingList, &out.Items); err != nil {
		return models.GeneratedList{}, fmt.Errorf("%w: decode packing list: %v", ErrRequestFailed, err)
	}
	return out, nil
}

func (c *HTTPClient) GetSuggestions(ctx context.Context, destination string) (string, error) {
	var resp struct {
		Suggestions string `json:"suggestions"`
	}
	body := struct {
		Destination string `json:"destination"`
	}{destination}
	if err := c.doJSON(ctx, http.MethodPost, "/get_suggestions", body, &resp); err != nil {
		return "", err
	}
	return resp.Suggestions, nil
}

func (c *HTTPClient) AnalyzeReceipt(ctx context.Context, filename string, image io.Reader) (models.Receipt, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, filename))
	h.Set("Content-Type", "image/jpeg")
	part, err := mw.CreatePart(h)
	if err != nil {
		return models.Receipt{}, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return models.Receipt{}, fmt.Errorf("read image: %w", err)
	}
	if err := mw.Close(); err != nil {
		return models.Receipt{}, fmt.Errorf("build multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(withAuth(ctx), http.MethodPost, c.endpoint("/analyze-receipt"), &buf)
	if err != nil {
		return models.Receipt{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	b, err := c.do(req)
	if err != nil {
		return models.Receipt{}, err
	}
	var r models.Receipt
	if err := json.Unmarshal(b, &r); err != nil {
		return models.Receipt{}, fmt.Errorf("%w: decode receipt: %v", ErrRequestFailed, err)
	}
	return r, nil
}

func (c *HTTPClient) AddInvoice(ctx context.Context, receipt models.Receipt) error {
	return c.doJSON(withAuth(ctx), http.MethodPost, "/invoice/add", receipt, nil)
}
