package client

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
)

const (
	defaultPrefix  = "/api/v1"
	defaultTimeout = 30 * time.Second
)

// Config configures a Client.
type Config struct {
	// BaseURL is the server origin, e.g. "https://api.jobhunter.example".
	BaseURL string
	// Prefix is the API version prefix. Defaults to "/api/v1".
	Prefix string
	// HTTPClient overrides the underlying transport. Defaults to a client
	// with a 30s timeout.
	HTTPClient *http.Client
	// Storage persists the session between runs. Defaults to in-memory.
	Storage Storage
}

// Client is the authenticated entry point to the API. Resource families hang
// off it and share one session and one list cache.
type Client struct {
	baseURL string
	prefix  string
	http    *http.Client
	cache   *listCache

	Session      *SessionStore
	Jobs         *JobsClient
	Users        *UsersClient
	Skills       *SkillsClient
	Benefits     *BenefitsClient
	Applications *ApplicationsClient
}

// New builds a Client. The session starts empty; call Session.Restore or
// Session.Login before authenticated requests.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("client: BaseURL is required")
	}
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	storage := cfg.Storage
	if storage == nil {
		storage = NewMemoryStorage()
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		prefix:  prefix,
		http:    httpClient,
		cache:   newListCache(),
	}
	c.Session = NewSessionStore(storage)
	c.Session.client = c
	c.Jobs = &JobsClient{c: c}
	c.Users = &UsersClient{c: c}
	c.Skills = &SkillsClient{c: c}
	c.Benefits = &BenefitsClient{c: c}
	c.Applications = &ApplicationsClient{c: c}
	return c, nil
}

// APIError is a non-2xx response. Error returns the server's detail message.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	return e.Detail
}

// RegisterInput is the payload for account creation.
type RegisterInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role"`
}

// do issues one request: base URL + prefix + path, JSON body, Bearer token
// when the session has one. Caller headers win over the defaults. Non-2xx
// responses become an *APIError carrying the body's detail message; 2xx
// bodies decode into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, headers http.Header, body, out any) error {
	u := c.baseURL + c.prefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, vs := range headers {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil {
		var envelope struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(data, &envelope) == nil && envelope.Detail != "" {
			apiErr.Detail = envelope.Detail
		}
	}
	if apiErr.Detail == "" {
		apiErr.Detail = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return apiErr
}
