package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
)

// TokenSource supplies the bearer credential attached to outbound requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// HttpRequest is a struct to hold request parameters
type HttpRequest struct {
	URL     string
	Method  string
	Body    []byte
	Headers map[string]string
}

// Response holds the status code and raw body of a completed request.
type Response struct {
	StatusCode int
	Body       []byte
}

type Client struct {
	httpClient    *http.Client
	tokens        TokenSource
	breaker       *gobreaker.CircuitBreaker[Response]
	onAuthFailure func()
}

func NewClient(tokens TokenSource, breaker *gobreaker.CircuitBreaker[Response]) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
		breaker:    breaker,
	}
}

// SetAuthFailureHook registers the callback invoked synchronously whenever a
// response comes back with status 401, before the response reaches the caller.
func (c *Client) SetAuthFailureHook(hook func()) {
	c.onAuthFailure = hook
}

// SendRequest sends an HTTP request based on the given HttpRequest struct. A
// non-nil error means no response was received; HTTP-level failures are
// returned as a Response with the upstream status code.
func (c *Client) SendRequest(ctx context.Context, req HttpRequest) (Response, error) {
	resp, err := c.breaker.Execute(func() (Response, error) {
		return c.do(ctx, req)
	})
	if err != nil {
		log.Error().Err(err).Str("method", req.Method).Str("URL", req.URL).Msg("request failed")
		return Response{}, err
	}

	if resp.StatusCode == http.StatusUnauthorized && c.onAuthFailure != nil {
		log.Warn().Str("URL", req.URL).Msg("authentication failure reported by remote API")
		c.onAuthFailure()
	}

	return resp, nil
}

func (c *Client) do(ctx context.Context, req HttpRequest) (Response, error) {
	request, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewBuffer(req.Body))
	if err != nil {
		return Response{}, fmt.Errorf("failed to create request: %v", err)
	}

	for key, value := range req.Headers {
		request.Header.Set(key, value)
	}

	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			request.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	response, err := c.httpClient.Do(request)
	if err != nil {
		return Response{}, fmt.Errorf("request failed: %v", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return Response{}, fmt.Errorf("failed to read response body: %v", err)
	}

	log.Debug().
		Str("method", req.Method).
		Str("URL", req.URL).
		Int("status", response.StatusCode).
		Int64("latency", time.Since(start).Milliseconds()).
		Msg("request complete")

	return Response{StatusCode: response.StatusCode, Body: body}, nil
}
