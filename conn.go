package braket

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	// DefaultUrl is the default device service endpoint
	DefaultUrl = "https://braket.us-east-1.amazonaws.com"
	// DefaultRetries is the default number of attempts every request gets
	DefaultRetries = 5
	// DefaultTimeout is the default timeout for each request
	DefaultTimeout = 30 * time.Second
)

type dialOptions struct {
	// Login Info
	token string

	// API Endpoint Info
	url string

	// API Request Info
	retries int
	timeout time.Duration
}

// DialOption configures how the connection works
type DialOption func(*dialOptions)

// WithApiToken configures the connection to authenticate with the given API token
func WithApiToken(token string) DialOption {
	return func(options *dialOptions) {
		options.token = token
	}
}

// WithApiUrl configures the connection to use the provided url for the API endpoints
func WithApiUrl(url string) DialOption {
	return func(options *dialOptions) {
		options.url = url
	}
}

// WithRetries configures the number of attempts performed for any request
func WithRetries(retries int) DialOption {
	return func(options *dialOptions) {
		options.retries = retries
	}
}

// WithTimeout configures the timeout for each request
func WithTimeout(timeout time.Duration) DialOption {
	return func(options *dialOptions) {
		options.timeout = timeout
	}
}

// Conn is a representation of a connection to the device service
type Conn struct {
	dopts dialOptions
	c     *http.Client
}

// Dial takes a list of DialOptions and returns a connection to the device service
func Dial(options ...DialOption) (*Conn, error) {
	c := &Conn{
		c: &http.Client{},
	}

	for _, option := range options {
		option(&c.dopts)
	}

	if c.dopts.token == "" {
		return nil, NewCredentialsErr(
			"missing credentials for the device service. please provide an api token",
			"pass WithApiToken to Dial",
		)
	}

	// Set defaults
	if c.dopts.url == "" {
		c.dopts.url = DefaultUrl
	}

	if c.dopts.retries == 0 {
		c.dopts.retries = DefaultRetries
	}

	if c.dopts.timeout == 0 {
		c.dopts.timeout = DefaultTimeout
	}
	c.c.Timeout = c.dopts.timeout

	return c, nil
}

// newRequest is simply just a helper for generating requests
func (c *Conn) newRequest(ctx context.Context, method, path, params string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s/%s%s", c.dopts.url, path, params), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.dopts.token)
	if method == http.MethodPost || method == http.MethodPut {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// decode is simply a helper for decoding json
func (c *Conn) decode(r io.Reader, i interface{}) error {
	return json.NewDecoder(r).Decode(i)
}

// do runs a http request, retrying transient failures with exponential
// backoff. A 401 stops the retries immediately: the token is static, so
// retrying cannot help.
// Note: this shouldn't be needed by Client users but it is here to expose a little lower API if they want to
func (c *Conn) do(req *http.Request) (*http.Response, error) {
	operation := func() (*http.Response, error) {
		resp, err := c.c.Do(req)
		if err != nil {
			return nil, err
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return resp, nil
		case resp.StatusCode == http.StatusUnauthorized:
			resp.Body.Close()
			return nil, backoff.Permanent(NewCredentialsErr(
				"the device service rejected the api token",
				fmt.Sprintf("got %d from %v", resp.StatusCode, req.URL),
			))
		case resp.StatusCode == http.StatusNotFound:
			resp.Body.Close()
			return nil, backoff.Permanent(UnknownDeviceErr{Arn: strings.TrimPrefix(req.URL.Path, "/devices/")})
		case resp.StatusCode >= http.StatusInternalServerError:
			resp.Body.Close()
			return nil, ApiErr{
				usrMsg: "failed to get proper response from the device service",
				devMsg: fmt.Sprintf("got %d from %v", resp.StatusCode, req.URL),
			}
		default:
			resp.Body.Close()
			return nil, backoff.Permanent(ApiErr{
				usrMsg: fmt.Sprintf("the device service returned an unexpected %d response", resp.StatusCode),
				devMsg: fmt.Sprintf("got %d from %v", resp.StatusCode, req.URL),
			})
		}
	}

	return backoff.Retry(req.Context(), operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(uint(c.dopts.retries)),
	)
}

// get is a convenience wrapper around a GET request
func (c *Conn) get(ctx context.Context, path, params string) (*http.Response, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, params, nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}
