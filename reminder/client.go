package reminder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config is the explicitly constructed client configuration for a reminder
// run. Nothing here is process-global; cmd/reminder builds one from the
// environment and passes it down.
type Config struct {
	Endpoint string        // GraphQL endpoint of the CRM server
	Retries  int           // transport-level retry count
	LogFile  string        // append-only reminder log path
	Window   time.Duration // how far back to look for orders
}

func (c Config) withDefaults() Config {
	if c.Endpoint == "" {
		c.Endpoint = "http://localhost:8080/graphql"
	}
	if c.Retries <= 0 {
		c.Retries = 3
	}
	if c.LogFile == "" {
		c.LogFile = "/tmp/order_reminders_log.txt"
	}
	if c.Window <= 0 {
		c.Window = 7 * 24 * time.Hour
	}
	return c
}

// Client is a minimal GraphQL-over-HTTP client with transport-level retries.
type Client struct {
	endpoint string
	retries  int
	http     *http.Client
}

func NewClient(endpoint string, retries int) *Client {
	return &Client{
		endpoint: endpoint,
		retries:  retries,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

// Query posts the query and decodes the data envelope into out. Transport
// failures and non-200 responses are retried up to the configured count;
// GraphQL-level errors are not, since resending the same document cannot
// succeed.
func (c *Client) Query(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		retryable, err := c.do(ctx, body, out)
		if err == nil {
			return nil
		}
		if !retryable {
			return err
		}
		lastErr = err

		if attempt == c.retries-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt+1) * time.Second):
		}
	}
	return lastErr
}

func (c *Client) do(ctx context.Context, body []byte, out interface{}) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return true, fmt.Errorf("graphql endpoint returned %d", resp.StatusCode)
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return true, fmt.Errorf("decode graphql response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return false, fmt.Errorf("graphql error: %s", envelope.Errors[0].Message)
	}
	if out != nil && envelope.Data != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return false, fmt.Errorf("decode graphql data: %w", err)
		}
	}
	return false, nil
}
