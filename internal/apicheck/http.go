package apicheck

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/okian/draftroots/pkg/logger"
)

// httpClient wraps http.Client with a per-request timeout and counts requests.
type httpClient struct {
	client   *http.Client
	baseURL  string
	requests atomic.Int64
	failed   atomic.Int64
}

func newHTTPClient(baseURL string, timeout time.Duration) *httpClient {
	return &httpClient{client: &http.Client{Timeout: timeout}, baseURL: baseURL}
}

// get fetches path and returns the body when the status is 200.
func (c *httpClient) get(ctx context.Context, path string) ([]byte, error) {
	c.requests.Add(1)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		c.failed.Add(1)
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.failed.Add(1)
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.failed.Add(1)
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		c.failed.Add(1)
		return nil, fmt.Errorf("%w: GET %s: %d %s", ErrStatus, path, resp.StatusCode, body)
	}
	return body, nil
}

// getJSON fetches path and decodes the body into v.
func (c *httpClient) getJSON(ctx context.Context, path string, v any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// fetchTeams retrieves every team's institution counts with a worker pool.
func fetchTeams(ctx context.Context, c *httpClient, teams []string, workers int, verbose bool) (map[string][]Count, error) {
	if workers < 1 {
		workers = 1
	}
	log := logger.Named("apicheck")

	var (
		mu       sync.Mutex
		out      = make(map[string][]Count, len(teams))
		firstErr error
		wg       sync.WaitGroup
	)
	teamChan := make(chan string, workers*workerChannelMultiplier)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for team := range teamChan {
				var counts []Count
				err := c.getJSON(ctx, "/teams/"+url.PathEscape(team)+"/colleges", &counts)

				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = err
				}
				if err == nil {
					out[team] = counts
				}
				mu.Unlock()

				if verbose {
					log.Info(ctx, "team fetched", logger.String("team", team), logger.Int("institutions", len(counts)))
				}
			}
		}()
	}

	// Send teams to workers
	go func() {
		defer close(teamChan)
		for _, team := range teams {
			select {
			case <-ctx.Done():
				return
			case teamChan <- team:
			}
		}
	}()

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
