package wordapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vytor/wordull/internal/logger"
	"github.com/vytor/wordull/internal/models"
)

// Client fetches the daily solution word from the NYT wordle endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		log:        logger.Default().WithPrefix("wordapi"),
	}
}

type wordOfDayResp struct {
	Solution string `json:"solution"`
}

// FetchSolution returns the uppercase 5-letter solution for the given date
// (YYYY-MM-DD). Any transport, status, or payload problem is returned as an
// error; nothing is retried here.
func (c *Client) FetchSolution(ctx context.Context, date string) (string, error) {
	log := logger.FromContext(ctx).WithPrefix("wordapi").WithField("date", date)
	url := fmt.Sprintf("%s/%s.json", c.baseURL, date)

	log.Debug("fetching word of the day from: %s", url)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch word of the day: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	log.Debug("word response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("word request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return "", fmt.Errorf("word of day status %d: %s", resp.StatusCode, string(body))
	}

	var out wordOfDayResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Error("failed to decode word response: %v", err)
		return "", err
	}

	solution := strings.ToUpper(strings.TrimSpace(out.Solution))
	if len(solution) != models.WordLength {
		log.Error("upstream returned malformed solution: %q", out.Solution)
		return "", fmt.Errorf("malformed solution %q for %s", out.Solution, date)
	}

	log.Info("fetched solution for %s", date)
	return solution, nil
}
