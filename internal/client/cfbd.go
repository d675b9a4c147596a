package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"firstballot/prospects/internal/models"
)

// Client is the CollegeFootballData API client
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  *http.Client
	rateLimiter chan struct{}    // Concurrency semaphore, sized to the burst limit
	pace        <-chan time.Time // Paces request starts to the per-minute rate
	maxRetries  int
	retryDelay  time.Duration
}

// NewClient creates a new CollegeFootballData API client. ratePerMinute paces
// request starts and burst caps in-flight requests; non-positive values
// disable pacing and fall back to a burst of 20.
func NewClient(baseURL, apiKey string, timeout time.Duration, ratePerMinute, burst int) *Client {
	if burst <= 0 {
		burst = 20
	}
	rateLimiter := make(chan struct{}, burst)
	for i := 0; i < burst; i++ {
		rateLimiter <- struct{}{}
	}

	var pace <-chan time.Time
	if ratePerMinute > 0 {
		pace = time.Tick(time.Minute / time.Duration(ratePerMinute))
	}

	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		rateLimiter: rateLimiter,
		pace:        pace,
		maxRetries:  3,
		retryDelay:  1 * time.Second,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// get performs a GET request to the CFBD API with retry logic and rate limiting
func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, path)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			// Exponential backoff: 1s, 2s, 4s
			backoff := c.retryDelay * time.Duration(1<<uint(attempt-1))
			log.Info().
				Str("url", url).
				Int("attempt", attempt).
				Dur("backoff", backoff).
				Msg("Retrying API request after backoff")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		// Rate limiting: acquire semaphore
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.rateLimiter:
			defer func() { c.rateLimiter <- struct{}{} }()
		}

		if c.pace != nil {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-c.pace:
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		// Add headers
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", "firstballot-prospects/1.0")

		// Add query parameters
		if len(params) > 0 {
			q := req.URL.Query()
			for key, value := range params {
				q.Add(key, value)
			}
			req.URL.RawQuery = q.Encode()
		}

		log.Debug().
			Str("url", url).
			Str("method", req.Method).
			Int("attempt", attempt+1).
			Msg("Making API request")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("API request failed: %w", err)
			// Retry on network errors
			if attempt < c.maxRetries {
				continue
			}
			return nil, lastErr
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			lastErr = fmt.Errorf("failed to read response body: %w", err)
			if attempt < c.maxRetries {
				continue
			}
			return nil, lastErr
		}

		// Handle different status codes
		switch resp.StatusCode {
		case http.StatusOK:
			// Success
			log.Debug().
				Str("url", url).
				Int("status", resp.StatusCode).
				Int("size", len(body)).
				Msg("API request successful")
			return body, nil

		case http.StatusTooManyRequests, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			// Retryable errors
			lastErr = fmt.Errorf("API returned retryable status %d: %s", resp.StatusCode, string(body))
			if attempt < c.maxRetries {
				log.Warn().
					Str("url", url).
					Int("status", resp.StatusCode).
					Int("attempt", attempt+1).
					Msg("Received retryable error, will retry")
				continue
			}
			return nil, lastErr

		case http.StatusUnauthorized, http.StatusForbidden:
			// Don't retry auth errors
			return nil, fmt.Errorf("API authentication failed (status %d): %s", resp.StatusCode, string(body))

		default:
			// Other errors - don't retry
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
		}
	}

	return nil, lastErr
}

// PlayerSearchResult is one row from the player search endpoint
type PlayerSearchResult struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Height   *int   `json:"height,omitempty"`
	Weight   *int   `json:"weight,omitempty"`
}

// SearchPlayers searches college players by name, optionally filtered by position
func (c *Client) SearchPlayers(ctx context.Context, searchTerm, position string) ([]PlayerSearchResult, error) {
	params := map[string]string{"searchTerm": searchTerm}
	if position != "" {
		params["position"] = position
	}

	body, err := c.get(ctx, "player/search", params)
	if err != nil {
		return nil, fmt.Errorf("failed to search players: %w", err)
	}

	var results []PlayerSearchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player search results: %w", err)
	}

	return results, nil
}

// StatRow is one season stat entry from the player season stats endpoint.
// CFBD returns one row per (player, category, statType) combination.
type StatRow struct {
	Season   int     `json:"season"`
	PlayerID int     `json:"playerId"`
	Player   string  `json:"player"`
	Team     string  `json:"team"`
	Category string  `json:"category"`
	StatType string  `json:"statType"`
	Stat     float64 `json:"stat"`
}

// FetchPlayerSeasonStats fetches per-season stat rows for a team and year
func (c *Client) FetchPlayerSeasonStats(ctx context.Context, year int, team string) ([]StatRow, error) {
	params := map[string]string{
		"year": strconv.Itoa(year),
	}
	if team != "" {
		params["team"] = team
	}

	body, err := c.get(ctx, "stats/player/season", params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch player season stats: %w", err)
	}

	var rows []StatRow
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player season stats: %w", err)
	}

	return rows, nil
}

// RecruitRow is one row from the recruiting rankings endpoint
type RecruitRow struct {
	Name     string   `json:"name"`
	Position string   `json:"position"`
	Stars    *int     `json:"stars,omitempty"`
	Ranking  *int     `json:"ranking,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	School   string   `json:"committedTo"`
	Year     int      `json:"year"`
}

// FetchRecruits fetches high school recruiting rankings for a class year
func (c *Client) FetchRecruits(ctx context.Context, year int) ([]RecruitRow, error) {
	params := map[string]string{
		"year":           strconv.Itoa(year),
		"classification": "HighSchool",
	}

	body, err := c.get(ctx, "recruiting/players", params)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recruits: %w", err)
	}

	var recruits []RecruitRow
	if err := json.Unmarshal(body, &recruits); err != nil {
		return nil, fmt.Errorf("failed to unmarshal recruits: %w", err)
	}

	return recruits, nil
}

// PivotSeasonStats folds flat (category, statType) rows for one player into
// per-season stat structs keyed the way the aggregator expects them. Rows for
// other players are ignored.
func PivotSeasonStats(rows []StatRow, playerID int) []models.SeasonStat {
	bySeason := make(map[int]*models.SeasonStat)
	order := make([]int, 0, 4)

	seasonFor := func(season int) *models.SeasonStat {
		if s, ok := bySeason[season]; ok {
			return s
		}
		s := &models.SeasonStat{Season: season}
		bySeason[season] = s
		order = append(order, season)
		return s
	}

	setf := func(dst **float64, v float64) {
		val := v
		*dst = &val
	}

	for _, row := range rows {
		if row.PlayerID != playerID {
			continue
		}

		s := seasonFor(row.Season)
		key := strings.ToUpper(row.Category) + "/" + strings.ToUpper(row.StatType)

		switch key {
		case "PASSING/YDS":
			setf(&s.PassingYards, row.Stat)
		case "PASSING/TD":
			setf(&s.PassingTouchdowns, row.Stat)
		case "PASSING/INT":
			setf(&s.PassingINTs, row.Stat)
		case "PASSING/ATT":
			setf(&s.PassingAttempts, row.Stat)
		case "PASSING/COMPLETIONS":
			setf(&s.PassingCompletions, row.Stat)
		case "RUSHING/YDS":
			setf(&s.RushingYards, row.Stat)
		case "RUSHING/TD":
			setf(&s.RushingTouchdowns, row.Stat)
		case "RUSHING/CAR":
			setf(&s.RushingAttempts, row.Stat)
		case "RECEIVING/REC":
			setf(&s.Receptions, row.Stat)
		case "RECEIVING/YDS":
			setf(&s.ReceivingYards, row.Stat)
		case "RECEIVING/TD":
			setf(&s.ReceivingTDs, row.Stat)
		case "RECEIVING/TARGETS":
			setf(&s.Targets, row.Stat)
		case "GENERAL/GAMES":
			g := int(row.Stat)
			s.Games = &g
		}
	}

	seasons := make([]models.SeasonStat, 0, len(order))
	for _, yr := range order {
		seasons = append(seasons, *bySeason[yr])
	}
	return seasons
}
