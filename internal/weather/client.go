// Package weather fetches current conditions for route waypoints and
// converts them into journey risk modifiers. A missing API key or a
// failed lookup degrades to zero risk rather than blocking travel.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

const cacheTTL = 10 * time.Minute

// Conditions is the parsed snapshot for one location.
type Conditions struct {
	Temp        float64 `json:"temp"`
	Humidity    float64 `json:"humidity"`
	Wind        float64 `json:"wind"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

type cacheEntry struct {
	conditions Conditions
	fetched    time.Time
}

// Client queries the OpenWeatherMap current-weather endpoint with a
// per-coordinate session cache. Safe for concurrent use.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	now     func() time.Time

	mu    sync.Mutex
	cache map[string]cacheEntry
}

// Option adjusts client construction, mainly for tests.
type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// NewClient builds a weather client. An empty API key yields a client
// whose lookups always report no data.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		now:     time.Now,
		cache:   map[string]cacheEntry{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// owmResponse mirrors the subset of the OpenWeatherMap payload we read.
type owmResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

// Fetch returns current conditions for a coordinate, serving a cached
// snapshot when one is fresh enough. The second return is false when no
// data is available; callers should treat that as calm weather.
func (c *Client) Fetch(ctx context.Context, lat, lon float64) (Conditions, bool) {
	if c.apiKey == "" {
		return Conditions{}, false
	}

	key := fmt.Sprintf("%.2f,%.2f", lat, lon)

	c.mu.Lock()
	if entry, ok := c.cache[key]; ok && c.now().Sub(entry.fetched) < cacheTTL {
		c.mu.Unlock()
		return entry.conditions, true
	}
	c.mu.Unlock()

	url := fmt.Sprintf("%s?lat=%f&lon=%f&units=imperial&appid=%s", c.baseURL, lat, lon, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Conditions{}, false
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Conditions{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Conditions{}, false
	}

	var payload owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return Conditions{}, false
	}

	conditions := parseConditions(payload)

	c.mu.Lock()
	c.cache[key] = cacheEntry{conditions: conditions, fetched: c.now()}
	c.mu.Unlock()

	return conditions, true
}

// parseConditions normalizes the raw payload, filling benign defaults
// for missing fields.
func parseConditions(payload owmResponse) Conditions {
	conditions := Conditions{
		Temp:     payload.Main.Temp,
		Humidity: payload.Main.Humidity,
		Wind:     payload.Wind.Speed,
	}
	if conditions.Temp == 0 {
		conditions.Temp = 70
	}
	if conditions.Humidity == 0 {
		conditions.Humidity = 50
	}
	if conditions.Wind == 0 {
		conditions.Wind = 5
	}

	conditions.Condition = "clear"
	if len(payload.Weather) > 0 {
		conditions.Condition = strings.ToLower(payload.Weather[0].Main)
		conditions.Description = payload.Weather[0].Description
	}

	conditions.Icon = classifyIcon(conditions)
	return conditions
}

func classifyIcon(c Conditions) string {
	icon := "clear"
	switch {
	case strings.Contains(c.Condition, "thunder") || strings.Contains(c.Condition, "storm"):
		icon = "storm"
	case strings.Contains(c.Condition, "rain") || strings.Contains(c.Condition, "drizzle"):
		icon = "rain"
	case strings.Contains(c.Condition, "snow"):
		icon = "snow"
	case strings.Contains(c.Condition, "cloud"):
		icon = "clouds"
	case strings.Contains(c.Condition, "mist"), strings.Contains(c.Condition, "fog"), strings.Contains(c.Condition, "haze"):
		icon = "mist"
	}
	if c.Temp > 100 {
		icon = "hot"
	}
	if c.Wind > 35 {
		icon = "wind"
	}
	return icon
}
