// Package weather looks up current conditions for the weather command.
package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/atomicstack/termfolio/internal/logging/events"
	"github.com/tidwall/gjson"
)

const (
	DefaultEndpoint = "https://api.openweathermap.org/data/2.5/weather"
	DefaultTimeout  = 10 * time.Second

	maxBody = 1 << 20
)

// ErrEmptyLocation is returned before any request is made.
var ErrEmptyLocation = errors.New("weather: location is required")

// Config describes the weather endpoint.
type Config struct {
	Endpoint    string
	APIKey      string
	Timeout     time.Duration
	MinInterval time.Duration
}

// Report is the subset of the response the weather command shows.
type Report struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Humidity  int     `json:"humidity"`
	Condition string  `json:"condition"`
	WindKmh   float64 `json:"wind_kmh"`
}

// Client performs a single GET per lookup. It never retries.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	throttle *throttle
}

// NewClient builds a client. A nil httpClient gets one with cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		endpoint: endpoint,
		apiKey:   cfg.APIKey,
		http:     httpClient,
		throttle: newThrottle(cfg.MinInterval),
	}
}

// Lookup fetches current conditions for location.
func (c *Client) Lookup(ctx context.Context, location string) (Report, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return Report{}, ErrEmptyLocation
	}
	events.Weather.Fetch(location)
	report, err := c.lookup(ctx, location)
	events.Weather.Error(location, err)
	return report, err
}

func (c *Client) lookup(ctx context.Context, location string) (Report, error) {
	if err := c.throttle.wait(ctx); err != nil {
		return Report{}, err
	}
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return Report{}, fmt.Errorf("parse endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", location)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Report{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return Report{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Report{}, fmt.Errorf("Error: %d - %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return Report{}, fmt.Errorf("read response: %w", err)
	}
	return parse(body)
}

func parse(body []byte) (Report, error) {
	if !gjson.ValidBytes(body) {
		return Report{}, errors.New("parse response: invalid JSON")
	}
	doc := gjson.ParseBytes(body)
	for _, path := range []string{"name", "main.temp"} {
		if !doc.Get(path).Exists() {
			return Report{}, fmt.Errorf("parse response: missing %s", path)
		}
	}
	return Report{
		Name:      doc.Get("name").String(),
		Country:   doc.Get("sys.country").String(),
		Temp:      doc.Get("main.temp").Float(),
		FeelsLike: doc.Get("main.feels_like").Float(),
		Humidity:  int(doc.Get("main.humidity").Int()),
		Condition: doc.Get("weather.0.main").String(),
		WindKmh:   doc.Get("wind.speed").Float() * 3.6,
	}, nil
}
