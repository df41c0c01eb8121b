// Package noaa fetches METAR and TAF bulletins from the NOAA TGFTP
// plain-text mirror.
package noaa

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/couchcryptid/aviation-weather-bot/internal/domain"
	"github.com/couchcryptid/aviation-weather-bot/internal/observability"
)

// userAgent identifies the bot to the mirror on every request.
const userAgent = "aviation-weather-bot/1.0 (+https://github.com/couchcryptid/aviation-weather-bot)"

// Metric label values for fetch outcomes.
const (
	reportMETAR = "metar"
	reportTAF   = "taf"

	outcomeSuccess  = "success"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// Client implements bot.WeatherFetcher against the TGFTP mirror.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a TGFTP fetch client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
		metrics: metrics,
	}
}

// Fetch retrieves the station's METAR and then its TAF, sequentially. The
// first failed request aborts the lookup; a station file with no data line
// is an absent bulletin, not a failure. When both bulletins come back absent
// the result is a KindNoData error.
func (c *Client) Fetch(ctx context.Context, station domain.Station) (domain.Report, error) {
	metar, err := c.fetchBulletin(ctx, reportMETAR, station,
		fmt.Sprintf("%s/observations/metar/stations/%s.TXT", c.baseURL, station))
	if err != nil {
		return domain.Report{}, err
	}

	taf, err := c.fetchBulletin(ctx, reportTAF, station,
		fmt.Sprintf("%s/forecasts/taf/stations/%s.TXT", c.baseURL, station))
	if err != nil {
		return domain.Report{}, err
	}

	if !metar.Present() && !taf.Present() {
		return domain.Report{}, &domain.FetchError{Kind: domain.KindNoData, Station: station}
	}

	return domain.Report{Station: station, METAR: metar, TAF: taf}, nil
}

func (c *Client) fetchBulletin(ctx context.Context, report string, station domain.Station, fullURL string) (domain.Bulletin, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.Bulletin{}, fmt.Errorf("create %s request: %w", report, err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.FetchDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues(report, outcomeError).Inc()
		return domain.Bulletin{}, &domain.FetchError{
			Kind:     domain.KindTransport,
			Station:  station,
			Category: transportCategory(err),
			Err:      err,
		}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.metrics.FetchRequests.WithLabelValues(report, outcomeNotFound).Inc()
		return domain.Bulletin{}, &domain.FetchError{Kind: domain.KindNotFound, Station: station}

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.metrics.FetchRequests.WithLabelValues(report, outcomeError).Inc()
		return domain.Bulletin{}, &domain.FetchError{
			Kind:       domain.KindUpstreamStatus,
			Station:    station,
			StatusCode: resp.StatusCode,
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.FetchRequests.WithLabelValues(report, outcomeError).Inc()
		return domain.Bulletin{}, &domain.FetchError{
			Kind:     domain.KindTransport,
			Station:  station,
			Category: transportCategory(err),
			Err:      err,
		}
	}

	c.metrics.FetchRequests.WithLabelValues(report, outcomeSuccess).Inc()
	return domain.ParseBulletin(string(body)), nil
}

// transportCategory maps a transport-level error onto the closed set of
// category names surfaced to users, replacing open-ended exception text.
func transportCategory(err error) string {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return "timeout"
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "dns"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "connection"
	}
	return "transport"
}
