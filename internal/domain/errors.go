package domain

import "fmt"

// FetchKind classifies why a bulletin fetch failed. The handler maps each
// kind to a distinct user-facing message, so kinds are a closed enumeration
// rather than free-form strings.
type FetchKind string

const (
	// KindNotFound: the mirror returned 404, meaning the station publishes
	// no report of the requested type.
	KindNotFound FetchKind = "not_found"

	// KindUpstreamStatus: the mirror answered with a non-2xx status other
	// than 404.
	KindUpstreamStatus FetchKind = "upstream_status"

	// KindTransport: the request never completed (timeout, DNS failure,
	// connection refused).
	KindTransport FetchKind = "transport"

	// KindNoData: both files were fetched but neither contained a report line.
	KindNoData FetchKind = "no_data"
)

// FetchError is the typed failure outcome of a weather fetch.
type FetchError struct {
	Kind    FetchKind
	Station Station

	// Category names the transport error class for KindTransport
	// ("timeout", "dns", "connection", "transport").
	Category string

	// StatusCode is set for KindUpstreamStatus.
	StatusCode int

	Err error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("no reports published for station %s", e.Station)
	case KindUpstreamStatus:
		return fmt.Sprintf("weather mirror returned status %d for station %s", e.StatusCode, e.Station)
	case KindTransport:
		return fmt.Sprintf("weather mirror unreachable (%s): %v", e.Category, e.Err)
	case KindNoData:
		return fmt.Sprintf("no METAR/TAF data found for station %s", e.Station)
	}
	return fmt.Sprintf("weather fetch failed for station %s: %v", e.Station, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
