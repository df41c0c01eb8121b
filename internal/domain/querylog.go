package domain

import (
	"errors"
	"time"
)

// Query outcomes recorded in the query log.
const (
	OutcomeAnswered  = "answered"
	OutcomeNotFound  = "not_found"
	OutcomeNoData    = "no_data"
	OutcomeUpstream  = "upstream_error"
	OutcomeTransport = "transport_error"
)

// QueryRecord is one answered (or failed) weather query, destined for the
// query-log topic. It carries no user identity, only the station asked about
// and how the lookup went.
type QueryRecord struct {
	Station    Station   `json:"station"`
	Outcome    string    `json:"outcome"`
	METARFound bool      `json:"metar_found"`
	TAFFound   bool      `json:"taf_found"`
	AnsweredAt time.Time `json:"answered_at"`
}

// NewQueryRecord builds the query-log record for a completed lookup.
// fetchErr nil means success; otherwise the outcome is derived from the
// fetch error kind.
func NewQueryRecord(station Station, report Report, fetchErr error) QueryRecord {
	rec := QueryRecord{
		Station:    station,
		Outcome:    OutcomeAnswered,
		AnsweredAt: clock.Now().UTC(),
	}

	if fetchErr == nil {
		rec.METARFound = report.METAR.Present()
		rec.TAFFound = report.TAF.Present()
		return rec
	}

	var fe *FetchError
	if errors.As(fetchErr, &fe) {
		switch fe.Kind {
		case KindNotFound:
			rec.Outcome = OutcomeNotFound
		case KindNoData:
			rec.Outcome = OutcomeNoData
		case KindUpstreamStatus:
			rec.Outcome = OutcomeUpstream
		case KindTransport:
			rec.Outcome = OutcomeTransport
		}
		return rec
	}

	rec.Outcome = OutcomeUpstream
	return rec
}
