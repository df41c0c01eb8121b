package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/couchcryptid/aviation-weather-bot/internal/domain"
	"github.com/stretchr/testify/assert"
)

const (
	testMETAR = "RCTP 291200Z 02008KT 9999 FEW015 SCT040 28/24 Q1008 NOSIG"
	testTAF   = "TAF RCTP 291130Z 2912/3018 03010KT 9999 FEW020"
)

func TestFormatReport_BothBulletins(t *testing.T) {
	got := FormatReport(domain.Report{
		Station: "RCTP",
		METAR: domain.Bulletin{
			Text:     testMETAR,
			IssuedAt: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
		},
		TAF: domain.Bulletin{Text: testTAF},
	})

	want := "RCTP aviation weather\n\n" +
		"METAR:\n" +
		testMETAR + "\n" +
		"(observed 2026-08-29 12:00 UTC)\n\n" +
		"TAF:\n" +
		testTAF

	assert.Equal(t, want, got)
}

func TestFormatReport_PartialResult(t *testing.T) {
	got := FormatReport(domain.Report{
		Station: "RCTP",
		TAF:     domain.Bulletin{Text: testTAF},
	})

	assert.Contains(t, got, "No recent METAR available for RCTP.")
	assert.Contains(t, got, testTAF)
	assert.NotContains(t, got, "Weather lookup failed")
}

func TestFormatReport_NoIssuanceTimestamp(t *testing.T) {
	got := FormatReport(domain.Report{
		Station: "RCTP",
		METAR:   domain.Bulletin{Text: testMETAR},
		TAF:     domain.Bulletin{Text: testTAF},
	})

	assert.NotContains(t, got, "observed")
}

func TestFormatReport_Deterministic(t *testing.T) {
	report := domain.Report{
		Station: "KLAX",
		METAR:   domain.Bulletin{Text: "KLAX 291153Z 25006KT 10SM FEW015 21/14 A2992"},
	}

	assert.Equal(t, FormatReport(report), FormatReport(report))
}

func TestFormatFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"not found names the station",
			&domain.FetchError{Kind: domain.KindNotFound, Station: "ZZZZ"},
			"No METAR/TAF reports are published for ZZZZ",
		},
		{
			"no data names the station",
			&domain.FetchError{Kind: domain.KindNoData, Station: "RCTP"},
			"No METAR/TAF data found for RCTP.",
		},
		{
			"transport names the category",
			&domain.FetchError{Kind: domain.KindTransport, Station: "RCTP", Category: "timeout"},
			"(timeout error)",
		},
		{
			"upstream status names the code",
			&domain.FetchError{Kind: domain.KindUpstreamStatus, Station: "RCTP", StatusCode: 502},
			"(status 502)",
		},
		{
			"unknown error gets generic wrap",
			errors.New("boom"),
			"Unexpected error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatFailure(tt.err)
			assert.Contains(t, got, "Weather lookup failed:\n")
			assert.Contains(t, got, tt.want)
		})
	}
}

// A 404 and a timeout must read differently to the user.
func TestFormatFailure_NotFoundDistinctFromTransport(t *testing.T) {
	notFound := FormatFailure(&domain.FetchError{Kind: domain.KindNotFound, Station: "RCTP"})
	timeout := FormatFailure(&domain.FetchError{Kind: domain.KindTransport, Station: "RCTP", Category: "timeout"})

	assert.NotEqual(t, notFound, timeout)
}

// The failure reply is the wrapped message alone, never the two-section format.
func TestFormatFailure_NotTwoSectionFormat(t *testing.T) {
	got := FormatFailure(&domain.FetchError{Kind: domain.KindNoData, Station: "RCTP"})

	assert.NotContains(t, got, "METAR:")
	assert.NotContains(t, got, "TAF:")
}
