package bot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/couchcryptid/aviation-weather-bot/internal/domain"
)

// UsageReply is sent when message text is not a 4-letter ICAO code.
const UsageReply = "Please send a 4-letter ICAO airport code, for example RCTP, RJAA, or KLAX."

// issuedAtLayout renders the mirror's bulletin timestamp in replies.
const issuedAtLayout = "2006-01-02 15:04"

// FormatReport builds the two-section reply for a successful lookup. It is a
// pure function of the report value.
func FormatReport(report domain.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s aviation weather\n\n", report.Station)

	b.WriteString("METAR:\n")
	if report.METAR.Present() {
		b.WriteString(report.METAR.Text)
		if !report.METAR.IssuedAt.IsZero() {
			fmt.Fprintf(&b, "\n(observed %s UTC)", report.METAR.IssuedAt.Format(issuedAtLayout))
		}
	} else {
		fmt.Fprintf(&b, "No recent METAR available for %s.", report.Station)
	}

	b.WriteString("\n\nTAF:\n")
	if report.TAF.Present() {
		b.WriteString(report.TAF.Text)
	} else {
		fmt.Fprintf(&b, "No recent TAF available for %s.", report.Station)
	}

	return b.String()
}

// FormatFailure wraps a failed lookup into a single plain-text reply. Each
// fetch error kind gets its own message so a missing station reads differently
// from an unreachable mirror.
func FormatFailure(err error) string {
	var fe *domain.FetchError
	if errors.As(err, &fe) {
		switch fe.Kind {
		case domain.KindNotFound:
			return fmt.Sprintf("Weather lookup failed:\nNo METAR/TAF reports are published for %s. Check that the identifier is correct.", fe.Station)
		case domain.KindNoData:
			return fmt.Sprintf("Weather lookup failed:\nNo METAR/TAF data found for %s.", fe.Station)
		case domain.KindTransport:
			return fmt.Sprintf("Weather lookup failed:\nCould not reach the weather service (%s error). Please try again later.", fe.Category)
		case domain.KindUpstreamStatus:
			return fmt.Sprintf("Weather lookup failed:\nThe weather service returned an unexpected response (status %d). Please try again later.", fe.StatusCode)
		}
	}
	return "Weather lookup failed:\nUnexpected error while fetching weather data."
}
