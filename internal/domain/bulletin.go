package domain

import (
	"strings"
	"time"
)

// headerTimeLayout is the issuance timestamp format on the mirror's first line.
const headerTimeLayout = "2006/01/02 15:04"

// Bulletin is one report extracted from a TGFTP station file. A zero-value
// Bulletin means the station currently has no report of that type.
type Bulletin struct {
	Text     string    // the report line, e.g. "RCTP 291200Z 02008KT ..."
	IssuedAt time.Time // mirror header timestamp, zero when absent or unparseable
}

// Present reports whether the bulletin carries any report text.
func (b Bulletin) Present() bool {
	return b.Text != ""
}

// Report pairs the two bulletin types for one station. Either side may be
// absent; a Report with both sides absent is never produced (the fetcher
// converts that case into a KindNoData failure).
type Report struct {
	Station Station
	METAR   Bulletin
	TAF     Bulletin
}

// ParseBulletin extracts a Bulletin from a raw TGFTP station file body.
// The first line is the mirror's timestamp header and is always skipped;
// the report is the second line. Bodies with fewer than two lines yield an
// absent bulletin.
func ParseBulletin(body string) Bulletin {
	lines := strings.Split(strings.TrimSpace(body), "\n")
	if len(lines) < 2 {
		return Bulletin{}
	}

	b := Bulletin{Text: strings.TrimSpace(lines[1])}
	if issued, err := time.Parse(headerTimeLayout, strings.TrimSpace(lines[0])); err == nil {
		b.IssuedAt = issued.UTC()
	}
	return b
}
