package domain

import (
	"errors"
	"regexp"
	"strings"
)

// stationRe matches a 4-letter ICAO location indicator after normalization.
var stationRe = regexp.MustCompile(`^[A-Z]{4}$`)

// ErrInvalidStation reports message text that is not a 4-letter ICAO code.
var ErrInvalidStation = errors.New("not a 4-letter ICAO station identifier")

// Station is a validated, uppercase 4-letter ICAO location indicator.
type Station string

// ParseStation normalizes free-form message text (trimmed, uppercased) and
// validates it as an ICAO station identifier. The check is shape-only; no
// airport registry is consulted.
func ParseStation(text string) (Station, error) {
	normalized := strings.ToUpper(strings.TrimSpace(text))
	if !stationRe.MatchString(normalized) {
		return "", ErrInvalidStation
	}
	return Station(normalized), nil
}
