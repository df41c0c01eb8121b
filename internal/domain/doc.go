// Package domain models aviation weather bulletins from the NOAA TGFTP mirror.
//
// # Data Source
//
// METAR and TAF bulletins are served as per-station plain-text files on the
// National Weather Service TGFTP mirror:
//
//	https://tgftp.nws.noaa.gov/data/observations/metar/stations/<ICAO>.TXT
//	https://tgftp.nws.noaa.gov/data/forecasts/taf/stations/<ICAO>.TXT
//
// The mirror returns HTTP 404 for stations that do not publish the requested
// report type, which is distinct from a transport failure and is surfaced to
// the user as such.
//
// # File Format
//
// Each file carries the mirror's issuance timestamp on the first line and the
// report itself starting on the second line:
//
//	2026/08/29 12:00
//	RCTP 291200Z 02008KT 9999 FEW015 SCT040 28/24 Q1008 NOSIG
//
// The first line is always a header, never report data, and is skipped when
// extracting the bulletin. When it parses as "YYYY/MM/DD HH:MM" (UTC) it is
// kept as the bulletin's issuance time; mirrors occasionally serve malformed
// headers, which are ignored. A file with fewer than two lines means the
// station currently has no report, which is an absent bulletin rather than
// an error. TAF files may wrap the forecast across continuation lines; only
// the first data line is used, matching the single-line reply format.
//
// # Station Identifiers
//
// Stations are identified by 4-letter ICAO location indicators (RCTP, RJAA,
// KLAX). Identifiers are shape-validated only: exactly four ASCII letters,
// normalized to uppercase. No airport registry lookup is performed; an
// identifier that matches the shape but names no real station simply yields
// a 404 from the mirror.
package domain
