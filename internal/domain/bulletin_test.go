package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseBulletin(t *testing.T) {
	t.Run("header skipped, second line is the report", func(t *testing.T) {
		body := "2026/08/29 12:00\nRCTP 291200Z 02008KT 9999 FEW015 SCT040 28/24 Q1008 NOSIG\n"

		b := ParseBulletin(body)

		assert.Equal(t, "RCTP 291200Z 02008KT 9999 FEW015 SCT040 28/24 Q1008 NOSIG", b.Text)
		assert.True(t, b.Present())
		assert.Equal(t, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC), b.IssuedAt)
	})

	t.Run("wrapped TAF keeps only the first data line", func(t *testing.T) {
		body := "2026/08/29 11:30\nTAF RJAA 291100Z 2912/3018 03010KT 9999 FEW020\n     BECMG 2915/2917 36006KT\n"

		b := ParseBulletin(body)

		assert.Equal(t, "TAF RJAA 291100Z 2912/3018 03010KT 9999 FEW020", b.Text)
	})

	t.Run("header only means absent bulletin", func(t *testing.T) {
		b := ParseBulletin("2026/08/29 12:00\n")

		assert.False(t, b.Present())
		assert.Empty(t, b.Text)
	})

	t.Run("empty body means absent bulletin", func(t *testing.T) {
		assert.False(t, ParseBulletin("").Present())
	})

	t.Run("unparseable header keeps report, drops timestamp", func(t *testing.T) {
		body := "not a timestamp\nKLAX 291153Z 25006KT 10SM FEW015 21/14 A2992\n"

		b := ParseBulletin(body)

		assert.Equal(t, "KLAX 291153Z 25006KT 10SM FEW015 21/14 A2992", b.Text)
		assert.True(t, b.IssuedAt.IsZero())
	})

	t.Run("leading blank lines trimmed before split", func(t *testing.T) {
		body := "\n\n2026/08/29 12:00\nRCTP 291200Z 02008KT CAVOK 28/24 Q1008\n"

		b := ParseBulletin(body)

		assert.Equal(t, "RCTP 291200Z 02008KT CAVOK 28/24 Q1008", b.Text)
	})
}
