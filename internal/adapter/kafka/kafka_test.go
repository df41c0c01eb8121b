package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/couchcryptid/aviation-weather-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	answeredAt := time.Date(2026, 8, 29, 12, 34, 56, 0, time.UTC)
	rec := domain.QueryRecord{
		Station:    "RCTP",
		Outcome:    domain.OutcomeAnswered,
		METARFound: true,
		TAFFound:   false,
		AnsweredAt: answeredAt,
	}

	msg, err := serializeToMessage(rec)
	require.NoError(t, err)

	assert.Equal(t, []byte("RCTP"), msg.Key)

	var decoded domain.QueryRecord
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, rec, decoded)

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, domain.OutcomeAnswered, headers["outcome"])
	assert.Equal(t, "2026-08-29T12:34:56Z", headers["answered_at"])
}
