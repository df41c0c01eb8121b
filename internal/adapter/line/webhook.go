// Package line implements the LINE Messaging API surface of the bot:
// webhook signature verification, event envelope parsing, and the
// one-shot reply client.
package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// SignatureHeader carries the webhook signature on inbound callbacks.
const SignatureHeader = "X-Line-Signature"

const (
	eventTypeMessage = "message"
	messageTypeText  = "text"
)

// Event is one entry of a webhook envelope. Only the fields the bot acts on
// are modeled; everything else in the payload is ignored.
type Event struct {
	Type       string  `json:"type"`
	ReplyToken string  `json:"replyToken"`
	Message    Message `json:"message"`
}

// Message is the message object nested in a message event.
type Message struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// IsTextMessage reports whether the event is a text message the bot should
// answer. Events without a reply token (sent by the LINE console when
// verifying the endpoint) are excluded: there is nothing to reply to.
func (e Event) IsTextMessage() bool {
	return e.Type == eventTypeMessage && e.Message.Type == messageTypeText && e.ReplyToken != ""
}

type envelope struct {
	Events []Event `json:"events"`
}

// ParseWebhook decodes a webhook envelope body into its events. A body that
// is not a valid envelope fails the whole request.
func ParseWebhook(body []byte) ([]Event, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("parse webhook envelope: %w", err)
	}
	return env.Events, nil
}

// ValidateSignature reports whether signature is the base64-encoded
// HMAC-SHA256 of body under the channel secret, using a constant-time
// comparison.
func ValidateSignature(channelSecret string, body []byte, signature string) bool {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), decoded)
}
