package models

import (
	"fmt"
	"strconv"
)

const ResponseTypeInChannel = "in_channel"

// RelayMessage is the chat message posted to the caller's response url
type RelayMessage struct {
	Text         string `json:"text"`
	ResponseType string `json:"response_type,omitempty"`
}

// NewRelayMessage formats a remote result for the chat platform. Successful results are
// shown to the whole channel; anything else becomes an error line with status and body.
func NewRelayMessage(result RemoteResult) RelayMessage {
	if result.IsSuccess() {
		return RelayMessage{
			Text:         result.BodyString(),
			ResponseType: ResponseTypeInChannel,
		}
	}

	return RelayMessage{
		Text: "an error occurred " + strconv.Itoa(result.Status) + " " + result.BodyString(),
	}
}

// RelayStatusError is returned when the response url answers with a non-200 status
type RelayStatusError struct {
	StatusCode int
	Body       string
}

func (e *RelayStatusError) Error() string {
	return fmt.Sprintf("response url returned status %d: %s", e.StatusCode, e.Body)
}
