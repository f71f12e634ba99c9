package models

import (
	"encoding/json"

	"github.com/samber/mo"
)

// InvocationRequest is the inbound event handed to the relay by the chat command dispatcher.
// Every field may be absent on the wire; an absent field is distinct from an empty one.
type InvocationRequest struct {
	Payload     mo.Option[string]
	ResponseURL mo.Option[string]
	Auth        mo.Option[string]
}

type invocationRequestJSON struct {
	Payload     *string `json:"payload,omitempty"`
	ResponseURL *string `json:"response_url,omitempty"`
	Auth        *string `json:"auth,omitempty"`
}

func NewInvocationRequest(payload, responseURL string, auth mo.Option[string]) InvocationRequest {
	return InvocationRequest{
		Payload:     mo.Some(payload),
		ResponseURL: mo.Some(responseURL),
		Auth:        auth,
	}
}

func (r *InvocationRequest) UnmarshalJSON(data []byte) error {
	var raw invocationRequestJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Payload = mo.PointerToOption(raw.Payload)
	r.ResponseURL = mo.PointerToOption(raw.ResponseURL)
	r.Auth = mo.PointerToOption(raw.Auth)
	return nil
}

func (r InvocationRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(invocationRequestJSON{
		Payload:     r.Payload.ToPointer(),
		ResponseURL: r.ResponseURL.ToPointer(),
		Auth:        r.Auth.ToPointer(),
	})
}
