package models

import "net/http"

// RemoteResult is the outcome of a single action invocation. The body is buffered
// eagerly so it can be inspected any number of times.
type RemoteResult struct {
	Status int
	body   []byte
}

func NewRemoteResult(status int, body []byte) RemoteResult {
	return RemoteResult{
		Status: status,
		body:   body,
	}
}

// NewTransportFailureResult describes a failure to reach the action endpoint at all
func NewTransportFailureResult(err error) RemoteResult {
	return NewRemoteResult(http.StatusInternalServerError, []byte(err.Error()))
}

func (r RemoteResult) Body() []byte {
	out := make([]byte, len(r.body))
	copy(out, r.body)
	return out
}

func (r RemoteResult) BodyString() string {
	return string(r.body)
}

func (r RemoteResult) IsSuccess() bool {
	return r.Status == http.StatusOK
}
