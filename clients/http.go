package clients

import (
	"crypto/tls"
	"net/http"
	"time"
)

// NewHTTPClient builds the client shared by outbound calls. Plain http urls go over TCP,
// https urls over TLS; with insecureSkipVerify the server certificate is not checked.
// A zero timeout leaves the transport defaults in place.
func NewHTTPClient(insecureSkipVerify bool, timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{
		InsecureSkipVerify: insecureSkipVerify, //nolint:gosec // opt-out is configurable
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
