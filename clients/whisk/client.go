package whisk

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/mo"

	"wskproxy/clients"
	"wskproxy/core/log"
	"wskproxy/models"
)

const DefaultAPIHost = "https://openwhisk.ng.bluemix.net"

type Config struct {
	// APIHost is the scheme and host of the action endpoint, e.g. https://openwhisk.ng.bluemix.net
	APIHost string
	// Namespace is inserted into the action path as configured, already url-escaped if needed
	Namespace string
}

// Client invokes actions through the /api/v1/namespaces REST endpoint
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config, httpClient *http.Client) *Client {
	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

// ActionURL returns the blocking invoke url for the given action. Each "/"-separated
// segment of the action is path-escaped, so package actions keep their slash while
// characters like "?" and "#" stay part of the name.
func (c *Client) ActionURL(action string) string {
	segments := strings.Split(action, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return fmt.Sprintf(
		"%s/api/v1/namespaces/%s/actions/%s?blocking=true&result=true",
		strings.TrimRight(c.config.APIHost, "/"),
		c.config.Namespace,
		strings.Join(segments, "/"),
	)
}

// Invoke posts the parameters as JSON to the action and waits for its result.
// When auth is present the whole string is sent base64-encoded as Basic credentials.
// It never returns an error: failures to reach the endpoint become a 500 result whose
// body is the error text, and a response body cut short is returned as far as it was read.
func (c *Client) Invoke(
	ctx context.Context,
	action string,
	parameters map[string]string,
	auth mo.Option[string],
) models.RemoteResult {
	logger := log.FromContext(ctx)
	actionURL := c.ActionURL(action)
	logger.Info("📋 Starting to invoke action", "action", action, "url", actionURL)

	if parameters == nil {
		parameters = map[string]string{}
	}
	body, err := json.Marshal(parameters)
	if err != nil {
		logger.Error("❌ Failed to encode action parameters", "error", err)
		return models.NewTransportFailureResult(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, actionURL, bytes.NewReader(body))
	if err != nil {
		logger.Error("❌ Failed to build action request", "error", err)
		return models.NewTransportFailureResult(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if credentials, ok := auth.Get(); ok {
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(credentials)))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Error("❌ Failed to invoke action", "action", action, "error", err)
		return models.NewTransportFailureResult(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.Warn("⚠️ Action response body was cut short, keeping partial body",
			"action", action, "bytes", len(respBody), "error", err)
	}

	logger.Info("📋 Completed successfully - action returned", "action", action, "status", resp.StatusCode)
	return models.NewRemoteResult(resp.StatusCode, respBody)
}

var _ clients.ActionInvoker = (*Client)(nil)
