package proxy

import (
	"context"
	"errors"
	"unicode/utf8"

	"wskproxy/appctx"
	"wskproxy/clients"
	"wskproxy/core"
	"wskproxy/core/log"
	"wskproxy/models"
	"wskproxy/usecases"
	"wskproxy/utils"
)

type ProxyUseCase struct {
	actionInvoker     clients.ActionInvoker
	responseURLClient clients.ResponseURLClient
}

func NewProxyUseCase(
	actionInvoker clients.ActionInvoker,
	responseURLClient clients.ResponseURLClient,
) *ProxyUseCase {
	return &ProxyUseCase{
		actionInvoker:     actionInvoker,
		responseURLClient: responseURLClient,
	}
}

// Run parses the command payload, invokes the action and relays its result to the
// response url. Requests missing payload or response_url, and payloads without an action
// name, are answered with a fixed error outcome and nothing is sent anywhere.
func (u *ProxyUseCase) Run(ctx context.Context, request models.InvocationRequest) models.OutcomeRecord {
	runID := core.NewRunID()
	ctx = appctx.SetRunID(ctx, runID)
	logger := log.FromContext(ctx)
	logger.Info("📋 Starting to process invocation request",
		"has_payload", request.Payload.IsPresent(),
		"has_response_url", request.ResponseURL.IsPresent(),
		"has_auth", request.Auth.IsPresent(),
	)

	payload, hasPayload := request.Payload.Get()
	responseURL, hasResponseURL := request.ResponseURL.Get()
	if !hasPayload || !hasResponseURL {
		logger.Warn("⚠️ Invocation request is missing payload or response_url")
		return models.NewParameterErrorOutcome()
	}

	command, err := utils.ParseCommand(payload)
	if err != nil {
		logger.Warn("⚠️ Failed to parse command", "error", err)
		return models.NewActionNameErrorOutcome()
	}
	logger.Info("📋 Parsed command", "action", command.Action, "parameters", len(command.Parameters))

	result := u.actionInvoker.Invoke(ctx, command.Action, command.Parameters, request.Auth)
	if !result.IsSuccess() {
		logger.Warn("⚠️ Error received from action, returning error to response url", "status", result.Status)
	}

	relayed := u.relay(ctx, responseURL, result)

	if result.IsSuccess() && relayed {
		logger.Info("📋 Completed successfully - invocation request processed",
			"action", command.Action, "status", result.Status, "relayed", relayed)
	} else {
		logger.Warn("⚠️ Invocation request finished with errors",
			"action", command.Action, "status", result.Status, "relayed", relayed)
	}
	return models.OutcomeRecord{
		RunID:   runID,
		Action:  command.Action,
		Status:  result.Status,
		Relayed: relayed,
	}
}

// relay delivers the formatted result exactly once. Delivery failures are only logged:
// once the response url is unreachable there is nobody left to tell.
func (u *ProxyUseCase) relay(ctx context.Context, responseURL string, result models.RemoteResult) bool {
	logger := log.FromContext(ctx)
	if !utf8.ValidString(result.BodyString()) {
		logger.Warn("⚠️ Action result is not valid UTF-8, invalid bytes will be replaced in the relayed text",
			"bytes", len(result.BodyString()))
	}
	message := models.NewRelayMessage(result)

	err := u.responseURLClient.Post(ctx, responseURL, message)
	if err != nil {
		var statusErr *models.RelayStatusError
		if errors.As(err, &statusErr) {
			logger.Error("❌ Response url returned error code",
				"status", statusErr.StatusCode, "body", statusErr.Body)
		} else {
			logger.Error("❌ Failed to deliver result to response url", "error", err)
		}
		return false
	}

	logger.Info("✅ Result delivered to response url")
	return true
}

var _ usecases.ProxyUseCaseInterface = (*ProxyUseCase)(nil)
