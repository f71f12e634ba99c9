package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gammazero/workerpool"
	"github.com/gorilla/mux"
	"github.com/samber/mo"
	"github.com/slack-go/slack"

	"wskproxy/core/log"
	"wskproxy/middleware"
	"wskproxy/models"
	"wskproxy/usecases"
)

type ProxyHandler struct {
	proxyUseCase    usecases.ProxyUseCaseInterface
	alertMiddleware *middleware.ErrorAlertMiddleware
	signingSecret   string
	slackAuth       mo.Option[string]
	workerPool      *workerpool.WorkerPool
}

// NewProxyHandler wires the inbound transports to the pipeline. slackAuth is forwarded as
// the action credential for slash commands; an empty signingSecret disables Slack
// signature checks.
func NewProxyHandler(
	proxyUseCase usecases.ProxyUseCaseInterface,
	alertMiddleware *middleware.ErrorAlertMiddleware,
	signingSecret string,
	slackAuth mo.Option[string],
) *ProxyHandler {
	return &ProxyHandler{
		proxyUseCase:    proxyUseCase,
		alertMiddleware: alertMiddleware,
		signingSecret:   signingSecret,
		slackAuth:       slackAuth,
		workerPool:      workerpool.New(1), // one pipeline run at a time
	}
}

// HandleInvoke accepts the action parameter document {payload, response_url, auth},
// runs the pipeline and answers with its outcome.
func (h *ProxyHandler) HandleInvoke(w http.ResponseWriter, r *http.Request) {
	log.Info("📨 Invocation request received", "remote_addr", r.RemoteAddr)

	var request models.InvocationRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Warn("❌ Failed to parse invocation request", "error", err)
		h.writeJSONResponse(w, http.StatusBadRequest, models.NewParameterErrorOutcome())
		return
	}

	// the run outlives a client that hangs up, there is no cancellation
	ctx := context.WithoutCancel(r.Context())

	var (
		outcome models.OutcomeRecord
		runErr  error
	)
	h.workerPool.SubmitWait(func() {
		runErr = h.alertMiddleware.WrapBackgroundTask("invoke", func() error {
			outcome = h.proxyUseCase.Run(ctx, request)
			return nil
		})()
	})
	if runErr != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if outcome.IsRejected() {
		status = http.StatusBadRequest
	}
	h.writeJSONResponse(w, status, outcome)
}

// HandleSlackCommand acknowledges a slash command right away and queues the pipeline run;
// the result reaches the user through the command's response_url.
func (h *ProxyHandler) HandleSlackCommand(w http.ResponseWriter, r *http.Request) {
	log.Info("⚡ Slack command received", "remote_addr", r.RemoteAddr)

	if h.signingSecret != "" {
		var buf bytes.Buffer
		tee := io.TeeReader(r.Body, &buf)

		verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
		if err != nil {
			log.Warn("❌ Invalid secret verifier", "error", err)
			http.Error(w, "invalid secret verifier", http.StatusUnauthorized)
			return
		}

		if _, err := io.Copy(&verifier, tee); err != nil {
			log.Error("❌ Failed to read request body", "error", err)
			http.Error(w, "failed to read body", http.StatusInternalServerError)
			return
		}

		if err := verifier.Ensure(); err != nil {
			log.Warn("❌ Slack signature verification failed", "error", err)
			http.Error(w, "signature verification failed", http.StatusUnauthorized)
			return
		}

		log.Debug("✅ Slack signature verification successful")
		r.Body = io.NopCloser(&buf)
	}

	command, err := slack.SlashCommandParse(r)
	if err != nil {
		log.Warn("❌ Failed to parse slash command", "error", err)
		http.Error(w, "failed to parse slash command", http.StatusBadRequest)
		return
	}

	log.Info("⚡ Parsed slash command",
		"command", command.Command, "user_id", command.UserID, "channel_id", command.ChannelID)

	request := models.InvocationRequest{
		Payload:     mo.Some(command.Text),
		ResponseURL: mo.Some(command.ResponseURL),
		Auth:        h.slackAuth,
	}
	if command.ResponseURL == "" {
		request.ResponseURL = mo.None[string]()
	}

	h.workerPool.Submit(func() {
		_ = h.alertMiddleware.WrapBackgroundTask("slack command "+command.Command, func() error {
			h.proxyUseCase.Run(context.Background(), request)
			return nil
		})()
	})

	w.WriteHeader(http.StatusOK)
}

func (h *ProxyHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ProxyHandler) SetupEndpoints(router *mux.Router) {
	log.Info("🚀 Registering proxy endpoints")
	router.HandleFunc("/invoke", h.HandleInvoke).Methods("POST")
	router.HandleFunc("/slack/commands", h.HandleSlackCommand).Methods("POST")
	router.HandleFunc("/health", h.HandleHealth).Methods("GET")
	log.Info("✅ Proxy endpoints registered", "endpoints", []string{"/invoke", "/slack/commands", "/health"})
}

// Shutdown waits for queued runs to finish
func (h *ProxyHandler) Shutdown() {
	h.workerPool.StopWait()
}

func (h *ProxyHandler) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error("❌ Failed to encode JSON response", "error", err)
	}
}
