package middleware

import (
	"context"
	"crypto/md5"
	"fmt"
	"net/http"
	"sync"
	"time"

	"wskproxy/clients"
	"wskproxy/core/log"
	"wskproxy/models"
)

type AlertConfig struct {
	WebhookURL  string
	Environment string
	AppName     string
}

type ErrorAlertMiddleware struct {
	config        AlertConfig
	webhookClient clients.ResponseURLClient
	alertedErrors map[string]time.Time // hash -> last alert time
	mutex         sync.Mutex
	alertCooldown time.Duration
	pending       sync.WaitGroup // alerts still being delivered
}

func NewErrorAlertMiddleware(config AlertConfig, webhookClient clients.ResponseURLClient) *ErrorAlertMiddleware {
	return &ErrorAlertMiddleware{
		config:        config,
		webhookClient: webhookClient,
		alertedErrors: make(map[string]time.Time),
		alertCooldown: 10 * time.Minute,
	}
}

// HTTPMiddleware recovers panics raised by the wrapped handler and answers with a 500
func (m *ErrorAlertMiddleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.handlePanic(rec, fmt.Sprintf("HTTP %s %s", r.Method, r.URL.Path))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// WrapBackgroundTask runs queued work with panic recovery and alerts on returned errors
func (m *ErrorAlertMiddleware) WrapBackgroundTask(taskName string, task func() error) func() error {
	return func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				m.handlePanic(rec, "Background task: "+taskName)
				err = fmt.Errorf("background task %s panicked: %v", taskName, rec)
			}
		}()

		if err := task(); err != nil {
			m.alertOnError(err, "Background task: "+taskName)
			return err
		}
		return nil
	}
}

func (m *ErrorAlertMiddleware) alertOnError(err error, context string) {
	errorMsg := fmt.Sprintf("%s: %v", context, err)
	log.Error("❌ "+errorMsg, "context", context)

	hash := fmt.Sprintf("%x", md5.Sum([]byte(errorMsg)))

	m.mutex.Lock()
	if lastAlert, exists := m.alertedErrors[hash]; exists && time.Since(lastAlert) < m.alertCooldown {
		m.mutex.Unlock()
		return
	}
	m.alertedErrors[hash] = time.Now()
	m.mutex.Unlock()

	m.dispatchAlert(errorMsg, context)
}

func (m *ErrorAlertMiddleware) handlePanic(rec any, context string) {
	errorMsg := fmt.Sprintf("%s: PANIC - %v", context, rec)
	log.Error("❌ "+errorMsg, "context", context)
	m.dispatchAlert(errorMsg, context+" (PANIC)")
}

// dispatchAlert delivers the alert in the background so a slow webhook never holds up
// the request or queued run that failed
func (m *ErrorAlertMiddleware) dispatchAlert(errorMsg, alertContext string) {
	if m.config.WebhookURL == "" {
		return
	}

	m.pending.Add(1)
	go func() {
		defer m.pending.Done()
		m.sendAlert(errorMsg, alertContext)
	}()
}

// Flush waits for alerts that are still being delivered
func (m *ErrorAlertMiddleware) Flush() {
	m.pending.Wait()
}

func (m *ErrorAlertMiddleware) sendAlert(errorMsg, alertContext string) {
	envPrefix := ""
	if m.config.Environment == "dev" {
		envPrefix = "[dev] "
	}
	message := models.RelayMessage{
		Text: fmt.Sprintf("🚨 %s[%s] Error Alert\n*Context:* %s\n```%s```", envPrefix, m.config.AppName, alertContext, errorMsg),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := m.webhookClient.Post(ctx, m.config.WebhookURL, message); err != nil {
		log.Error("❌ Failed to send error alert", "error", err)
	}
}
