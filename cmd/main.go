package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/samber/mo"

	"wskproxy/clients"
	"wskproxy/clients/responseurl"
	"wskproxy/clients/whisk"
	"wskproxy/config"
	"wskproxy/core/log"
	"wskproxy/handlers"
	"wskproxy/middleware"
	"wskproxy/usecases/proxy"
)

func main() {
	if err := run(); err != nil {
		log.Error("❌ Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	log.SetLevel(log.ParseLevel(cfg.LogLevel))

	httpClient := clients.NewHTTPClient(cfg.WhiskConfig.InsecureSkipVerify, cfg.WhiskConfig.Timeout)
	whiskClient := whisk.NewClient(cfg.WhiskConfig.ClientConfig(), httpClient)
	responseURLClient := responseurl.NewClient(httpClient)

	alertMiddleware := middleware.NewErrorAlertMiddleware(middleware.AlertConfig{
		WebhookURL:  cfg.AlertWebhookURL,
		Environment: cfg.Environment,
		AppName:     "wskproxy",
	}, responseURLClient)

	defer alertMiddleware.Flush()

	proxyUseCase := proxy.NewProxyUseCase(whiskClient, responseURLClient)

	slackAuth := mo.None[string]()
	if cfg.WhiskConfig.Auth != "" {
		slackAuth = mo.Some(cfg.WhiskConfig.Auth)
	}
	proxyHandler := handlers.NewProxyHandler(proxyUseCase, alertMiddleware, cfg.SlackConfig.SigningSecret, slackAuth)
	defer proxyHandler.Shutdown()

	router := mux.NewRouter()
	proxyHandler.SetupEndpoints(router)

	allowedOrigins := strings.Split(cfg.CORSAllowedOrigins, ",")
	for i, origin := range allowedOrigins {
		allowedOrigins[i] = strings.TrimSpace(origin)
	}

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           alertMiddleware.HTTPMiddleware(c.Handler(router)),
		ReadHeaderTimeout: 30 * time.Second,
	}

	return handleGracefulShutdown(server)
}

func handleGracefulShutdown(server *http.Server) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info("✅ Listening", "addr", "http://localhost"+server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("❌ Server error", "error", err)
		}
	}()

	<-stop
	log.Info("🛑 Shutdown signal received, cleaning up...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("❌ Server shutdown error", "error", err)
		return err
	}

	log.Info("✅ Server stopped gracefully")
	return nil
}
