package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"group-janitor/config"
	_ "group-janitor/docs" // Swagger docs
	"group-janitor/internal/httpserver"
	"group-janitor/internal/janitor"
	tgDelivery "group-janitor/internal/janitor/delivery/telegram"
	"group-janitor/internal/janitor/usecase"
	"group-janitor/pkg/log"
	"group-janitor/pkg/telegram"
)

// @title       Group Janitor API
// @description Telegram webhook bot that deletes member joined/left service messages from group chats.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Group Janitor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	if cfg.Telegram.OwnerMode {
		logger.Infof(ctx, "Owner mode active: owner=%d bot=%d", cfg.Telegram.OwnerID, cfg.Telegram.BotID)
	} else {
		logger.Info(ctx, "Owner mode inactive: all group joins are moderated unconditionally")
	}

	// 3. Telegram Bot client + janitor domain
	telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

	janitorUC := usecase.New(logger, telegramBot, janitor.Policy{
		Active:  cfg.Telegram.OwnerMode,
		OwnerID: cfg.Telegram.OwnerID,
		BotID:   cfg.Telegram.BotID,
	})

	// Webhook URL: manual config or ngrok auto-detection
	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	telegramHandler := tgDelivery.New(logger, janitorUC, telegramBot, cfg.Webhook.Secret, webhookURL)

	// Best-effort registration at startup; GET /webhook/register re-runs it.
	if webhookURL != "" {
		if _, whErr := telegramBot.SetWebhook(webhookURL, cfg.Webhook.Secret, []string{"message"}); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	} else {
		logger.Warn(ctx, "No webhook URL known; call GET /webhook/register once one is reachable")
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
