package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-ivr-verify/internal/config"
	"github.com/go-ivr-verify/internal/infrastructure/dynamo"
	"github.com/go-ivr-verify/internal/infrastructure/smtp"
	"github.com/go-ivr-verify/internal/infrastructure/sns"
	transporthttp "github.com/go-ivr-verify/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// SNS SMS sender (optional — calls get the technical-difficulty prompt
	// when unavailable).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		log.Printf("WARN: SNS sender not available: %v", err)
	}

	// Support-callback alert mailer.
	mailer := smtp.NewMailer(cfg)

	// Verification audit trail (optional).
	var auditRepo *dynamo.AuditRepo
	if cfg.AuditEnabled {
		client := dynamo.NewClient(cfg)
		dynamo.Bootstrap(context.Background(), client, cfg.AuditTable)
		auditRepo = dynamo.NewAuditRepo(client, cfg.AuditTable)
	} else {
		log.Println("Verification audit trail disabled")
	}

	deps := &transporthttp.Deps{
		SMSSender: smsSender,
		Mailer:    mailer,
		AuditRepo: auditRepo,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, business=%q)", cfg.AppPort, cfg.AppEnv, cfg.BusinessName)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
