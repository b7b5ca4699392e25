// cmd/laundry-backend/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"laundry-king/internal/common/aws"
	"laundry-king/internal/common/config"
	"laundry-king/internal/common/database"
	"laundry-king/internal/common/logger"
	"laundry-king/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting laundry backend...",
		zap.String("address", cfg.Server.Address),
		zap.String("environment", cfg.App.Environment),
	)

	rdb, err := database.NewRedis(cfg.Server.Redis)
	if err != nil {
		zapLog.Fatal("failed to create redis client", zap.Error(err))
	}
	defer rdb.Close()

	ctx := context.Background()
	if err := retryWithBackoff(func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return rdb.Ping(pingCtx)
	}, 5, time.Second, zapLog, "redis connect"); err != nil {
		zapLog.Fatal("redis unreachable", zap.Error(err))
	}

	otpStore := server.NewOTPStore(rdb,
		time.Duration(cfg.Server.OTP.TTL)*time.Second,
		cfg.Server.OTP.Length,
	)

	var sms server.SMSSender
	var email server.EmailSender
	if cfg.Server.Notifications.SMS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Server.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("failed to create SNS client", zap.Error(err))
		}
		sms = snsClient
	}
	if cfg.Server.Notifications.Email.Enabled {
		sesClient, err := aws.NewSESClient(ctx, cfg.Server.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("failed to create SES client", zap.Error(err))
		}
		email = sesClient
	}
	notifier := server.NewNotifier(cfg.Server.Notifications, sms, email, log)

	handler, err := server.NewHandler(otpStore, notifier, log)
	if err != nil {
		zapLog.Fatal("failed to create handler", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.NewRouter(handler),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}
