package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"academy/internal/app"
	"academy/internal/config"
	"academy/internal/mailer"
	"academy/internal/metrics"
	"academy/internal/queue"
	"academy/internal/store"
)

// Worker drains registration events and mails the admin about each one.
func main() {
	cfg := config.Load()

	logger := app.NewLogger(cfg.Env)
	defer logger.Sync() //nolint:errcheck
	log := logger.Sugar()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info("shutdown signal received")
		cancel()
	}()

	st := store.New(cfg.DataDir, log)

	redisClient := store.NewRedis(cfg.RedisAddr)
	defer redisClient.Close()

	var q queue.Queue
	if cfg.QueueBackend == "redis" {
		q = queue.NewRedisList(redisClient.Client, cfg.QueueKey)
	} else {
		// A separate worker process cannot see the API's in-memory
		// queue; this mode only exists for local poking.
		log.Warn("QUEUE_BACKEND=memory: this worker will only see its own messages")
		q = queue.NewInMemory(64)
	}

	var mail mailer.Mailer
	if cfg.EmailConfigured() {
		mail = mailer.NewSendGrid(cfg.SendgridKey, cfg.AppName, cfg.NotifyEmail, cfg.AdminEmail)
		log.Infow("sendgrid configured", "to", cfg.AdminEmail)
	} else {
		mail = mailer.NewConsole(log)
		log.Warn("email not configured (SENDGRID_API_KEY / NOTIFY_EMAIL / ADMIN_EMAIL), logging alerts instead")
	}

	messages, err := q.Consume(ctx)
	if err != nil {
		log.Fatalw("queue consume init failed", "err", err)
	}

	log.Info("worker started, waiting for messages")
	for msg := range messages {
		if msg.Type != queue.TypeRegistration {
			continue
		}

		reg, ok := st.RegistrationByID(msg.Body)
		if !ok {
			log.Warnw("registration not found", "id", msg.Body)
			continue
		}

		if err := mail.SendRegistrationAlert(ctx, reg); err != nil {
			metrics.EmailsSent.WithLabelValues("failed").Inc()
			log.Errorw("sending registration alert", "id", reg.ID, "err", err)
			continue
		}
		metrics.EmailsSent.WithLabelValues("sent").Inc()
		log.Infow("registration alert sent", "id", reg.ID, "name", reg.FullName)
	}

	log.Info("worker stopped")
}
