package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/peoplecore/hrm-backend-go/internal/config"
	"github.com/peoplecore/hrm-backend-go/internal/domain/notification"
	"github.com/peoplecore/hrm-backend-go/internal/pkg/queue"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "peoplecore-hrm-mailer"),
	)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client, err := mail.NewClient(cfg.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.SMTP.Port),
		mail.WithUsername(cfg.SMTP.Username),
		mail.WithPassword(cfg.SMTP.Password),
	)
	if err != nil {
		logger.Error("failed to create mail client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer client.Close()

	dialCtx, cancelDial := context.WithTimeout(context.Background(), time.Duration(cfg.SMTP.DialTimeout)*time.Second)
	defer cancelDial()
	if err := client.DialWithContext(dialCtx); err != nil {
		logger.Error("failed to connect to mail server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open channel", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		queue.EmailQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		logger.Error("failed to declare queue", slog.String("error", err.Error()))
		os.Exit(1)
	}

	msgs, err := ch.Consume(
		q.Name,
		"",    // consumer tag assigned by the broker
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to consume", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case delivery := <-msgs:
				var emailMsg notification.EmailMessage
				if err := json.Unmarshal(delivery.Body, &emailMsg); err != nil {
					logger.Error("failed to decode email message", slog.String("error", err.Error()))
					_ = delivery.Nack(false, false)
					continue
				}

				msg := mail.NewMsg()
				if err := msg.From(cfg.SMTP.Username); err != nil {
					logger.Error("failed to set sender", slog.String("error", err.Error()))
					_ = delivery.Nack(false, false)
					continue
				}
				if err := msg.To(emailMsg.To); err != nil {
					logger.Error("failed to set recipient",
						slog.String("to", emailMsg.To),
						slog.String("error", err.Error()))
					_ = delivery.Nack(false, false)
					continue
				}
				msg.Subject(emailMsg.Subject)
				msg.SetBodyString(mail.TypeTextPlain, emailMsg.Body)

				if err := client.DialAndSend(msg); err != nil {
					logger.Error("failed to send email",
						slog.String("to", emailMsg.To),
						slog.String("error", err.Error()))
					_ = delivery.Nack(false, true) // requeue for retry
					continue
				}

				logger.Info("email sent", slog.String("to", emailMsg.To), slog.String("subject", emailMsg.Subject))
				_ = delivery.Ack(false)
			}
		}
	}()

	logger.Info("mailer waiting for messages")
	<-sigChan

	logger.Info("shutting down mailer")
	cancel()
	wg.Wait()
}
