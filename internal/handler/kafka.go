package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/prontix-store/internal/config"
	"github.com/SergeyBogomolovv/prontix-store/internal/entities"
	"github.com/SergeyBogomolovv/prontix-store/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

const (
	PaymentApproved = "approved"
	PaymentDeclined = "declined"
)

type OrderApprover interface {
	ApproveOrder(ctx context.Context, orderID string) (entities.Approval, error)
}

// PaymentEvent событие платёжной системы
type PaymentEvent struct {
	OrderID string `json:"order_id" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=approved declined"`
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	approver OrderApprover
	retry    utils.RetryConfig
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, approver OrderApprover) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		approver: approver,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Multiplier:   2,
		},
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	paymentsInProgress.Inc()
	defer paymentsInProgress.Dec()

	start := time.Now()
	defer func() {
		paymentProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.handlePayment(ctx, m); err != nil {
		paymentsFailed.Inc()
		h.logger.Error("failed to handle payment event", slog.Any("error", err), slog.Int64("offset", m.Offset))

		// В kafka-go уже есть retry на запись
		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		paymentsDLQ.Inc()
	} else {
		paymentsProcessed.Inc()
	}

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (h *kafkaHandler) handlePayment(ctx context.Context, m kafka.Message) error {
	var event PaymentEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal payment event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid payment event: %w", err)
	}

	if event.Status == PaymentDeclined {
		h.logger.InfoContext(ctx, "payment declined", slog.String("order_id", event.OrderID))
		return nil
	}

	// Ошибки валидации и отсутствие заказа повторять бессмысленно
	return utils.Retry(h.retry, func() error {
		_, err := h.approver.ApproveOrder(ctx, event.OrderID)
		return err
	}, entities.ErrValidation, entities.ErrNotFound, entities.ErrForbidden)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	msg := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, msg)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
