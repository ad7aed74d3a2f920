package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mgalvezc/delivery-core/internal/config"
	"github.com/mgalvezc/delivery-core/internal/entities"
	"github.com/mgalvezc/delivery-core/internal/service"
	"github.com/mgalvezc/delivery-core/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, customerID string, in service.CheckoutInput) (entities.Order, error)
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	creator  OrderCreator
}

// CheckoutEvent is the checkout payload as published by the storefront,
// carrying the customer id since there is no session on this path.
type CheckoutEvent struct {
	CustomerID string `json:"customer_id" validate:"required"`
	CreateOrderRequest
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, creator OrderCreator) *kafkaHandler {
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
		validate: utils.NewValidator(),
		creator:  creator,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		// В операции создания заказа уже есть retry
		if err := h.handleCheckout(ctx, m); err != nil {
			checkoutsFailed.Inc()
			h.logger.Error("failed to handle checkout", slog.Any("error", err))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			checkoutsDLQ.Inc()
		} else {
			checkoutsProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleCheckout(ctx context.Context, m kafka.Message) error {
	start := time.Now()
	checkoutsInProgress.Inc()
	defer func() {
		checkoutsInProgress.Dec()
		checkoutDuration.Observe(time.Since(start).Seconds())
	}()

	var event CheckoutEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal checkout event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid checkout event: %w", err)
	}

	_, err := h.creator.CreateOrder(ctx, event.CustomerID, CheckoutInputFromRequest(event.CreateOrderRequest))
	return err
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
