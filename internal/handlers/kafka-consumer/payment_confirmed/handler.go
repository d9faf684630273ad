package payment_confirmed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"tracker/internal/service/packages"
	"tracker/pkg/logger"
)

type confirmedEvent struct {
	TrackingNumber string `json:"tracking_number"`
	PaymentID      string `json:"payment_id"`
}

type Handler struct {
	packageService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, packageService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		packageService:           packageService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("package.payment.confirmed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("package.payment.confirmed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event confirmedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("package.payment.confirmed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_number", event.TrackingNumber),
		logger.NewField("payment", event.PaymentID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("package.payment.confirmed processing")

	err = h.packageService.MarkPaid(ctx, event.TrackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			// Не коммитим оффсет: сообщение будет обработано повторно
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.payment.confirmed processing interrupted")
			return true

		case errors.Is(err, packages.ErrPackageNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.payment.confirmed handler unknown tracking number")

		case errors.Is(err, packages.ErrInvalidTrackingNumber):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.payment.confirmed handler empty tracking number")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("package.payment.confirmed handler failed to process payment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("package.payment.confirmed: processed")

	sess.MarkMessage(message, "")
	return false
}
