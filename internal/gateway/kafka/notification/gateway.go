// Package notification — шлюз уведомлений. Ядро отдаёт тройку
// (получатель, тема, текст) в топик Kafka; доставкой писем занимается
// внешний relay, который не входит в этот сервис.
package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
)

type NotificationGateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *NotificationGateway {
	return &NotificationGateway{
		producer: producer,
		topic:    topic,
	}
}

type emailMessage struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

func (g *NotificationGateway) Send(ctx context.Context, recipient, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(emailMessage{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	})
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	_, _, err = g.producer.SendMessage(&sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(recipient),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}
