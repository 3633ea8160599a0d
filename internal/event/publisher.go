package event

import (
	"encoding/json"
	"log"
	"time"

	"github.com/streadway/amqp"
)

// AnalyticsPublisher emits site analytics events (page views, quiz
// completions, admin edits) to a topic exchange. The event type doubles as
// the routing key, e.g. "playground.attempt.completed".
type AnalyticsPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	source   string
}

func NewAnalyticsPublisher(amqpURL, exchange, source string) (*AnalyticsPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &AnalyticsPublisher{conn: conn, channel: ch, exchange: exchange, source: source}, nil
}

func (p *AnalyticsPublisher) Publish(eventType string, payload interface{}) error {
	event := map[string]interface{}{
		"type":      eventType,
		"source":    p.source,
		"payload":   payload,
		"timestamp": time.Now().UTC(),
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	log.Printf("[EVENT] %s", eventType)

	return p.channel.Publish(
		p.exchange,
		eventType, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *AnalyticsPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
