package notify

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/rabbitmq/amqp091-go"

	domain "loanflow/internal/domain/notify"
)

const DefaultExchange = "loan.events"

// Channel is the subset of *amqp091.Channel the publisher needs.
type Channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// RabbitNotifier publishes workflow events as JSON to a topic exchange,
// routed by "loan.<event type>" in lower case.
type RabbitNotifier struct {
	mu       sync.Mutex
	ch       Channel
	exchange string
}

// NewRabbitNotifier declares the exchange once and returns a publisher bound to it.
func NewRabbitNotifier(ch Channel, exchange string) (*RabbitNotifier, error) {
	if exchange == "" {
		exchange = DefaultExchange
	}
	err := ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, err
	}
	return &RabbitNotifier{ch: ch, exchange: exchange}, nil
}

func RoutingKey(t domain.Type) string { return "loan." + strings.ToLower(string(t)) }

func (n *RabbitNotifier) Notify(ctx context.Context, e domain.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}

	// amqp channels are not safe for concurrent publishing.
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ch.PublishWithContext(ctx,
		n.exchange,         // exchange
		RoutingKey(e.Type), // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    e.ID,
			Type:         string(e.Type),
			Timestamp:    e.OccurredAt,
			Body:         body,
		})
}
