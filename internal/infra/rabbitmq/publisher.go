package rabbitmq

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"camp-pricing/internal/pkg/config"
	"camp-pricing/internal/pkg/errs"
	"camp-pricing/internal/usecase/shared"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	routingSlotPrefix  = "slot."
	routingRuleToggled = "rule.toggled"
)

// Channel is the part of *amqp.Channel the publisher uses.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends slot transitions and rule toggles to a topic exchange.
// Routing keys are slot.<transition> and rule.toggled.
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       Channel
	exchange string
	logger   *slog.Logger
}

func Dial(cfg config.AMQPConfig, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to open channel")
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "failed to declare exchange")
	}

	p := NewPublisher(ch, cfg.Exchange, logger)
	p.conn = conn
	return p, nil
}

// NewPublisher wraps an already declared exchange.
func NewPublisher(ch Channel, exchange string, logger *slog.Logger) *Publisher {
	return &Publisher{ch: ch, exchange: exchange, logger: logger}
}

func (p *Publisher) PublishSlotTransition(ctx context.Context, evt shared.SlotTransitionEvent) error {
	return p.publish(ctx, routingSlotPrefix+string(evt.Transition), evt)
}

func (p *Publisher) PublishRuleToggled(ctx context.Context, evt shared.RuleToggledEvent) error {
	return p.publish(ctx, routingRuleToggled, evt)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, evt any) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return errs.Wrap(err, "failed to marshal event")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil {
		return errs.New("publisher channel closed")
	}

	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			MessageId:    uuid.NewString(),
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrapf(err, "failed to publish %s", routingKey)
	}

	p.logger.Debug("event published", "routing_key", routingKey)
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
	return nil
}
