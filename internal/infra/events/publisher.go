package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"travel-checkout/internal/pkg/errs"
	"travel-checkout/internal/usecase/commands"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultPublishTimeout = 3 * time.Second

// CheckoutProgressEvent is the message body published for every checkout stage.
type CheckoutProgressEvent struct {
	CheckoutID  string    `json:"checkoutId"`
	UserID      string    `json:"userId"`
	Stage       string    `json:"stage"`
	Step        string    `json:"step,omitempty"`
	BookingID   string    `json:"bookingId,omitempty"`
	PaymentID   string    `json:"paymentId,omitempty"`
	ItineraryID string    `json:"itineraryId,omitempty"`
	Error       string    `json:"error,omitempty"`
	At          time.Time `json:"at"`
}

func NewCheckoutProgressEvent(e commands.ProgressEvent) CheckoutProgressEvent {
	out := CheckoutProgressEvent{
		CheckoutID:  e.CheckoutID,
		UserID:      e.UserID,
		Stage:       string(e.Stage),
		BookingID:   e.BookingID,
		PaymentID:   e.PaymentID,
		ItineraryID: e.ItineraryID,
		At:          e.At,
	}
	if e.Err != nil {
		out.Step = e.Step.String()
		out.Error = e.Err.Error()
	}
	return out
}

type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher sends checkout progress to a durable queue on the default
// exchange. Publish failures are logged and never reach the checkout.
type Publisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	ch      channel
	queue   string
	timeout time.Duration
}

func NewPublisher(url, queue string, timeout time.Duration) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "open rabbitmq channel")
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "declare queue %s", queue)
	}

	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &Publisher{conn: conn, ch: ch, queue: queue, timeout: timeout}, nil
}

func newPublisherWithChannel(ch channel, queue string) *Publisher {
	return &Publisher{ch: ch, queue: queue, timeout: defaultPublishTimeout}
}

func (p *Publisher) Publish(ctx context.Context, event CheckoutProgressEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "encode checkout progress event")
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.CheckoutID + ":" + event.Stage,
		Timestamp:    event.At,
		Type:         "checkout." + event.Stage,
		Body:         body,
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return errs.Wrapf(err, "publish to %s", p.queue)
	}
	return nil
}

// Notify implements commands.ProgressNotifier.
func (p *Publisher) Notify(ctx context.Context, event commands.ProgressEvent) {
	if err := p.Publish(context.WithoutCancel(ctx), NewCheckoutProgressEvent(event)); err != nil {
		slog.Warn("failed to publish checkout progress",
			"checkout_id", event.CheckoutID,
			"stage", string(event.Stage),
			"error", err.Error())
	}
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var firstErr error
	if p.ch != nil {
		firstErr = p.ch.Close()
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
