package mailer

import (
	"context"
	"time"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const sendTimeout = 15 * time.Second

// ErrDeliveriesClosed is returned by Consume when the broker side goes away
// while the consumer is still wanted.
var ErrDeliveriesClosed = errors.New("delivery channel closed")

// Consume processes deliveries until ctx is canceled (returns nil) or the
// delivery channel closes (returns ErrDeliveriesClosed). Bad jobs are dropped,
// failed sends are requeued.
func Consume(ctx context.Context, deliveries <-chan amqp.Delivery, sender Sender, logger logrus.FieldLogger) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return ErrDeliveriesClosed
			}
			handle(ctx, d, sender, logger)
		}
	}
}

func handle(ctx context.Context, d amqp.Delivery, sender Sender, logger logrus.FieldLogger) {
	c, cancel := context.WithTimeout(ctx, sendTimeout)
	err := Process(c, d.Body, sender)
	cancel()
	switch {
	case errors.Is(err, ErrBadJob):
		logger.WithError(err).Warn("dropping undeliverable email job")
		_ = d.Nack(false, false)
	case err != nil:
		logger.WithError(err).Warn("send failed, requeueing")
		_ = d.Nack(false, true)
	default:
		_ = d.Ack(false)
	}
}
