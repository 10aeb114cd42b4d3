package messaging

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/oksasatya/go-employee-auth/internal/application"
	"github.com/oksasatya/go-employee-auth/pkg/mailer"
	"github.com/oksasatya/go-employee-auth/pkg/mailer/templates"
)

const publishTimeout = 3 * time.Second

// Publisher is satisfied by helpers.RabbitPublisher.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// WelcomeNotifier queues a welcome email for every new account.
type WelcomeNotifier struct {
	Pub     Publisher
	AppName string
	now     func() time.Time
}

func NewWelcomeNotifier(pub Publisher, appName string) *WelcomeNotifier {
	return &WelcomeNotifier{Pub: pub, AppName: appName, now: time.Now}
}

func (n *WelcomeNotifier) NotifyRegistered(ctx context.Context, u application.RegisteredUser) error {
	job := mailer.EmailJob{
		To:       u.Email,
		Template: templates.Welcome,
		Data:     templates.NewWelcomeData(n.AppName, u.Username, u.Email, templates.WithTime(n.now())),
	}
	// the request may finish before the broker answers; do not inherit its cancellation
	c, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := n.Pub.PublishJSON(c, job); err != nil {
		return errors.Wrap(err, "publish welcome email")
	}
	return nil
}
