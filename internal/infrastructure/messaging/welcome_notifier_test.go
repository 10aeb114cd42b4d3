package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-employee-auth/internal/application"
	"github.com/oksasatya/go-employee-auth/pkg/mailer"
)

type capturePublisher struct {
	jobs        []any
	err         error
	hadDeadline bool
}

func (p *capturePublisher) PublishJSON(ctx context.Context, body any) error {
	_, p.hadDeadline = ctx.Deadline()
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.err != nil {
		return p.err
	}
	p.jobs = append(p.jobs, body)
	return nil
}

func TestWelcomeNotifier_PublishesJob(t *testing.T) {
	pub := &capturePublisher{}
	n := NewWelcomeNotifier(pub, "Employee Directory")
	n.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC) }

	err := n.NotifyRegistered(context.Background(), application.RegisteredUser{ID: 7, Username: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	require.Len(t, pub.jobs, 1)
	assert.True(t, pub.hadDeadline)

	job, ok := pub.jobs[0].(mailer.EmailJob)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", job.To)
	assert.Equal(t, "welcome", job.Template)
	assert.Equal(t, "alice", job.Data["Username"])
	assert.Equal(t, "Employee Directory", job.Data["AppName"])
	assert.Equal(t, "02 January 2024, 03:04", job.Data["Time"])
	assert.NotContains(t, job.Data, "Password")
}

func TestWelcomeNotifier_SurvivesCanceledRequest(t *testing.T) {
	pub := &capturePublisher{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewWelcomeNotifier(pub, "app").NotifyRegistered(ctx, application.RegisteredUser{Email: "a@example.com"})
	require.NoError(t, err)
	assert.Len(t, pub.jobs, 1)
}

func TestWelcomeNotifier_PublishError(t *testing.T) {
	pub := &capturePublisher{err: errors.New("channel closed")}
	err := NewWelcomeNotifier(pub, "app").NotifyRegistered(context.Background(), application.RegisteredUser{Email: "a@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish welcome email")
	assert.Contains(t, err.Error(), "channel closed")
}
