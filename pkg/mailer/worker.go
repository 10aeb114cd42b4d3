package mailer

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/oksasatya/go-employee-auth/pkg/mailer/templates"
)

// ErrBadJob marks a message that can never be delivered; the worker drops it
// instead of requeueing.
var ErrBadJob = errors.New("bad email job")

// Process decodes one queued job, renders it and hands it to sender.
// Errors wrapping ErrBadJob are permanent; any other error is worth a retry.
func Process(ctx context.Context, body []byte, sender Sender) error {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return errors.Wrap(ErrBadJob, err.Error())
	}
	if strings.TrimSpace(job.To) == "" {
		return errors.Wrap(ErrBadJob, "missing recipient")
	}

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Template != "" {
		s, t, h, err := templates.Render(job.Template, job.Data)
		if err != nil {
			return errors.Wrapf(ErrBadJob, "render %s: %v", job.Template, err)
		}
		subject, text, html = s, t, h
	} else if subject == "" || (text == "" && html == "") {
		return errors.Wrap(ErrBadJob, "either template or subject with text/html is required")
	}

	if err := sender.Send(ctx, job.To, strings.TrimSpace(subject), text, html); err != nil {
		return errors.Wrap(err, "send email")
	}
	return nil
}
