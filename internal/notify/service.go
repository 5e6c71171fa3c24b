package notify

import (
	"context"
	"time"

	"github.com/Mearaf/codebridge-website/pkg/logging"
)

const sendTimeout = 10 * time.Second

// Service routes submission alerts to the business inbox. A lost alert is
// tolerable; a failed form submission is not, so Notify never returns an
// error to the caller.
type Service struct {
	sender EmailSender
	to     string
	logger *logging.Logger
}

// NewService creates a notification service. sender may be nil, in which
// case notifications are logged and dropped.
func NewService(sender EmailSender, to string, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{sender: sender, to: to, logger: logger}
}

// Notify sends an alert email without blocking the request that triggered
// it. Failures are logged only.
func (s *Service) Notify(ctx context.Context, subject, body string) {
	if s.sender == nil || s.to == "" {
		s.logger.Debug("notify: email not configured, dropping alert", "subject", subject)
		return
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
		defer cancel()

		err := s.sender.Send(sendCtx, EmailMessage{
			To:      s.to,
			Subject: subject,
			Body:    body,
		})
		if err != nil {
			s.logger.Error("notify: alert email failed", "subject", subject, "error", err)
		}
	}()
}
