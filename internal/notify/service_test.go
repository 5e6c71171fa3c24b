package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Mearaf/codebridge-website/pkg/logging"
)

type captureSender struct {
	mu   sync.Mutex
	sent []EmailMessage
	err  error
	done chan struct{}
}

func newCaptureSender(err error) *captureSender {
	return &captureSender{err: err, done: make(chan struct{}, 8)}
}

func (c *captureSender) Send(_ context.Context, msg EmailMessage) error {
	c.mu.Lock()
	c.sent = append(c.sent, msg)
	c.mu.Unlock()
	c.done <- struct{}{}
	return c.err
}

func (c *captureSender) wait(t *testing.T) {
	t.Helper()
	select {
	case <-c.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for send")
	}
}

func TestNotifySendsToBusinessInbox(t *testing.T) {
	sender := newCaptureSender(nil)
	svc := NewService(sender, "hello@codebridge.tech", logging.Default())

	svc.Notify(context.Background(), "New contact form submission", "From: Dana")
	sender.wait(t)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email, got %d", len(sender.sent))
	}
	if sender.sent[0].To != "hello@codebridge.tech" {
		t.Errorf("to = %q", sender.sent[0].To)
	}
	if sender.sent[0].Subject != "New contact form submission" {
		t.Errorf("subject = %q", sender.sent[0].Subject)
	}
}

func TestNotifySurvivesSenderFailure(t *testing.T) {
	sender := newCaptureSender(errors.New("sendgrid down"))
	svc := NewService(sender, "hello@codebridge.tech", logging.Default())

	// Must not panic or propagate.
	svc.Notify(context.Background(), "subject", "body")
	sender.wait(t)
}

func TestNotifyWithoutSenderIsNoOp(t *testing.T) {
	svc := NewService(nil, "", logging.Default())
	svc.Notify(context.Background(), "subject", "body")
}

func TestNotifyOutlivesRequestContext(t *testing.T) {
	sender := newCaptureSender(nil)
	svc := NewService(sender, "hello@codebridge.tech", logging.Default())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // simulate the request ending before the email goes out

	svc.Notify(ctx, "subject", "body")
	sender.wait(t)

	sender.mu.Lock()
	defer sender.mu.Unlock()
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 email despite canceled request, got %d", len(sender.sent))
	}
}
