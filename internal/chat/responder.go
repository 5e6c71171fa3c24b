package chat

import (
	"context"
	"strings"
	"time"

	"github.com/Mearaf/codebridge-website/internal/observability/metrics"
	"github.com/Mearaf/codebridge-website/pkg/logging"
)

// historyLimit bounds how many prior turns are sent to the generative
// provider.
const historyLimit = 5

// TextGenerator produces a reply from the external language-model provider.
// Implementations are treated as fully unreliable: the responder tolerates
// any error and degrades to the scripted path.
type TextGenerator interface {
	Generate(ctx context.Context, system string, history []Message, userMessage string) (string, error)
}

// Reply is the outcome of classifying and answering one visitor message.
// Mode reports the path that actually produced the text, which differs from
// the requested mode when the generative provider fails.
type Reply struct {
	Text      string
	Mode      Mode
	SessionID string // set for live hand-off replies
}

// Responder selects among scripted, generative, and live hand-off response
// paths.
type Responder struct {
	gen      TextGenerator
	sessions SessionStore
	timeout  time.Duration
	logger   *logging.Logger
	metrics  *metrics.ChatMetrics
}

// NewResponder wires the selector. gen may be nil (generative requests then
// degrade to scripted); sessions is required.
func NewResponder(gen TextGenerator, sessions SessionStore, timeout time.Duration, logger *logging.Logger, m *metrics.ChatMetrics) *Responder {
	if sessions == nil {
		panic("chat: session store required")
	}
	if timeout <= 0 {
		timeout = 8 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Responder{
		gen:      gen,
		sessions: sessions,
		timeout:  timeout,
		logger:   logger,
		metrics:  m,
	}
}

// Respond classifies the message and produces a reply in the requested
// mode. Unknown modes fall back to scripted.
func (r *Responder) Respond(ctx context.Context, visitorID, message string, history []Message, mode Mode) Reply {
	switch mode {
	case ModeAI:
		return r.generative(ctx, message, history)
	case ModeLive:
		return r.handoff(visitorID)
	default:
		reply := Reply{Text: ScriptedResponse(message), Mode: ModeScripted}
		r.metrics.ObserveResponse(string(ModeScripted))
		return reply
	}
}

// generative delegates to the language-model provider under an explicit
// timeout. Every failure path returns a scripted reply and reports the
// scripted mode; the caller never sees the provider error.
func (r *Responder) generative(ctx context.Context, message string, history []Message) Reply {
	if r.gen == nil {
		return r.fallback(message, "generator not configured", nil)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	start := time.Now()
	text, err := r.gen.Generate(ctx, systemPrompt, history, message)
	r.metrics.ObserveGenerateLatency(time.Since(start).Seconds())

	if err != nil {
		return r.fallback(message, "provider error", err)
	}
	if strings.TrimSpace(text) == "" {
		return r.fallback(message, "empty completion", nil)
	}

	r.metrics.ObserveResponse(string(ModeAI))
	return Reply{Text: text, Mode: ModeAI}
}

func (r *Responder) fallback(message, reason string, err error) Reply {
	r.logger.Warn("chat: generative path degraded to scripted", "reason", reason, "error", err)
	r.metrics.ObserveFallback()
	r.metrics.ObserveResponse(string(ModeScripted))
	return Reply{Text: ScriptedResponse(message), Mode: ModeScripted}
}

// handoff returns the visitor's open session, creating one in the waiting
// state when none exists.
func (r *Responder) handoff(visitorID string) Reply {
	sess, ok := r.sessions.GetByVisitor(visitorID)
	if !ok {
		sess = r.sessions.Create(visitorID)
		r.logger.Info("chat: live session created", "session_id", sess.ID, "visitor_id", visitorID)
	}

	r.metrics.ObserveResponse(string(ModeLive))
	return Reply{Text: sess.Messages[0].Text, Mode: ModeLive, SessionID: sess.ID}
}
