// Package session drives a single Chronos conversation.
//
// The Controller owns the Session State and is its only writer. A send is
// split at its one suspend point so the TUI can run the network call off the
// event loop:
//
//	Begin (guard, append user turn) → Dispatch (completion call) → Resolve (append reply or record failure)
//
// Send runs all three synchronously for non-interactive callers.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"chronos/internal/completion"
	"chronos/internal/conversation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// FallbackResponse replaces an empty completion payload.
	FallbackResponse = "I apologize, but I was unable to generate a response."

	// FailureMessage is the only failure detail ever shown to the user.
	FailureMessage = "The timeline collapsed. (Failed to connect to Chronos service)"
)

var (
	ErrEmptyInput     = errors.New("input is empty")
	ErrAlreadyPending = errors.New("a request is already in flight")
)

// State is an immutable snapshot of the session for renderers.
type State struct {
	Turns     []conversation.Turn
	Pending   bool
	LastError string
}

// Exchange is an accepted send awaiting its completion result.
type Exchange struct {
	// UserTurn is the turn appended by Begin.
	UserTurn conversation.Turn

	// History is the conversation as it was before UserTurn was appended.
	History []conversation.Turn

	// Content is the trimmed text sent as the new message.
	Content string

	started time.Time
}

// Outcome is the result of dispatching an Exchange.
type Outcome struct {
	Text string
	Err  error
}

// Controller is the two-state interaction machine.
type Controller struct {
	mu        sync.Mutex
	store     *conversation.Store
	client    completion.Client
	logger    *zap.Logger
	sessionID string

	pending   bool
	inFlight  *Exchange
	lastError string
}

// New creates a controller over store that sends through client.
func New(store *conversation.Store, client completion.Client, logger *zap.Logger) *Controller {
	if store == nil {
		store = conversation.NewStore()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.New().String()
	return &Controller{
		store:     store,
		client:    client,
		logger:    logger.With(zap.String("session_id", id)),
		sessionID: id,
	}
}

// SessionID identifies this session in logs.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// Begin accepts input for sending. It returns ErrEmptyInput or
// ErrAlreadyPending without touching state when the guard rejects.
func (c *Controller) Begin(input string) (*Exchange, error) {
	content := strings.TrimSpace(input)
	if content == "" {
		return nil, ErrEmptyInput
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending {
		c.logger.Debug("send rejected while pending")
		return nil, ErrAlreadyPending
	}

	history := c.store.AllTurns()
	turn := c.store.AppendTurn(conversation.RoleUser, content)
	c.lastError = ""
	c.pending = true

	ex := &Exchange{
		UserTurn: turn,
		History:  history,
		Content:  content,
		started:  time.Now(),
	}
	c.inFlight = ex

	c.logger.Info("send accepted",
		zap.String("turn_id", turn.ID),
		zap.Int("history_turns", len(history)),
		zap.Bool("expansion_request", turn.IsExpansionRequest),
	)

	return ex, nil
}

// Dispatch performs the completion call for ex. It reads no controller
// state and is safe to run on any goroutine.
func (c *Controller) Dispatch(ctx context.Context, ex *Exchange) Outcome {
	text, err := c.client.SendMessage(ctx, ex.History, ex.Content)
	return Outcome{Text: text, Err: err}
}

// Resolve applies the outcome of ex and returns the controller to idle.
// Failures are logged and recorded as FailureMessage; they never propagate.
// An ex that is not the exchange in flight is ignored.
func (c *Controller) Resolve(ex *Exchange, out Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if ex == nil || ex != c.inFlight {
		c.logger.Warn("stale exchange ignored", zap.Bool("pending", c.pending))
		return
	}
	c.pending = false
	c.inFlight = nil

	if out.Err != nil {
		c.lastError = FailureMessage
		c.logger.Error("completion failed",
			zap.String("turn_id", ex.UserTurn.ID),
			zap.Duration("elapsed", time.Since(ex.started)),
			zap.Error(out.Err),
		)
		return
	}

	text := out.Text
	if text == "" {
		c.logger.Warn("empty completion, using fallback", zap.String("turn_id", ex.UserTurn.ID))
		text = FallbackResponse
	}
	reply := c.store.AppendTurn(conversation.RoleAssistant, text)
	c.logger.Info("reply appended",
		zap.String("turn_id", reply.ID),
		zap.Int("reply_len", len(text)),
		zap.Duration("elapsed", time.Since(ex.started)),
	)
}

// Send runs a full exchange synchronously. It reports false when the
// input was rejected by the guard.
func (c *Controller) Send(ctx context.Context, input string) bool {
	ex, err := c.Begin(input)
	if err != nil {
		return false
	}
	c.Resolve(ex, c.Dispatch(ctx, ex))
	return true
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Turns:     c.store.AllTurns(),
		Pending:   c.pending,
		LastError: c.lastError,
	}
}
