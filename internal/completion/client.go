// Package completion sends a Chronos conversation to the generative-text service.
package completion

import (
	"context"
	"errors"
	"fmt"

	"chronos/internal/conversation"

	"google.golang.org/genai"
)

// Client produces the persona's reply to newUserContent given the prior history.
// history must not contain the turn that carries newUserContent.
// Every error returned is a *Failure.
type Client interface {
	SendMessage(ctx context.Context, history []conversation.Turn, newUserContent string) (string, error)
}

// ErrMissingAPIKey is the cause reported when no credential is configured.
var ErrMissingAPIKey = errors.New("API key not configured")

// Failure wraps any transport, service, or credential error from a completion call.
type Failure struct {
	Cause error
}

func (f *Failure) Error() string {
	if f.Cause == nil {
		return "completion failed"
	}
	return fmt.Sprintf("completion failed: %v", f.Cause)
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

// asFailure wraps err unless it already is a *Failure.
func asFailure(err error) error {
	if err == nil {
		return nil
	}
	var f *Failure
	if errors.As(err, &f) {
		return err
	}
	return &Failure{Cause: err}
}

// Speaker is the service's two-party role vocabulary.
type Speaker string

const (
	SpeakerRequester Speaker = Speaker(genai.RoleUser)
	SpeakerResponder Speaker = Speaker(genai.RoleModel)
)

// Message is one (speaker, text) pair of an outbound request.
type Message struct {
	Speaker Speaker
	Text    string
}

// BuildMessages maps history to request messages in order and appends
// newUserContent as the final requester message.
func BuildMessages(history []conversation.Turn, newUserContent string) []Message {
	msgs := make([]Message, 0, len(history)+1)
	for _, turn := range history {
		switch turn.Role {
		case conversation.RoleUser:
			msgs = append(msgs, Message{Speaker: SpeakerRequester, Text: turn.Content})
		case conversation.RoleAssistant:
			msgs = append(msgs, Message{Speaker: SpeakerResponder, Text: turn.Content})
		default:
			// System turns are never part of the transcript.
		}
	}
	return append(msgs, Message{Speaker: SpeakerRequester, Text: newUserContent})
}

func toContents(msgs []Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(msgs))
	for _, m := range msgs {
		contents = append(contents, genai.NewContentFromText(m.Text, genai.Role(m.Speaker)))
	}
	return contents
}
