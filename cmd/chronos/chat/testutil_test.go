package chat

import (
	"context"
	"sync"
	"testing"

	"chronos/cmd/chronos/ui"
	"chronos/internal/conversation"
	"chronos/internal/session"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// fakeClient answers every completion with a fixed reply or error.
type fakeClient struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
}

func (f *fakeClient) SendMessage(_ context.Context, _ []conversation.Turn, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.text, f.err
}

func (f *fakeClient) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// newTestModel returns a sized model over a fresh session.
func newTestModel(t *testing.T, client *fakeClient) (Model, *session.Controller) {
	t.Helper()
	controller := session.New(conversation.NewStore(), client, zap.NewNop())
	m := New(Config{
		Controller: controller,
		ModelName:  "test-model",
		Styles:     ui.NewStyles(ui.LightTheme()),
	})
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 60}), controller
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := updateCmd(t, m, msg)
	return next
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	return update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func pressEnter(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	return updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

// collectMsgs runs cmd and flattens any batch into its messages.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findResponse(t *testing.T, cmd tea.Cmd) responseMsg {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		if resp, ok := msg.(responseMsg); ok {
			return resp
		}
	}
	t.Fatal("no responseMsg produced by command")
	return responseMsg{}
}
