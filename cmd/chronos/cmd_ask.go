package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"chronos/internal/articulation"
	"chronos/internal/conversation"
	"chronos/internal/logging"
	"chronos/internal/session"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// errExchangeFailed makes the process exit non-zero after the failure
// message has already been printed.
var errExchangeFailed = errors.New("exchange failed")

// askCmd runs a single exchange without the TUI.
var askCmd = &cobra.Command{
	Use:   "ask [scenario]",
	Short: "Ask a single alternate-history question and print the answer",
	Long: `Sends one message to the historian and prints the reply.

Example:
  chronos ask "What if the Library of Alexandria never burned? wip"`,
	Args:          cobra.MinimumNArgs(1),
	SilenceErrors: true,
	RunE:          runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx, tracker := commandContext(cmd)

	controller, err := newController(ctx, cfg)
	if err != nil {
		return err
	}

	timer := logging.StartTimer(logging.CategoryAPI, "ask exchange")
	accepted := controller.Send(ctx, strings.Join(args, " "))
	timer.StopWithThreshold(30 * time.Second)
	logging.API("ask usage: %+v", tracker.Stats())
	if !accepted {
		return fmt.Errorf("nothing to ask: scenario is blank")
	}

	state := controller.State()
	if state.LastError != "" {
		color.New(color.FgRed, color.Bold).Fprintln(cmd.ErrOrStderr(), state.LastError)
		return errExchangeFailed
	}

	printReply(cmd.OutOrStdout(), lastAssistant(state))
	return nil
}

func lastAssistant(state session.State) string {
	for i := len(state.Turns) - 1; i >= 0; i-- {
		if state.Turns[i].Role == conversation.RoleAssistant {
			return state.Turns[i].Content
		}
	}
	return ""
}

// printReply writes the analysis plainly and the expansion seeds in amber.
// Without color support it falls back to the flattened paragraphs.
func printReply(w io.Writer, reply string) {
	a := articulation.Format(reply)
	if color.NoColor {
		for _, line := range a.Paragraphs() {
			fmt.Fprintln(w, line)
		}
		return
	}

	for _, p := range a.Main {
		fmt.Fprintln(w, p)
	}
	if !a.HasExpansion() {
		return
	}

	title := color.New(color.FgYellow, color.Bold)
	seed := color.New(color.FgYellow, color.Italic)

	fmt.Fprintln(w)
	title.Fprintln(w, "✦ "+articulation.ExpansionTitle)
	for _, s := range a.Expansion {
		if s == "" {
			fmt.Fprintln(w)
			continue
		}
		seed.Fprintln(w, "  • "+s)
	}
}
