// Package conversation holds the ordered, append-only turn history of a Chronos session.
package conversation

import (
	"strings"
	"time"
)

// Role identifies who authored a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleSystem is reserved. The system instruction travels out-of-band and
	// never appears in the live transcript.
	RoleSystem Role = "system"
)

// ExpansionKeyword is the token that asks the persona for expansion seeds.
const ExpansionKeyword = "wip"

// Turn is one entry in the conversation. Content is never modified after creation.
type Turn struct {
	ID                 string
	Role               Role
	Content            string
	CreatedAt          time.Time
	IsExpansionRequest bool
}

// IsExpansionRequest reports whether text contains the expansion keyword, ignoring case.
func IsExpansionRequest(text string) bool {
	return strings.Contains(strings.ToLower(text), ExpansionKeyword)
}
