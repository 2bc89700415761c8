package dialog

import (
	"strconv"
	"strings"
)

// PromptKind is the expected shape of the reply to a prompt.
type PromptKind int

const (
	FreeText PromptKind = iota
	Confirm
	Choice
)

// Prompt is a suspension point requesting exactly one reply from the user.
// At most one prompt is pending per conversation at any time.
type Prompt struct {
	Kind    PromptKind
	Text    string
	Options []string
}

func Text(text string) Prompt {
	return Prompt{Kind: FreeText, Text: text}
}

func Confirmation(text string) Prompt {
	return Prompt{Kind: Confirm, Text: text}
}

func ChoiceOf(text string, options []string) Prompt {
	return Prompt{Kind: Choice, Text: text, Options: options}
}

// AbortToken ends the conversation from any pending prompt.
const AbortToken = "quit"

// IsAbort reports whether a reply is the global abort signal.
func IsAbort(reply string) bool {
	return strings.EqualFold(strings.TrimSpace(reply), AbortToken)
}

// ParseConfirm interprets a confirmation reply. The second return is false
// when the reply is neither an acceptance nor a refusal.
func ParseConfirm(reply string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(reply)) {
	case "yes", "y", "true", "1":
		return true, true
	case "no", "n", "false", "0":
		return false, true
	}
	return false, false
}

// ResolveChoice matches a reply against the option labels, by exact label
// (case-insensitive) or by 1-based index. Membership validation is the
// issuing step's responsibility; the machine never rejects a reply itself.
func ResolveChoice(reply string, options []string) (string, bool) {
	trimmed := strings.TrimSpace(reply)
	for _, option := range options {
		if strings.EqualFold(trimmed, option) {
			return option, true
		}
	}
	if index, err := strconv.Atoi(trimmed); err == nil && index >= 1 && index <= len(options) {
		return options[index-1], true
	}
	return "", false
}
