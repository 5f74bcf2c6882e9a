package journal

import (
	_ "embed"
	"fmt"

	"github.com/journai/journai-backend/internal/domain"
)

// systemPrompt is the fixed instruction sent with every completion request.
// It encodes the exact output schema the model must produce and is shipped as
// an asset, never generated at request time.
//
//go:embed entry_prompt.txt
var systemPrompt string

// Prompt is the ordered two-message sequence sent to the completion service:
// the fixed system instruction plus one user message.
type Prompt struct {
	System string
	User   string
}

// buildPrompt assembles the prompt for one ingestion request. The user
// message embeds the journaler's name, the entry date, and the free-text
// summary in the form "name (date): summary".
func buildPrompt(name string, date domain.Date, summary string) Prompt {
	return Prompt{
		System: systemPrompt,
		User:   fmt.Sprintf("%s (%s): %s", name, date, summary),
	}
}
