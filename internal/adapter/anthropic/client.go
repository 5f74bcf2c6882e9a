// Package anthropic wraps the Anthropic Messages API as the completion
// capability of the ingestion pipeline: one prompt in, the first text block of
// one completion out.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/journai/journai-backend/internal/config"
	"github.com/journai/journai-backend/internal/domain"
	"github.com/journai/journai-backend/internal/service/journal"
)

// Client requests completions from the Anthropic Messages API with fixed
// model parameters. It performs exactly one outbound call per invocation and
// no retries; retry policy, if any, belongs to the caller.
type Client struct {
	api       anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

// NewClient creates a completion client from LLM configuration. The SDK's
// default retry policy is disabled: a failed completion is resubmitted by the
// end caller, never replayed here. The configured timeout bounds each request.
func NewClient(cfg config.LLMConfig, opts ...option.RequestOption) *Client {
	opts = append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
		option.WithRequestTimeout(cfg.Timeout),
	}, opts...)
	return &Client{
		api:       anthropic.NewClient(opts...),
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
	}
}

// Complete sends the prompt and returns the raw text of the first content
// block. A response with zero content blocks or blank text fails with
// domain.ErrNoCompletion; transport and service failures are wrapped as-is.
func (c *Client) Complete(ctx context.Context, prompt journal.Prompt) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: prompt.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt.User)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}

	if len(msg.Content) == 0 {
		return "", domain.ErrNoCompletion
	}

	text := msg.Content[0].Text
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrNoCompletion
	}

	return text, nil
}
