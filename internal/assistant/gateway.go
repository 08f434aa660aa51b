// Package assistant forwards employee questions, grounded in the induction
// content, to an external text-generation service and maps every failure to
// a fixed user-facing reply. Calls are independent and stateless: there is
// no conversation memory, no retry and no backoff.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/bestpacific/induction/internal/logging"
	"github.com/bestpacific/induction/internal/models"
)

// Fixed user-facing replies. Failures are encoded as these strings rather
// than surfaced as errors, so asking the assistant always succeeds at the
// type level.
const (
	ReplyConnectionError = "There was an error connecting to the AI assistant. Please try again later."
	ReplyEmptyAnswer     = "I'm sorry, I couldn't process that request."
	ReplySummaryEmpty    = "Summary unavailable."
	ReplySummaryError    = "Summary generation failed."
)

// TextGenerator produces a completion for a single prompt. It is implemented
// by the Gemini REST client; tests substitute a fake.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Gateway is the boundary component between the portal and the hosted
// text-generation service.
type Gateway struct {
	client TextGenerator
	logger logging.Logger
}

// NewGateway returns a Gateway backed by the given text generator.
func NewGateway(client TextGenerator, logger logging.Logger) *Gateway {
	return &Gateway{client: client, logger: logger}
}

// buildContext concatenates every section's title and content into one
// grounding block.
func buildContext(sections []models.InductionSection) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, fmt.Sprintf("%s: %s", s.Title, s.Content))
	}
	return strings.Join(parts, "\n\n")
}

// AnswerQuestion sends the question together with the full content corpus to
// the text-generation service and returns its answer verbatim. Transport or
// service errors become ReplyConnectionError; an empty answer becomes
// ReplyEmptyAnswer.
func (g *Gateway) AnswerQuestion(ctx context.Context, question string, sections []models.InductionSection) string {
	prompt := fmt.Sprintf(`You are the AI Assistant for Best Pacific Textiles Lanka Private Limited.
Use the following company induction information to answer the employee's question.
If the answer isn't in the context, politely say you don't have that specific information and suggest they contact HR.

Company Info:
%s

Question: %s`, buildContext(sections), question)

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		g.logger.Error(ctx, "assistant call failed", "error", err.Error())
		return ReplyConnectionError
	}
	if text == "" {
		return ReplyEmptyAnswer
	}
	return text
}

// SummarizeSection asks the service to condense one induction section into
// two bullet points. As with AnswerQuestion, failures map to fixed replies.
func (g *Gateway) SummarizeSection(ctx context.Context, section models.InductionSection) string {
	prompt := fmt.Sprintf("Summarize this company induction section in 2 bullet points:\n\n%s", section.Content)

	text, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		g.logger.Error(ctx, "summary call failed", "error", err.Error())
		return ReplySummaryError
	}
	if text == "" {
		return ReplySummaryEmpty
	}
	return text
}
