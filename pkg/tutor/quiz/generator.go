package quiz

import (
	"context"
	"fmt"
	"strings"

	"edusphere-be/pkg/llm"
	"edusphere-be/pkg/store"
	"edusphere-be/pkg/tutor/prompt"
)

// Generator produces one quiz per chapter from the chapter's transcript
// window. Both completion calls are non-streamed.
type Generator struct {
	provider    llm.LLMProvider
	temperature float64
}

func NewGenerator(provider llm.LLMProvider, temperature float64) *Generator {
	return &Generator{
		provider:    provider,
		temperature: temperature,
	}
}

// Generate issues the question and key-term completions and parses both.
// A reply outside the quiz grammar surfaces ErrParseFailure.
func (g *Generator) Generate(ctx context.Context, subject, chapter, transcriptText string) (*store.Quiz, error) {
	window := prompt.TranscriptWindow(transcriptText)

	questionReply, err := g.provider.Generate(ctx, buildQuestionPrompt(subject, chapter, window),
		llm.WithTemperature(g.temperature))
	if err != nil {
		return nil, fmt.Errorf("quiz question request: %w", err)
	}

	question, options, err := ParseQuestion(questionReply)
	if err != nil {
		return nil, err
	}

	termsReply, err := g.provider.Generate(ctx, buildKeyTermsPrompt(subject, chapter, window),
		llm.WithTemperature(g.temperature))
	if err != nil {
		return nil, fmt.Errorf("key terms request: %w", err)
	}

	return &store.Quiz{
		Chapter:  chapter,
		Question: question,
		Options:  options,
		KeyTerms: ParseKeyTerms(termsReply),
	}, nil
}

func buildQuestionPrompt(subject, chapter, window string) string {
	var p strings.Builder
	fmt.Fprintf(&p, "You are preparing a quiz for the %s chapter %q.\n", subject, chapter)
	p.WriteString("Based on the following lesson transcript, write exactly one multiple-choice question with four options.\n\n")
	p.WriteString("Transcript:\n")
	p.WriteString(window)
	p.WriteString("\n\nAnswer in exactly this format, with no extra lines:\n")
	p.WriteString("QUESTION: <the question>\n")
	p.WriteString("A: <first option>\n")
	p.WriteString("B: <second option>\n")
	p.WriteString("C: <third option>\n")
	p.WriteString("D: <fourth option>")
	return p.String()
}

func buildKeyTermsPrompt(subject, chapter, window string) string {
	var p strings.Builder
	fmt.Fprintf(&p, "From this %s lesson transcript for the chapter %q, list exactly 4 key terms a student should remember.\n\n", subject, chapter)
	p.WriteString("Transcript:\n")
	p.WriteString(window)
	p.WriteString("\n\nAnswer with one term per line and nothing else.")
	return p.String()
}
