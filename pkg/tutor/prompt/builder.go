package prompt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"edusphere-be/pkg/catalog"
)

// TranscriptLimit caps how much raw transcript text is injected into the
// tutor context. The window is the head of the space-joined segment text.
const TranscriptLimit = 1000

// TranscriptWindow returns at most TranscriptLimit bytes of text, backing up
// to a rune boundary so the window stays valid UTF-8.
func TranscriptWindow(text string) string {
	if len(text) <= TranscriptLimit {
		return text
	}
	cut := TranscriptLimit
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// ContextBuilder assembles the system-role context that grounds the tutor in
// the selected chapter. The output is deterministic for a given input and
// stays well-formed when the transcript is missing.
type ContextBuilder struct {
	subject        string
	chapter        catalog.Chapter
	transcriptText string
}

func NewContextBuilder(subject string, chapter catalog.Chapter, transcriptText string) *ContextBuilder {
	return &ContextBuilder{
		subject:        subject,
		chapter:        chapter,
		transcriptText: transcriptText,
	}
}

func (b *ContextBuilder) Build() string {
	var ctx strings.Builder

	b.writePersona(&ctx)
	b.writeChapter(&ctx)
	b.writeTranscript(&ctx)

	return ctx.String()
}

func (b *ContextBuilder) writePersona(ctx *strings.Builder) {
	fmt.Fprintf(ctx,
		"You are an expert tutor in %s, currently teaching the chapter %q. "+
			"Provide clear, educational responses suitable for students. "+
			"If using mathematical equations, explain them clearly.\n",
		b.subject, b.chapter.Title)
}

func (b *ContextBuilder) writeChapter(ctx *strings.Builder) {
	ctx.WriteString("\nChapter overview: ")
	ctx.WriteString(b.chapter.Description)
	ctx.WriteString("\n")
}

func (b *ContextBuilder) writeTranscript(ctx *strings.Builder) {
	if b.transcriptText == "" {
		return
	}
	window := TranscriptWindow(b.transcriptText)
	ctx.WriteString("\nThe chapter's instructional video begins:\n")
	ctx.WriteString(window)
	ctx.WriteString("\n")
}

// Greeting is the synthesized assistant message appended whenever the
// selected chapter changes.
func Greeting(subject, chapter string) string {
	return fmt.Sprintf("Welcome! You are now studying %s in %s. "+
		"Watch the chapter video, read along with the transcript, and ask me anything about the topic.",
		chapter, subject)
}

// QuizAcknowledgment closes a quiz submission. Answers are not scored; the
// feature records participation only.
func QuizAcknowledgment(chapter string) string {
	return fmt.Sprintf("Thanks for taking the %s quiz! Review the key terms and keep asking questions about anything that felt unclear.", chapter)
}
