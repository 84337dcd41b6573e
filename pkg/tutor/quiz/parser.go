package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrParseFailure means the model's reply did not follow the quiz grammar.
// The caller reports it instead of guessing at a repair; the brittleness is a
// deliberate failure mode of the feature.
var ErrParseFailure = errors.New("quiz parse failure")

const questionLabel = "QUESTION: "

var optionLabels = [4]string{"A", "B", "C", "D"}

// ParseQuestion parses a completion reply in the fixed quiz grammar:
//
//	QUESTION: <text>
//	A: <option>
//	B: <option>
//	C: <option>
//	D: <option>
//
// Parsing is strictly positional: line 0 is the question, lines 1-4 the
// options in order. Anything else fails.
func ParseQuestion(reply string) (question string, options []string, err error) {
	lines := nonEmptyLines(reply)
	if len(lines) < 5 {
		return "", nil, fmt.Errorf("%w: expected 5 lines, got %d", ErrParseFailure, len(lines))
	}

	if !strings.HasPrefix(lines[0], questionLabel) {
		return "", nil, fmt.Errorf("%w: first line missing %q label", ErrParseFailure, strings.TrimSpace(questionLabel))
	}
	question = strings.TrimSpace(strings.TrimPrefix(lines[0], questionLabel))
	if question == "" {
		return "", nil, fmt.Errorf("%w: empty question text", ErrParseFailure)
	}

	options = make([]string, 0, 4)
	for i, label := range optionLabels {
		line := lines[i+1]
		idx := strings.Index(line, ": ")
		if idx < 0 {
			return "", nil, fmt.Errorf("%w: option line %d has no %q separator", ErrParseFailure, i+1, ": ")
		}
		if got := line[:idx]; got != label {
			return "", nil, fmt.Errorf("%w: expected option label %q, got %q", ErrParseFailure, label, got)
		}
		text := strings.TrimSpace(line[idx+2:])
		if text == "" {
			return "", nil, fmt.Errorf("%w: empty option %s", ErrParseFailure, label)
		}
		options = append(options, text)
	}

	return question, options, nil
}

// ParseKeyTerms splits a key-terms reply on line breaks, dropping blanks and
// list bullets.
func ParseKeyTerms(reply string) []string {
	lines := nonEmptyLines(reply)
	terms := make([]string, 0, len(lines))
	for _, line := range lines {
		term := strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
		if term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

func nonEmptyLines(s string) []string {
	raw := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
