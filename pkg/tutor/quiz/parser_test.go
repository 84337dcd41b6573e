package quiz

import (
	"errors"
	"testing"
)

func TestParseQuestion(t *testing.T) {
	tests := []struct {
		name         string
		reply        string
		wantQuestion string
		wantOptions  []string
		wantErr      bool
	}{
		{
			name: "well formed",
			reply: "QUESTION: What is 2 + 2?\n" +
				"A: 3\n" +
				"B: 4\n" +
				"C: 5\n" +
				"D: 22",
			wantQuestion: "What is 2 + 2?",
			wantOptions:  []string{"3", "4", "5", "22"},
		},
		{
			name: "blank lines between entries",
			reply: "QUESTION: Pick one.\n\n" +
				"A: first\n\n" +
				"B: second\n" +
				"C: third\n" +
				"D: fourth\n",
			wantQuestion: "Pick one.",
			wantOptions:  []string{"first", "second", "third", "fourth"},
		},
		{
			name: "trailing chatter ignored",
			reply: "QUESTION: Which planet is largest?\n" +
				"A: Mars\nB: Jupiter\nC: Venus\nD: Earth\n" +
				"The correct answer is B.",
			wantQuestion: "Which planet is largest?",
			wantOptions:  []string{"Mars", "Jupiter", "Venus", "Earth"},
		},
		{
			name:    "missing question label",
			reply:   "What is 2 + 2?\nA: 3\nB: 4\nC: 5\nD: 22",
			wantErr: true,
		},
		{
			name:    "too few lines",
			reply:   "QUESTION: What?\nA: yes\nB: no",
			wantErr: true,
		},
		{
			name:    "options out of order",
			reply:   "QUESTION: What?\nB: one\nA: two\nC: three\nD: four",
			wantErr: true,
		},
		{
			name:    "option without separator",
			reply:   "QUESTION: What?\nA: one\nB two\nC: three\nD: four",
			wantErr: true,
		},
		{
			name:    "empty reply",
			reply:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			question, options, err := ParseQuestion(tt.reply)

			if tt.wantErr {
				if !errors.Is(err, ErrParseFailure) {
					t.Fatalf("error = %v, want ErrParseFailure", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if question != tt.wantQuestion {
				t.Errorf("question = %q, want %q", question, tt.wantQuestion)
			}
			if len(options) != len(tt.wantOptions) {
				t.Fatalf("option count = %d, want %d", len(options), len(tt.wantOptions))
			}
			for i := range options {
				if options[i] != tt.wantOptions[i] {
					t.Errorf("option[%d] = %q, want %q", i, options[i], tt.wantOptions[i])
				}
			}
		})
	}
}

func TestParseKeyTerms(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  []string
	}{
		{
			name:  "plain lines",
			reply: "variable\nequation\ncoefficient\nconstant",
			want:  []string{"variable", "equation", "coefficient", "constant"},
		},
		{
			name:  "numbered list",
			reply: "1. variable\n2. equation\n3. coefficient\n4. constant",
			want:  []string{"variable", "equation", "coefficient", "constant"},
		},
		{
			name:  "bulleted with blanks",
			reply: "- variable\n\n* equation\n",
			want:  []string{"variable", "equation"},
		},
		{
			name:  "empty reply",
			reply: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKeyTerms(tt.reply)
			if len(got) != len(tt.want) {
				t.Fatalf("term count = %d, want %d (%v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("term[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
