package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"edusphere-be/pkg/catalog"
)

var testChapter = catalog.Chapter{
	Title:       "Algebra",
	Description: "Variables, expressions and equations.",
	VideoRef:    "https://youtu.be/pTnEG_WGd2Q",
}

func TestBuildContainsPersonaAndChapter(t *testing.T) {
	got := NewContextBuilder("Mathematics", testChapter, "solving for x").Build()

	for _, want := range []string{
		"expert tutor in Mathematics",
		`chapter "Algebra"`,
		"Chapter overview: Variables, expressions and equations.",
		"solving for x",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q:\n%s", want, got)
		}
	}
}

func TestBuildWithoutTranscript(t *testing.T) {
	got := NewContextBuilder("Mathematics", testChapter, "").Build()

	if strings.Contains(got, "instructional video") {
		t.Errorf("transcript section present without transcript:\n%s", got)
	}
	if !strings.Contains(got, "Chapter overview:") {
		t.Errorf("chapter section missing:\n%s", got)
	}
}

func TestBuildCapsTranscript(t *testing.T) {
	long := strings.Repeat("a", TranscriptLimit+500)
	got := NewContextBuilder("Mathematics", testChapter, long).Build()

	if strings.Contains(got, strings.Repeat("a", TranscriptLimit+1)) {
		t.Error("transcript window exceeds limit")
	}
	if !strings.Contains(got, strings.Repeat("a", TranscriptLimit)) {
		t.Error("transcript window shorter than limit")
	}
}

func TestTranscriptWindowRuneBoundary(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"multi-byte across the limit", strings.Repeat("a", TranscriptLimit-1) + "日本語の説明"},
		{"all multi-byte", strings.Repeat("語", TranscriptLimit)},
		{"exactly at the limit", strings.Repeat("a", TranscriptLimit)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranscriptWindow(tt.text)
			if len(got) > TranscriptLimit {
				t.Errorf("window is %d bytes, limit is %d", len(got), TranscriptLimit)
			}
			if !utf8.ValidString(got) {
				t.Errorf("window contains invalid UTF-8: %q", got[len(got)-4:])
			}
			if !strings.HasPrefix(tt.text, got) {
				t.Error("window is not a prefix of the input")
			}
		})
	}
}

func TestBuildKeepsValidUTF8AfterTruncation(t *testing.T) {
	long := strings.Repeat("a", TranscriptLimit-1) + "日本語の説明"
	got := NewContextBuilder("Mathematics", testChapter, long).Build()

	if !utf8.ValidString(got) {
		t.Error("context contains invalid UTF-8 after truncation")
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := NewContextBuilder("Mathematics", testChapter, "text").Build()
	b := NewContextBuilder("Mathematics", testChapter, "text").Build()
	if a != b {
		t.Error("context is not deterministic for the same input")
	}
}

func TestGreetingNamesChapterAndSubject(t *testing.T) {
	got := Greeting("Mathematics", "Algebra")
	if !strings.Contains(got, "Algebra") || !strings.Contains(got, "Mathematics") {
		t.Errorf("greeting missing selection: %q", got)
	}
}
