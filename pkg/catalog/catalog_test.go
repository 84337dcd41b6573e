package catalog

import (
	"errors"
	"testing"
)

func TestCatalogShape(t *testing.T) {
	subjects := Subjects()
	if len(subjects) != 7 {
		t.Fatalf("subject count = %d, want 7", len(subjects))
	}

	for _, s := range subjects {
		if s.Name == "" {
			t.Error("subject with empty name")
		}
		if s.ImageRef == "" {
			t.Errorf("subject %q has no image reference", s.Name)
		}
		if len(s.Chapters) == 0 {
			t.Errorf("subject %q has no chapters", s.Name)
		}
		for _, c := range s.Chapters {
			if c.Title == "" || c.Description == "" || c.VideoRef == "" {
				t.Errorf("subject %q has incomplete chapter %+v", s.Name, c)
			}
		}
	}
}

func TestDefaultSubject(t *testing.T) {
	if got := DefaultSubject().Name; got != "Mathematics" {
		t.Errorf("DefaultSubject = %q, want Mathematics", got)
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		wantErr error
	}{
		{name: "known subject", subject: "Physics"},
		{name: "unknown subject", subject: "Alchemy", wantErr: ErrSubjectNotFound},
		{name: "case sensitive", subject: "physics", wantErr: ErrSubjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Get(tt.subject)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Get(%q) error = %v, want %v", tt.subject, err, tt.wantErr)
			}
			if tt.wantErr == nil && got.Name != tt.subject {
				t.Errorf("Get(%q).Name = %q", tt.subject, got.Name)
			}
		})
	}
}

func TestChapterIndex(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		chapter string
		want    int
		wantErr error
	}{
		{name: "first chapter", subject: "Mathematics", chapter: "Algebra", want: 0},
		{name: "last chapter", subject: "Mathematics", chapter: "Calculus", want: 2},
		{name: "chapter of another subject", subject: "Mathematics", chapter: "Mechanics", wantErr: ErrChapterNotFound},
		{name: "unknown subject", subject: "Alchemy", chapter: "Algebra", wantErr: ErrSubjectNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChapterIndex(tt.subject, tt.chapter)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ChapterIndex error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got != tt.want {
				t.Errorf("ChapterIndex = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestVideoRef(t *testing.T) {
	ref, err := VideoRef("Mathematics", 0)
	if err != nil {
		t.Fatalf("VideoRef error = %v", err)
	}
	if ref != "https://youtu.be/pTnEG_WGd2Q" {
		t.Errorf("VideoRef = %q", ref)
	}

	if _, err := VideoRef("Mathematics", 99); !errors.Is(err, ErrChapterNotFound) {
		t.Errorf("out-of-range index error = %v, want ErrChapterNotFound", err)
	}
	if _, err := VideoRef("Mathematics", -1); !errors.Is(err, ErrChapterNotFound) {
		t.Errorf("negative index error = %v, want ErrChapterNotFound", err)
	}
}
