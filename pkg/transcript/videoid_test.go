package transcript

import "testing"

func TestExtractVideoID(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{name: "short link", ref: "https://youtu.be/pTnEG_WGd2Q", want: "pTnEG_WGd2Q"},
		{name: "embed link", ref: "https://www.youtube.com/embed/pTnEG_WGd2Q?rel=0", want: "pTnEG_WGd2Q"},
		{name: "watch path fallback", ref: "https://example.com/videos/abc123", want: "abc123"},
		{name: "bare id", ref: "pTnEG_WGd2Q", want: "pTnEG_WGd2Q"},
		{name: "query stripped", ref: "https://youtu.be/pTnEG_WGd2Q?t=30", want: "pTnEG_WGd2Q"},
		{name: "empty", ref: "", wantErr: true},
		{name: "trailing slash only", ref: "https://youtu.be/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractVideoID(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractVideoID(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestSegmentAt(t *testing.T) {
	segments := []Segment{
		{Text: "one", Start: 0, Duration: 2},
		{Text: "two", Start: 2, Duration: 3},
		{Text: "three", Start: 5, Duration: 4},
	}

	tests := []struct {
		name string
		t    float64
		want int
	}{
		{name: "at start", t: 0, want: 0},
		{name: "inside first", t: 1.5, want: 0},
		{name: "on boundary", t: 2, want: 1},
		{name: "inside last", t: 7, want: 2},
		{name: "beyond last duration", t: 100, want: 2},
		{name: "before first", t: -1, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SegmentAt(segments, tt.t); got != tt.want {
				t.Errorf("SegmentAt(%v) = %d, want %d", tt.t, got, tt.want)
			}
		})
	}

	if got := SegmentAt(nil, 3); got != -1 {
		t.Errorf("SegmentAt(nil) = %d, want -1", got)
	}
}

func TestJoinText(t *testing.T) {
	segments := []Segment{
		{Text: "hello"},
		{Text: ""},
		{Text: "world"},
	}
	if got := JoinText(segments); got != "hello world" {
		t.Errorf("JoinText = %q, want %q", got, "hello world")
	}
	if got := JoinText(nil); got != "" {
		t.Errorf("JoinText(nil) = %q, want empty", got)
	}
}
