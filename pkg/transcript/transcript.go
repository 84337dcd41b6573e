package transcript

import (
	"context"
	"errors"
	"strings"
)

// ErrUnavailable wraps every failure of the caption source. Callers degrade
// (empty tutor context, visible notice) instead of aborting the flow.
var ErrUnavailable = errors.New("transcript unavailable")

// Segment is one timed caption unit of a video.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`    // seconds
	Duration float64 `json:"duration"` // seconds
}

// Fetcher retrieves the ordered caption segments of a video reference.
type Fetcher interface {
	Fetch(ctx context.Context, videoRef string) ([]Segment, error)
}

// SegmentAt returns the segment spoken at playback time t: the last segment
// whose start does not exceed t. The final segment owns the unbounded
// trailing interval. Returns -1 when t precedes the first segment or the
// list is empty.
func SegmentAt(segments []Segment, t float64) int {
	current := -1
	for i, s := range segments {
		if s.Start <= t {
			current = i
		} else {
			break
		}
	}
	return current
}

// JoinText concatenates segment text with single spaces, in order.
func JoinText(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s.Text != "" {
			parts = append(parts, s.Text)
		}
	}
	return strings.Join(parts, " ")
}
