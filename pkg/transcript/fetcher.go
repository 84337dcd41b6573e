package transcript

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPFetcher pulls captions from a timedtext-style endpoint in json3 format.
type HTTPFetcher struct {
	BaseURL string
	Lang    string
	Client  *http.Client
}

var _ Fetcher = &HTTPFetcher{}

func NewHTTPFetcher(baseURL string) *HTTPFetcher {
	return &HTTPFetcher{
		BaseURL: baseURL,
		Lang:    "en",
		Client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// --- json3 wire format (internal to this package) ---

type timedTextResponse struct {
	Events []timedTextEvent `json:"events"`
}

type timedTextEvent struct {
	StartMs    int64          `json:"tStartMs"`
	DurationMs int64          `json:"dDurationMs"`
	Segs       []timedTextSeg `json:"segs"`
}

type timedTextSeg struct {
	Utf8 string `json:"utf8"`
}

func (f *HTTPFetcher) Fetch(ctx context.Context, videoRef string) ([]Segment, error) {
	videoID, err := ExtractVideoID(videoRef)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", f.Lang)
	q.Set("fmt", "json3")

	req, err := http.NewRequestWithContext(ctx, "GET", f.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	// The endpoint answers 200 with an empty body when no track exists
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: no caption track for video %s", ErrUnavailable, videoID)
	}

	var parsed timedTextResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: unmarshal captions: %v", ErrUnavailable, err)
	}

	segments := make([]Segment, 0, len(parsed.Events))
	for _, ev := range parsed.Events {
		var text strings.Builder
		for _, seg := range ev.Segs {
			text.WriteString(seg.Utf8)
		}
		t := strings.TrimSpace(strings.ReplaceAll(text.String(), "\n", " "))
		if t == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     t,
			Start:    float64(ev.StartMs) / 1000.0,
			Duration: float64(ev.DurationMs) / 1000.0,
		})
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: empty transcript for video %s", ErrUnavailable, videoID)
	}
	return segments, nil
}
