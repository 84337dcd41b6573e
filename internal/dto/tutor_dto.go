package dto

import "time"

type MessageDTO struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SessionResponse struct {
	Subject      string       `json:"subject"`
	Chapter      string       `json:"chapter"`
	Conversation []MessageDTO `json:"conversation"`
	QuizReady    bool         `json:"quiz_ready"`
}

type SelectSubjectRequest struct {
	Subject string `json:"subject" validate:"required"`
}

type SelectChapterRequest struct {
	Chapter string `json:"chapter" validate:"required"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply MessageDTO `json:"reply"`
}

type VideoResponse struct {
	Subject  string `json:"subject"`
	Chapter  string `json:"chapter"`
	VideoURL string `json:"video_url"`
	VideoID  string `json:"video_id"`
}

type TranscriptSegmentDTO struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

type TranscriptResponse struct {
	Segments []TranscriptSegmentDTO `json:"segments"`
	Text     string                 `json:"text"`

	// CurrentSegment is the index spoken at the requested playback time, -1
	// when no time was given or it precedes the first segment.
	CurrentSegment int `json:"current_segment"`
}

type QuizResponse struct {
	Chapter  string   `json:"chapter"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	KeyTerms []string `json:"key_terms"`
}

type QuizAnswerRequest struct {
	Answer string `json:"answer" validate:"required,oneof=A B C D"`
}

type QuizAnswerResponse struct {
	Acknowledgment MessageDTO `json:"acknowledgment"`
}

type ChapterProgressDTO struct {
	Subject    string    `json:"subject"`
	Chapter    string    `json:"chapter"`
	ChatTurns  int64     `json:"chat_turns"`
	QuizTaken  bool      `json:"quiz_taken"`
	LastActive time.Time `json:"last_active"`
}

type ProgressResponse struct {
	Username string               `json:"username"`
	Chapters []ChapterProgressDTO `json:"chapters"`
}
