package entity

import (
	"time"

	"github.com/google/uuid"
)

// StudyActivity is one append-only progress record, produced by the activity
// event consumer.
type StudyActivity struct {
	Id        uuid.UUID
	Username  string
	EventType string
	Subject   string
	Chapter   string
	Detail    map[string]interface{}
	CreatedAt time.Time
}

// ChapterProgress aggregates a user's recorded activity per chapter.
type ChapterProgress struct {
	Subject    string
	Chapter    string
	ChatTurns  int64
	QuizTaken  bool
	LastActive time.Time
}
