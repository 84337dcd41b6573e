package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"testing"
	"time"

	"edusphere-be/internal/dto"
	"edusphere-be/internal/repository/memory"
	"edusphere-be/pkg/llm"
	"edusphere-be/pkg/store"
	"edusphere-be/pkg/transcript"
	"edusphere-be/pkg/tutor/quiz"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- fakes ---

type fakeProvider struct {
	chatReply    string
	chatErr      error
	generateFn   func(prompt string) (string, error)
	chatCalls    [][]llm.Message
	generateCnt  int
	streamChunks []string
	streamErr    error
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.chatCalls = append(f.chatCalls, history)
	if f.chatErr != nil {
		return "", f.chatErr
	}
	return f.chatReply, nil
}

func (f *fakeProvider) ChatStream(ctx context.Context, history []llm.Message, options ...llm.Option) (<-chan string, <-chan error) {
	f.chatCalls = append(f.chatCalls, history)
	out := make(chan string)
	errCh := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errCh)
		for _, chunk := range f.streamChunks {
			select {
			case out <- chunk:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		if f.streamErr != nil {
			errCh <- f.streamErr
		}
	}()
	return out, errCh
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.generateCnt++
	if f.generateFn != nil {
		return f.generateFn(prompt)
	}
	return "", errors.New("no generate function configured")
}

type fakeFetcher struct {
	segments []transcript.Segment
	err      error
	calls    int
}

func (f *fakeFetcher) Fetch(ctx context.Context, videoRef string) ([]transcript.Segment, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.segments, nil
}

type recordedActivity struct {
	eventType string
	subject   string
	chapter   string
}

type fakeActivityService struct {
	records []recordedActivity
}

func (f *fakeActivityService) Record(ctx context.Context, username, eventType, subject, chapter string, detail map[string]interface{}) {
	f.records = append(f.records, recordedActivity{eventType: eventType, subject: subject, chapter: chapter})
}

func (f *fakeActivityService) Progress(ctx context.Context, username string) (*dto.ProgressResponse, error) {
	return &dto.ProgressResponse{Username: username}, nil
}

func (f *fakeActivityService) History(ctx context.Context, username string, req *dto.ActivityHistoryRequest) (*dto.ActivityHistoryResponse, error) {
	return &dto.ActivityHistoryResponse{Username: username}, nil
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

func newTestTutorService(provider *fakeProvider, fetcher *fakeFetcher) (ITutorService, *memory.SessionRepository, *fakeActivityService) {
	sessions := memory.NewSessionRepository()
	activity := &fakeActivityService{}
	svc := NewTutorService(
		sessions,
		provider,
		fetcher,
		quiz.NewGenerator(provider, 0.7),
		activity,
		0.7,
		nopLogger{},
	)
	return svc, sessions, activity
}

var quizReply = "QUESTION: What is a variable?\nA: A fixed number\nB: A named unknown\nC: A shape\nD: A graph"

// --- tests ---

func TestGetSessionDefaultsToFirstSubject(t *testing.T) {
	svc, _, _ := newTestTutorService(&fakeProvider{}, &fakeFetcher{})

	res, err := svc.GetSession(context.Background(), "alice")
	require.NoError(t, err)

	assert.Equal(t, "Mathematics", res.Subject)
	assert.Equal(t, "Algebra", res.Chapter)
	require.Len(t, res.Conversation, 1)
	assert.Equal(t, store.RoleAssistant, res.Conversation[0].Role)
	assert.Contains(t, res.Conversation[0].Content, "Algebra")
}

func TestSelectSubjectResetsConversation(t *testing.T) {
	provider := &fakeProvider{chatReply: "answer"}
	svc, _, activity := newTestTutorService(provider, &fakeFetcher{})

	_, err := svc.Chat(context.Background(), "alice", &dto.ChatRequest{Message: "hi"})
	require.NoError(t, err)

	res, err := svc.SelectSubject(context.Background(), "alice", &dto.SelectSubjectRequest{Subject: "Physics"})
	require.NoError(t, err)

	assert.Equal(t, "Physics", res.Subject)
	assert.Equal(t, "Mechanics", res.Chapter)
	require.Len(t, res.Conversation, 1, "conversation must reset to the greeting")
	assert.Contains(t, res.Conversation[0].Content, "Mechanics")
	assert.Equal(t, "CHAPTER_SELECTED", activity.records[len(activity.records)-1].eventType)
}

func TestSelectSubjectUnknown(t *testing.T) {
	svc, _, _ := newTestTutorService(&fakeProvider{}, &fakeFetcher{})

	_, err := svc.SelectSubject(context.Background(), "alice", &dto.SelectSubjectRequest{Subject: "Alchemy"})
	assert.Error(t, err)
}

func TestSelectChapterStaleTitle(t *testing.T) {
	svc, _, _ := newTestTutorService(&fakeProvider{}, &fakeFetcher{})

	_, err := svc.SelectSubject(context.Background(), "alice", &dto.SelectSubjectRequest{Subject: "Physics"})
	require.NoError(t, err)

	// A chapter title from another subject must not resolve.
	_, err = svc.SelectChapter(context.Background(), "alice", &dto.SelectChapterRequest{Chapter: "Algebra"})
	assert.Error(t, err)
}

func TestSelectSameChapterKeepsConversation(t *testing.T) {
	provider := &fakeProvider{chatReply: "answer"}
	svc, _, _ := newTestTutorService(provider, &fakeFetcher{})

	_, err := svc.Chat(context.Background(), "alice", &dto.ChatRequest{Message: "hi"})
	require.NoError(t, err)

	res, err := svc.SelectChapter(context.Background(), "alice", &dto.SelectChapterRequest{Chapter: "Algebra"})
	require.NoError(t, err)
	assert.Len(t, res.Conversation, 3) // greeting + user + assistant
}

func TestChatPromptShape(t *testing.T) {
	provider := &fakeProvider{chatReply: "sure"}
	fetcher := &fakeFetcher{segments: []transcript.Segment{{Text: "lesson text", Start: 0, Duration: 2}}}
	svc, _, _ := newTestTutorService(provider, fetcher)

	// Fill the history beyond the window.
	for i := 0; i < 4; i++ {
		_, err := svc.Chat(context.Background(), "alice", &dto.ChatRequest{Message: fmt.Sprintf("question %d", i)})
		require.NoError(t, err)
	}

	last := provider.chatCalls[len(provider.chatCalls)-1]

	assert.Equal(t, store.RoleSystem, last[0].Role)
	assert.Contains(t, last[0].Content, "expert tutor in Mathematics")
	assert.Contains(t, last[0].Content, "lesson text")

	// system + 5 history + new user message
	assert.Len(t, last, 1+HistoryWindow+1)
	assert.Equal(t, store.RoleUser, last[len(last)-1].Role)
	assert.Equal(t, "question 3", last[len(last)-1].Content)
}

func TestChatDegradesWithoutTranscript(t *testing.T) {
	provider := &fakeProvider{chatReply: "sure"}
	fetcher := &fakeFetcher{err: transcript.ErrUnavailable}
	svc, _, _ := newTestTutorService(provider, fetcher)

	_, err := svc.Chat(context.Background(), "alice", &dto.ChatRequest{Message: "hi"})
	require.NoError(t, err)

	last := provider.chatCalls[len(provider.chatCalls)-1]
	assert.NotContains(t, last[0].Content, "instructional video")
	assert.Contains(t, last[0].Content, "Chapter overview:")
}

func TestChatFailureKeepsUserMessage(t *testing.T) {
	provider := &fakeProvider{chatErr: errors.New("upstream down")}
	svc, sessions, _ := newTestTutorService(provider, &fakeFetcher{})

	_, err := svc.Chat(context.Background(), "alice", &dto.ChatRequest{Message: "hi"})
	require.ErrorIs(t, err, ErrRequestFailed)

	sess, found := sessions.Get("alice")
	require.True(t, found)
	last := sess.Conversation[len(sess.Conversation)-1]
	assert.Equal(t, store.RoleUser, last.Role)
	assert.Equal(t, "hi", last.Content)
}

func TestChatStreamAppendsFullReply(t *testing.T) {
	provider := &fakeProvider{streamChunks: []string{"Hel", "lo ", "there"}}
	svc, sessions, _ := newTestTutorService(provider, &fakeFetcher{})

	out, errCh := svc.ChatStream(context.Background(), "alice", &dto.ChatRequest{Message: "hi"})

	var got strings.Builder
	for chunk := range out {
		got.WriteString(chunk)
	}
	require.NoError(t, <-errCh)
	assert.Equal(t, "Hello there", got.String())

	sess, found := sessions.Get("alice")
	require.True(t, found)
	last := sess.Conversation[len(sess.Conversation)-1]
	assert.Equal(t, store.RoleAssistant, last.Role)
	assert.Equal(t, "Hello there", last.Content)
}

func TestChatStreamStopsWhenReaderGone(t *testing.T) {
	provider := &fakeProvider{streamChunks: []string{"a", "b", "c", "d"}}
	svc, _, _ := newTestTutorService(provider, &fakeFetcher{})

	before := runtime.NumGoroutine()

	ctx, cancel := context.WithCancel(context.Background())
	out, errCh := svc.ChatStream(ctx, "alice", &dto.ChatRequest{Message: "hi"})

	// Read one fragment, then walk away like a disconnected client.
	<-out
	cancel()

	require.ErrorIs(t, <-errCh, context.Canceled)

	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	assert.LessOrEqual(t, runtime.NumGoroutine(), before,
		"stream goroutines must exit once the reader is gone")
}

func TestQuizGeneratedOncePerChapter(t *testing.T) {
	provider := &fakeProvider{
		generateFn: func(p string) (string, error) {
			if strings.Contains(p, "key terms") {
				return "variable\nequation\ncoefficient\nconstant", nil
			}
			return quizReply, nil
		},
	}
	fetcher := &fakeFetcher{segments: []transcript.Segment{{Text: "lesson", Start: 0, Duration: 1}}}
	svc, _, activity := newTestTutorService(provider, fetcher)

	first, err := svc.Quiz(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "What is a variable?", first.Question)
	assert.Equal(t, []string{"A fixed number", "A named unknown", "A shape", "A graph"}, first.Options)
	assert.Equal(t, 2, provider.generateCnt)

	second, err := svc.Quiz(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, provider.generateCnt, "repeat request must serve the cached quiz")

	var generated int
	for _, r := range activity.records {
		if r.eventType == "QUIZ_GENERATED" {
			generated++
		}
	}
	assert.Equal(t, 1, generated)
}

func TestQuizInvalidatedByChapterChange(t *testing.T) {
	provider := &fakeProvider{
		generateFn: func(p string) (string, error) {
			if strings.Contains(p, "key terms") {
				return "a\nb\nc\nd", nil
			}
			return quizReply, nil
		},
	}
	fetcher := &fakeFetcher{segments: []transcript.Segment{{Text: "lesson", Start: 0, Duration: 1}}}
	svc, _, _ := newTestTutorService(provider, fetcher)

	_, err := svc.Quiz(context.Background(), "alice")
	require.NoError(t, err)

	_, err = svc.SelectChapter(context.Background(), "alice", &dto.SelectChapterRequest{Chapter: "Geometry"})
	require.NoError(t, err)

	_, err = svc.Quiz(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 4, provider.generateCnt, "new chapter must regenerate the quiz")
}

func TestQuizTranscriptUnavailable(t *testing.T) {
	svc, sessions, _ := newTestTutorService(&fakeProvider{}, &fakeFetcher{err: transcript.ErrUnavailable})

	_, err := svc.Quiz(context.Background(), "alice")
	require.ErrorIs(t, err, transcript.ErrUnavailable)

	sess, found := sessions.Get("alice")
	require.True(t, found)
	assert.Nil(t, sess.Quiz)
}

func TestQuizMalformedReply(t *testing.T) {
	provider := &fakeProvider{
		generateFn: func(p string) (string, error) {
			return "Sure! Here is a question about algebra.", nil
		},
	}
	fetcher := &fakeFetcher{segments: []transcript.Segment{{Text: "lesson", Start: 0, Duration: 1}}}
	svc, _, _ := newTestTutorService(provider, fetcher)

	_, err := svc.Quiz(context.Background(), "alice")
	assert.ErrorIs(t, err, quiz.ErrParseFailure)
}

func TestSubmitQuiz(t *testing.T) {
	provider := &fakeProvider{
		generateFn: func(p string) (string, error) {
			if strings.Contains(p, "key terms") {
				return "a\nb\nc\nd", nil
			}
			return quizReply, nil
		},
	}
	fetcher := &fakeFetcher{segments: []transcript.Segment{{Text: "lesson", Start: 0, Duration: 1}}}
	svc, sessions, activity := newTestTutorService(provider, fetcher)

	// No quiz yet.
	_, err := svc.SubmitQuiz(context.Background(), "alice", &dto.QuizAnswerRequest{Answer: "B"})
	require.ErrorIs(t, err, ErrQuizNotReady)

	_, err = svc.Quiz(context.Background(), "alice")
	require.NoError(t, err)

	res, err := svc.SubmitQuiz(context.Background(), "alice", &dto.QuizAnswerRequest{Answer: "B"})
	require.NoError(t, err)
	assert.Equal(t, store.RoleAssistant, res.Acknowledgment.Role)
	assert.Contains(t, res.Acknowledgment.Content, "Algebra")

	sess, _ := sessions.Get("alice")
	assert.Equal(t, res.Acknowledgment.Content, sess.Conversation[len(sess.Conversation)-1].Content)
	assert.Equal(t, "QUIZ_SUBMITTED", activity.records[len(activity.records)-1].eventType)
}

func TestVideoResolvesCurrentChapter(t *testing.T) {
	svc, _, _ := newTestTutorService(&fakeProvider{}, &fakeFetcher{})

	res, err := svc.Video(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Mathematics", res.Subject)
	assert.Equal(t, "https://youtu.be/pTnEG_WGd2Q", res.VideoURL)
	assert.Equal(t, "pTnEG_WGd2Q", res.VideoID)
}

func TestTranscriptEndpointPropagatesUnavailable(t *testing.T) {
	svc, _, _ := newTestTutorService(&fakeProvider{}, &fakeFetcher{err: transcript.ErrUnavailable})

	_, err := svc.Transcript(context.Background(), "alice", -1)
	assert.ErrorIs(t, err, transcript.ErrUnavailable)
}

func TestTranscriptPlaybackPosition(t *testing.T) {
	fetcher := &fakeFetcher{segments: []transcript.Segment{
		{Text: "one", Start: 0, Duration: 2},
		{Text: "two", Start: 2, Duration: 3},
	}}
	svc, _, _ := newTestTutorService(&fakeProvider{}, fetcher)

	res, err := svc.Transcript(context.Background(), "alice", 2.5)
	require.NoError(t, err)
	assert.Equal(t, 1, res.CurrentSegment)
	assert.Equal(t, "one two", res.Text)

	res, err = svc.Transcript(context.Background(), "alice", -1)
	require.NoError(t, err)
	assert.Equal(t, -1, res.CurrentSegment)
}
