package service

import (
	"context"
	"errors"
	"fmt"

	"edusphere-be/internal/dto"
	"edusphere-be/internal/pkg/logger"
	"edusphere-be/internal/repository/memory"
	"edusphere-be/pkg/catalog"
	"edusphere-be/pkg/events"
	"edusphere-be/pkg/llm"
	"edusphere-be/pkg/store"
	"edusphere-be/pkg/transcript"
	"edusphere-be/pkg/tutor/prompt"
	"edusphere-be/pkg/tutor/quiz"
)

// HistoryWindow is how many trailing conversation messages are replayed to
// the model on each chat turn, besides the system context.
const HistoryWindow = 5

type ITutorService interface {
	GetSession(ctx context.Context, username string) (*dto.SessionResponse, error)
	SelectSubject(ctx context.Context, username string, req *dto.SelectSubjectRequest) (*dto.SessionResponse, error)
	SelectChapter(ctx context.Context, username string, req *dto.SelectChapterRequest) (*dto.SessionResponse, error)
	Chat(ctx context.Context, username string, req *dto.ChatRequest) (*dto.ChatResponse, error)
	ChatStream(ctx context.Context, username string, req *dto.ChatRequest) (<-chan string, <-chan error)
	Video(ctx context.Context, username string) (*dto.VideoResponse, error)
	Transcript(ctx context.Context, username string, playbackTime float64) (*dto.TranscriptResponse, error)
	Quiz(ctx context.Context, username string) (*dto.QuizResponse, error)
	SubmitQuiz(ctx context.Context, username string, req *dto.QuizAnswerRequest) (*dto.QuizAnswerResponse, error)
}

type tutorService struct {
	sessions        *memory.SessionRepository
	llmProvider     llm.LLMProvider
	fetcher         transcript.Fetcher
	quizGenerator   *quiz.Generator
	activityService IActivityService
	temperature     float64
	log             logger.ILogger
}

func NewTutorService(
	sessions *memory.SessionRepository,
	llmProvider llm.LLMProvider,
	fetcher transcript.Fetcher,
	quizGenerator *quiz.Generator,
	activityService IActivityService,
	temperature float64,
	log logger.ILogger,
) ITutorService {
	return &tutorService{
		sessions:        sessions,
		llmProvider:     llmProvider,
		fetcher:         fetcher,
		quizGenerator:   quizGenerator,
		activityService: activityService,
		temperature:     temperature,
		log:             log,
	}
}

// session returns the caller's tutor session, creating one if the in-memory
// store lost it (server restart with a still-valid token). A session without
// a subject is pointed at the catalog default so the first render has
// content.
func (s *tutorService) session(username string) *store.TutorSession {
	sess, found := s.sessions.Get(username)
	if !found {
		sess = &store.TutorSession{
			Username:     username,
			Conversation: []store.Message{},
		}
	}
	if sess.Subject == "" {
		s.applySubject(sess, catalog.DefaultSubject())
	}
	return sess
}

// applySubject points the session at a subject's first chapter and resets the
// conversation around it.
func (s *tutorService) applySubject(sess *store.TutorSession, subject catalog.Subject) {
	sess.Subject = subject.Name
	s.applyChapter(sess, subject.Chapters[0].Title)
}

// applyChapter switches the chapter, clears the conversation and drops any
// quiz generated for the previous chapter.
func (s *tutorService) applyChapter(sess *store.TutorSession, chapterTitle string) {
	sess.Chapter = chapterTitle
	sess.Conversation = []store.Message{
		{Role: store.RoleAssistant, Content: prompt.Greeting(sess.Subject, chapterTitle)},
	}
	sess.Quiz = nil
	s.sessions.Save(sess)
}

func (s *tutorService) GetSession(ctx context.Context, username string) (*dto.SessionResponse, error) {
	sess := s.session(username)
	return sessionToDTO(sess), nil
}

func (s *tutorService) SelectSubject(ctx context.Context, username string, req *dto.SelectSubjectRequest) (*dto.SessionResponse, error) {
	subject, err := catalog.Get(req.Subject)
	if err != nil {
		return nil, err
	}

	sess := s.session(username)
	s.applySubject(sess, subject)

	s.activityService.Record(ctx, username, events.TypeChapterSelected, sess.Subject, sess.Chapter, nil)

	return sessionToDTO(sess), nil
}

func (s *tutorService) SelectChapter(ctx context.Context, username string, req *dto.SelectChapterRequest) (*dto.SessionResponse, error) {
	sess := s.session(username)

	if _, err := catalog.ChapterIndex(sess.Subject, req.Chapter); err != nil {
		return nil, err
	}

	// Re-selecting the current chapter keeps the conversation.
	if sess.Chapter != req.Chapter {
		s.applyChapter(sess, req.Chapter)
		s.activityService.Record(ctx, username, events.TypeChapterSelected, sess.Subject, sess.Chapter, nil)
	}

	return sessionToDTO(sess), nil
}

func (s *tutorService) Chat(ctx context.Context, username string, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	sess := s.session(username)

	history := s.buildPrompt(ctx, sess, req.Message)

	reply, err := s.llmProvider.Chat(ctx, history, llm.WithTemperature(s.temperature))
	if err != nil {
		// The user's message stays in the conversation so a retry carries it
		// as history.
		sess.Conversation = append(sess.Conversation, store.Message{Role: store.RoleUser, Content: req.Message})
		s.sessions.Save(sess)

		s.log.Error("TutorService", "Completion request failed", map[string]interface{}{
			"error":   err.Error(),
			"subject": sess.Subject,
			"chapter": sess.Chapter,
		})
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	sess.Conversation = append(sess.Conversation,
		store.Message{Role: store.RoleUser, Content: req.Message},
		store.Message{Role: store.RoleAssistant, Content: reply},
	)
	s.sessions.Save(sess)

	s.activityService.Record(ctx, username, events.TypeChatTurn, sess.Subject, sess.Chapter, map[string]interface{}{
		"message_length": len(req.Message),
	})

	return &dto.ChatResponse{
		Reply: dto.MessageDTO{Role: store.RoleAssistant, Content: reply},
	}, nil
}

func (s *tutorService) ChatStream(ctx context.Context, username string, req *dto.ChatRequest) (<-chan string, <-chan error) {
	out := make(chan string)
	errCh := make(chan error, 1)

	sess := s.session(username)
	history := s.buildPrompt(ctx, sess, req.Message)

	fragments, streamErr := s.llmProvider.ChatStream(ctx, history, llm.WithTemperature(s.temperature))

	go func() {
		defer close(out)
		defer close(errCh)

		var full string
		for fragment := range fragments {
			full += fragment
			select {
			case out <- fragment:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}

		if err := <-streamErr; err != nil {
			sess.Conversation = append(sess.Conversation, store.Message{Role: store.RoleUser, Content: req.Message})
			s.sessions.Save(sess)
			errCh <- fmt.Errorf("%w: %v", ErrRequestFailed, err)
			return
		}

		sess.Conversation = append(sess.Conversation,
			store.Message{Role: store.RoleUser, Content: req.Message},
			store.Message{Role: store.RoleAssistant, Content: full},
		)
		s.sessions.Save(sess)

		s.activityService.Record(ctx, username, events.TypeChatTurn, sess.Subject, sess.Chapter, map[string]interface{}{
			"message_length": len(req.Message),
			"streamed":       true,
		})
	}()

	return out, errCh
}

// buildPrompt assembles [system context] + trailing history + the new user
// message. A missing transcript degrades to a context without the transcript
// section.
func (s *tutorService) buildPrompt(ctx context.Context, sess *store.TutorSession, userMessage string) []llm.Message {
	chapter := s.currentChapter(sess)

	transcriptText := ""
	if segments, err := s.fetchSegments(ctx, sess); err == nil {
		transcriptText = transcript.JoinText(segments)
	}

	systemContext := prompt.NewContextBuilder(sess.Subject, chapter, transcriptText).Build()

	history := make([]llm.Message, 0, HistoryWindow+2)
	history = append(history, llm.Message{Role: store.RoleSystem, Content: systemContext})

	tail := sess.Conversation
	if len(tail) > HistoryWindow {
		tail = tail[len(tail)-HistoryWindow:]
	}
	for _, m := range tail {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}

	history = append(history, llm.Message{Role: store.RoleUser, Content: userMessage})
	return history
}

func (s *tutorService) currentChapter(sess *store.TutorSession) catalog.Chapter {
	chapters, err := catalog.ChaptersFor(sess.Subject)
	if err != nil {
		return catalog.Chapter{Title: sess.Chapter}
	}
	for _, c := range chapters {
		if c.Title == sess.Chapter {
			return c
		}
	}
	return catalog.Chapter{Title: sess.Chapter}
}

func (s *tutorService) fetchSegments(ctx context.Context, sess *store.TutorSession) ([]transcript.Segment, error) {
	index, err := catalog.ChapterIndex(sess.Subject, sess.Chapter)
	if err != nil {
		return nil, err
	}
	videoRef, err := catalog.VideoRef(sess.Subject, index)
	if err != nil {
		return nil, err
	}
	return s.fetcher.Fetch(ctx, videoRef)
}

func (s *tutorService) Video(ctx context.Context, username string) (*dto.VideoResponse, error) {
	sess := s.session(username)

	index, err := catalog.ChapterIndex(sess.Subject, sess.Chapter)
	if err != nil {
		return nil, err
	}
	videoRef, err := catalog.VideoRef(sess.Subject, index)
	if err != nil {
		return nil, err
	}

	videoID, err := transcript.ExtractVideoID(videoRef)
	if err != nil {
		return nil, err
	}

	return &dto.VideoResponse{
		Subject:  sess.Subject,
		Chapter:  sess.Chapter,
		VideoURL: videoRef,
		VideoID:  videoID,
	}, nil
}

func (s *tutorService) Transcript(ctx context.Context, username string, playbackTime float64) (*dto.TranscriptResponse, error) {
	sess := s.session(username)

	segments, err := s.fetchSegments(ctx, sess)
	if err != nil {
		return nil, err
	}

	segmentDTOs := make([]dto.TranscriptSegmentDTO, 0, len(segments))
	for _, seg := range segments {
		segmentDTOs = append(segmentDTOs, dto.TranscriptSegmentDTO{
			Text:     seg.Text,
			Start:    seg.Start,
			Duration: seg.Duration,
		})
	}

	current := -1
	if playbackTime >= 0 {
		current = transcript.SegmentAt(segments, playbackTime)
	}

	return &dto.TranscriptResponse{
		Segments:       segmentDTOs,
		Text:           transcript.JoinText(segments),
		CurrentSegment: current,
	}, nil
}

func (s *tutorService) Quiz(ctx context.Context, username string) (*dto.QuizResponse, error) {
	sess := s.session(username)

	// One quiz per chapter: a repeat request serves the cached quiz instead
	// of burning another pair of completions.
	if sess.Quiz != nil && sess.Quiz.Chapter == sess.Chapter {
		return quizToDTO(sess.Quiz), nil
	}

	segments, err := s.fetchSegments(ctx, sess)
	if err != nil {
		return nil, err
	}
	transcriptText := transcript.JoinText(segments)
	if transcriptText == "" {
		return nil, transcript.ErrUnavailable
	}

	generated, err := s.quizGenerator.Generate(ctx, sess.Subject, sess.Chapter, transcriptText)
	if err != nil {
		if errors.Is(err, quiz.ErrParseFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	sess.Quiz = generated
	s.sessions.Save(sess)

	s.activityService.Record(ctx, username, events.TypeQuizGenerated, sess.Subject, sess.Chapter, nil)

	return quizToDTO(generated), nil
}

func (s *tutorService) SubmitQuiz(ctx context.Context, username string, req *dto.QuizAnswerRequest) (*dto.QuizAnswerResponse, error) {
	sess := s.session(username)

	if sess.Quiz == nil || sess.Quiz.Chapter != sess.Chapter {
		return nil, ErrQuizNotReady
	}

	// Answers are not graded. The submission is acknowledged in the
	// conversation and recorded as participation.
	ack := store.Message{
		Role:    store.RoleAssistant,
		Content: prompt.QuizAcknowledgment(sess.Chapter),
	}
	sess.Conversation = append(sess.Conversation, ack)
	s.sessions.Save(sess)

	s.activityService.Record(ctx, username, events.TypeQuizSubmitted, sess.Subject, sess.Chapter, map[string]interface{}{
		"answer": req.Answer,
	})

	return &dto.QuizAnswerResponse{
		Acknowledgment: dto.MessageDTO{Role: ack.Role, Content: ack.Content},
	}, nil
}

func sessionToDTO(sess *store.TutorSession) *dto.SessionResponse {
	conversation := make([]dto.MessageDTO, 0, len(sess.Conversation))
	for _, m := range sess.Conversation {
		conversation = append(conversation, dto.MessageDTO{Role: m.Role, Content: m.Content})
	}
	return &dto.SessionResponse{
		Subject:      sess.Subject,
		Chapter:      sess.Chapter,
		Conversation: conversation,
		QuizReady:    sess.Quiz != nil && sess.Quiz.Chapter == sess.Chapter,
	}
}

func quizToDTO(q *store.Quiz) *dto.QuizResponse {
	return &dto.QuizResponse{
		Chapter:  q.Chapter,
		Question: q.Question,
		Options:  q.Options,
		KeyTerms: q.KeyTerms,
	}
}
