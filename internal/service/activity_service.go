package service

import (
	"context"
	"encoding/json"
	"time"

	"edusphere-be/internal/dto"
	"edusphere-be/internal/pkg/logger"
	"edusphere-be/internal/repository/specification"
	"edusphere-be/internal/repository/unitofwork"
)

const historyDefaultLimit = 20

// IActivityService records study activity asynchronously and serves the
// per-user progress summary and activity log built from it.
type IActivityService interface {
	Record(ctx context.Context, username, eventType, subject, chapter string, detail map[string]interface{})
	Progress(ctx context.Context, username string) (*dto.ProgressResponse, error)
	History(ctx context.Context, username string, req *dto.ActivityHistoryRequest) (*dto.ActivityHistoryResponse, error)
}

type activityService struct {
	publisherService IPublisherService
	uowFactory       unitofwork.RepositoryFactory
	log              logger.ILogger
}

func NewActivityService(publisherService IPublisherService, uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IActivityService {
	return &activityService{
		publisherService: publisherService,
		uowFactory:       uowFactory,
		log:              log,
	}
}

// Record publishes the activity to the in-process bus. Persistence happens in
// the consumer worker; a publish failure is logged and never blocks the
// request path.
func (s *activityService) Record(ctx context.Context, username, eventType, subject, chapter string, detail map[string]interface{}) {
	msg := dto.RecordActivityMessage{
		Username:   username,
		EventType:  eventType,
		Subject:    subject,
		Chapter:    chapter,
		Detail:     detail,
		OccurredAt: time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Warn("ActivityService", "Failed to marshal activity message", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.log.Warn("ActivityService", "Failed to publish activity message", map[string]interface{}{
			"error":      err.Error(),
			"event_type": eventType,
		})
	}
}

func (s *activityService) Progress(ctx context.Context, username string) (*dto.ProgressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	rows, err := uow.ActivityRepository().ChapterCounts(ctx, username)
	if err != nil {
		return nil, err
	}

	chapters := make([]dto.ChapterProgressDTO, 0, len(rows))
	for _, row := range rows {
		chapters = append(chapters, dto.ChapterProgressDTO{
			Subject:    row.Subject,
			Chapter:    row.Chapter,
			ChatTurns:  row.ChatTurns,
			QuizTaken:  row.QuizTaken,
			LastActive: row.LastActive,
		})
	}

	return &dto.ProgressResponse{
		Username: username,
		Chapters: chapters,
	}, nil
}

// History pages the user's activity log, newest first, optionally narrowed
// by subject and event type.
func (s *activityService) History(ctx context.Context, username string, req *dto.ActivityHistoryRequest) (*dto.ActivityHistoryResponse, error) {
	filters := []specification.Specification{specification.ByUsername{Username: username}}
	if req.Subject != "" {
		filters = append(filters, specification.BySubject{Subject: req.Subject})
	}
	if req.EventType != "" {
		filters = append(filters, specification.ByEventType{EventType: req.EventType})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ActivityRepository()

	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 || limit > 100 {
		limit = historyDefaultLimit
	}
	page := append(filters,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: limit, Offset: req.Offset},
	)
	rows, err := repo.FindAll(ctx, page...)
	if err != nil {
		return nil, err
	}

	events := make([]dto.StudyEventDTO, 0, len(rows))
	for _, row := range rows {
		events = append(events, dto.StudyEventDTO{
			EventType:  row.EventType,
			Subject:    row.Subject,
			Chapter:    row.Chapter,
			Detail:     row.Detail,
			OccurredAt: row.CreatedAt,
		})
	}

	return &dto.ActivityHistoryResponse{
		Username: username,
		Total:    total,
		Events:   events,
	}, nil
}
