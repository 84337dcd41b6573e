package implementation

import (
	"context"
	"time"

	"edusphere-be/internal/entity"
	"edusphere-be/internal/mapper"
	"edusphere-be/internal/model"
	"edusphere-be/internal/repository/contract"
	"edusphere-be/internal/repository/specification"
	"edusphere-be/pkg/events"

	"gorm.io/gorm"
)

type ActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ActivityMapper
}

func NewActivityRepository(db *gorm.DB) contract.ActivityRepository {
	return &ActivityRepositoryImpl{
		db:     db,
		mapper: mapper.NewActivityMapper(),
	}
}

func (r *ActivityRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *entity.StudyActivity) error {
	m := r.mapper.ToModel(activity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*activity = *r.mapper.ToEntity(m)
	return nil
}

func (r *ActivityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyActivity, error) {
	var models []*model.StudyActivity
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(models), nil
}

func (r *ActivityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.StudyActivity{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ActivityRepositoryImpl) ChapterCounts(ctx context.Context, username string) ([]*entity.ChapterProgress, error) {
	var rows []struct {
		Subject    string
		Chapter    string
		ChatTurns  int64
		QuizCount  int64
		LastActive time.Time
	}

	err := r.db.WithContext(ctx).Raw(`
		SELECT subject, chapter,
			COUNT(*) FILTER (WHERE event_type = ?) AS chat_turns,
			COUNT(*) FILTER (WHERE event_type = ?) AS quiz_count,
			MAX(created_at) AS last_active
		FROM study_activities
		WHERE username = ? AND subject <> ''
		GROUP BY subject, chapter
		ORDER BY MAX(created_at) DESC
	`, events.TypeChatTurn, events.TypeQuizSubmitted, username).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	progress := make([]*entity.ChapterProgress, 0, len(rows))
	for _, row := range rows {
		progress = append(progress, &entity.ChapterProgress{
			Subject:    row.Subject,
			Chapter:    row.Chapter,
			ChatTurns:  row.ChatTurns,
			QuizTaken:  row.QuizCount > 0,
			LastActive: row.LastActive,
		})
	}
	return progress, nil
}
