package contract

import (
	"context"

	"edusphere-be/internal/entity"
	"edusphere-be/internal/repository/specification"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.StudyActivity) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.StudyActivity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	ChapterCounts(ctx context.Context, username string) ([]*entity.ChapterProgress, error)
}
