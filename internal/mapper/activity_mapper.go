package mapper

import (
	"encoding/json"

	"edusphere-be/internal/entity"
	"edusphere-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.StudyActivity) *entity.StudyActivity {
	if a == nil {
		return nil
	}
	var detail map[string]interface{}
	if len(a.Detail) > 0 {
		_ = json.Unmarshal(a.Detail, &detail)
	}
	return &entity.StudyActivity{
		Id:        a.Id,
		Username:  a.Username,
		EventType: a.EventType,
		Subject:   a.Subject,
		Chapter:   a.Chapter,
		Detail:    detail,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.StudyActivity) *model.StudyActivity {
	if a == nil {
		return nil
	}
	var detail datatypes.JSON
	if a.Detail != nil {
		if raw, err := json.Marshal(a.Detail); err == nil {
			detail = raw
		}
	}
	return &model.StudyActivity{
		Id:        a.Id,
		Username:  a.Username,
		EventType: a.EventType,
		Subject:   a.Subject,
		Chapter:   a.Chapter,
		Detail:    detail,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityMapper) ToEntities(activities []*model.StudyActivity) []*entity.StudyActivity {
	entities := make([]*entity.StudyActivity, len(activities))
	for i, a := range activities {
		entities[i] = m.ToEntity(a)
	}
	return entities
}
