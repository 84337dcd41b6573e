package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StudyActivity struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Username  string         `gorm:"type:varchar(255);not null;index"`
	EventType string         `gorm:"type:varchar(50);not null;index"`
	Subject   string         `gorm:"type:varchar(100)"`
	Chapter   string         `gorm:"type:varchar(255)"`
	Detail    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
}

func (StudyActivity) TableName() string {
	return "study_activities"
}
