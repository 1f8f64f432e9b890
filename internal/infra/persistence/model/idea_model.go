package model

import (
	"time"

	"github.com/google/uuid"
)

// IdeaModel mirrors the 'ideas' table. UserID references users.id without a
// foreign key constraint.
type IdeaModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_ideas_user_id_created_at,priority:1"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Points      *float64
	Realised    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time `gorm:"index:idx_ideas_user_id_created_at,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (IdeaModel) TableName() string {
	return "ideas"
}
