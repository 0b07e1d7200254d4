package models

import "time"

type Class struct {
	ID           string        `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string        `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Level        string        `json:"level" gorm:"not null" validate:"required"`
	Group        ClassGroup    `json:"group" gorm:"not null;type:varchar(20)" validate:"required,oneof=ecole college lycee"`
	Category     GradeCategory `json:"category" gorm:"not null;type:varchar(20)" validate:"required,oneof=maternelle primaire secondaire"`
	TeacherID    *string       `json:"teacher_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive     bool          `json:"is_active" gorm:"default:true"`
	StudentCount int           `json:"student_count" gorm:"-"`
	CreatedAt    time.Time     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time     `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time    `json:"deleted_at,omitempty" gorm:"index"`
	Teacher      *User         `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
	Students     []*Student    `json:"students,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
