package models

import "time"

// Student is the enrollment record the payment ledger hangs off.
type Student struct {
	ID            string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentCode   string      `json:"student_code" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName     string      `json:"first_name" gorm:"not null" validate:"required"`
	LastName      string      `json:"last_name" gorm:"not null" validate:"required"`
	Gender        Gender      `json:"gender,omitempty" gorm:"type:varchar(10)" validate:"omitempty,oneof=male female other"`
	DateOfBirth   *CustomTime `json:"date_of_birth,omitempty"`
	ClassID       Ref[Class]  `json:"class_id" validate:"required"`
	ParentName    string      `json:"parent_name,omitempty"`
	ParentPhone   string      `json:"parent_phone,omitempty" gorm:"type:varchar(20)"`
	UsesUniform   bool        `json:"uses_uniform" gorm:"default:false"`
	UsesTransport bool        `json:"uses_transport" gorm:"default:false"`
	IsActive      bool        `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time  `json:"deleted_at,omitempty" gorm:"index"`
}

// FullName returns the display name used by exports and the dashboard.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
