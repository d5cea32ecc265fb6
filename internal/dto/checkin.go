package dto

import "time"

// 客户端定位失败码（定位在客户端完成，失败时只上报失败码）
const (
	LocationFailureDenied  = "denied"
	LocationFailureTimeout = "timeout"
)

// 教练签到状态机状态
const (
	ProfessorStateNoClass          = "no_class"
	ProfessorStateAlreadyCheckedIn = "already_checked_in"
	ProfessorStateIdle             = "idle"
)

// ProfessorStatusResponse 教练签到状态查询响应
// State 为 idle 时 Class 携带可签到的课程；其余状态 Class 可能为空
type ProfessorStatusResponse struct {
	State          string         `json:"state"`
	Class          *ClassInWindow `json:"class,omitempty"`
	RefreshSeconds int            `json:"refresh_seconds"`
}

// ClassInWindow 当前签到窗口内的课程
type ClassInWindow struct {
	ScheduleEntryID string `json:"schedule_entry_id"`
	ClassName       string `json:"class_name"`
	DayOfWeek       string `json:"day_of_week"`
	StartTime       string `json:"start_time"`
	Personal        bool   `json:"personal"` // 是否来自教练个人课表
}

// ProfessorConfirmRequest 教练签到确认请求
// 坐标与失败码二选一：定位成功上报坐标，失败上报 LocationFailure
type ProfessorConfirmRequest struct {
	Latitude        *float64 `json:"latitude"         binding:"omitempty,min=-90,max=90"`
	Longitude       *float64 `json:"longitude"        binding:"omitempty,min=-180,max=180"`
	LocationFailure string   `json:"location_failure" binding:"omitempty,oneof=denied timeout"`
}

// ProfessorConfirmResponse 教练签到确认响应
type ProfessorConfirmResponse struct {
	Status    string    `json:"status"` // ON_TIME | LATE
	ClassName string    `json:"class_name"`
	CheckinAt time.Time `json:"checkin_at"`
	DistanceM float64   `json:"distance_m"`
}

// StudentCheckinRequest 门禁一体机学员签到请求
type StudentCheckinRequest struct {
	StudentID       string `json:"student_id"        binding:"required,uuid"`
	ScheduleEntryID string `json:"schedule_entry_id" binding:"required,uuid"`
}

// StudentCheckinResponse 学员签到响应
type StudentCheckinResponse struct {
	AttendanceID     string    `json:"attendance_id"`
	StudentName      string    `json:"student_name"`
	ClassName        string    `json:"class_name"`
	ClassesRemaining int       `json:"classes_remaining"`
	CheckinAt        time.Time `json:"checkin_at"`
}

// KioskConfigResponse 门禁一体机运行参数（客户端启动时拉取）
type KioskConfigResponse struct {
	GeofenceRadiusM        float64  `json:"geofence_radius_m"`
	GraceMinutes           int      `json:"grace_minutes"`
	ClassDurationMinutes   int      `json:"class_duration_minutes"`
	KioskWindowMinutes     int      `json:"kiosk_window_minutes"`
	LateAfterMinutes       int      `json:"late_after_minutes"`
	StatusRefreshSeconds   int      `json:"status_refresh_seconds"`
	LocationTimeoutSeconds int      `json:"location_timeout_seconds"`
	ClassNames             []string `json:"class_names"`
}

// [自证通过] internal/dto/checkin.go
