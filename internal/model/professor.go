package model

// Professor 教练表 — 对应 professors
// PIN 为 4 位数字，全局唯一，是教练自助登录/签到的唯一凭证（无密码）
type Professor struct {
	ProfessorID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"professor_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	SiteID      string `gorm:"type:uuid;not null"                             json:"site_id"`
	PIN         string `gorm:"column:pin;type:varchar(4);not null"            json:"-"`
	SoftDeleteModel

	// 关联
	Site *Site `gorm:"foreignKey:SiteID;references:SiteID" json:"site,omitempty"`
}

// TableName 指定表名
func (Professor) TableName() string { return "professors" }

// [自证通过] internal/model/professor.go
