package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"fitgate/backend/internal/model"
	"fitgate/backend/internal/repository"
	apperrors "fitgate/backend/pkg/errors"
)

// 内存版 Repository 实现，测试专用

// ── AdminUser ──

type mockAdminUserRepo struct {
	admins map[string]*model.AdminUser
}

func newMockAdminUserRepo() *mockAdminUserRepo {
	return &mockAdminUserRepo{admins: make(map[string]*model.AdminUser)}
}

func (m *mockAdminUserRepo) Create(_ context.Context, admin *model.AdminUser) error {
	if admin.AdminID == "" {
		admin.AdminID = fmt.Sprintf("admin-%d", len(m.admins)+1)
	}
	cp := *admin
	m.admins[admin.AdminID] = &cp
	return nil
}

func (m *mockAdminUserRepo) GetByID(_ context.Context, id string) (*model.AdminUser, error) {
	if a, ok := m.admins[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAdminUserRepo) GetByEmail(_ context.Context, email string) (*model.AdminUser, error) {
	for _, a := range m.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

// ── Student ──

type mockStudentRepo struct {
	students map[string]*model.Student
	seq      int
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[string]*model.Student)}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.StudentID == "" {
		m.seq++
		student.StudentID = fmt.Sprintf("stu-%d", m.seq)
	}
	if student.Version == 0 {
		student.Version = 1
	}
	cp := *student
	m.students[student.StudentID] = &cp
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id string) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(_ context.Context, siteID, keyword string, offset, limit int) ([]model.Student, int64, error) {
	var out []model.Student
	for _, s := range m.students {
		if siteID != "" && s.SiteID != siteID {
			continue
		}
		if keyword != "" && !strings.Contains(strings.ToLower(s.Name), strings.ToLower(keyword)) {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (m *mockStudentRepo) ListAll(_ context.Context, siteID string) ([]model.Student, error) {
	var out []model.Student
	for _, s := range m.students {
		if siteID != "" && s.SiteID != siteID {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	cur, ok := m.students[student.StudentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if cur.Version != student.Version {
		return apperrors.ErrOptimisticLock
	}
	student.Version++
	cp := *student
	m.students[student.StudentID] = &cp
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) Renew(_ context.Context, id string, planID string, credits int, expiresAt time.Time, _ string) error {
	s, ok := m.students[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.PlanID = &planID
	s.ClassesRemaining = credits
	s.MembershipExpiresAt = &expiresAt
	s.Version++
	return nil
}

// ── Professor ──

type mockProfessorRepo struct {
	professors map[string]*model.Professor
	seq        int
}

func newMockProfessorRepo() *mockProfessorRepo {
	return &mockProfessorRepo{professors: make(map[string]*model.Professor)}
}

func (m *mockProfessorRepo) Create(_ context.Context, professor *model.Professor) error {
	if professor.ProfessorID == "" {
		m.seq++
		professor.ProfessorID = fmt.Sprintf("prof-%d", m.seq)
	}
	cp := *professor
	m.professors[professor.ProfessorID] = &cp
	return nil
}

func (m *mockProfessorRepo) GetByID(_ context.Context, id string) (*model.Professor, error) {
	if p, ok := m.professors[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessorRepo) GetByPIN(_ context.Context, pin string) (*model.Professor, error) {
	for _, p := range m.professors {
		if p.PIN == pin {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfessorRepo) PINInUse(_ context.Context, pin, excludeID string) (bool, error) {
	for _, p := range m.professors {
		if p.PIN == pin && p.ProfessorID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockProfessorRepo) List(_ context.Context, siteID string) ([]model.Professor, error) {
	var out []model.Professor
	for _, p := range m.professors {
		if siteID != "" && p.SiteID != siteID {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProfessorRepo) Update(_ context.Context, professor *model.Professor) error {
	if _, ok := m.professors[professor.ProfessorID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *professor
	m.professors[professor.ProfessorID] = &cp
	return nil
}

func (m *mockProfessorRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.professors, id)
	return nil
}

// ── ScheduleEntry ──

type mockScheduleRepo struct {
	entries map[string]*model.ScheduleEntry
	seq     int
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{entries: make(map[string]*model.ScheduleEntry)}
}

func (m *mockScheduleRepo) Create(_ context.Context, entry *model.ScheduleEntry) error {
	if entry.ScheduleEntryID == "" {
		m.seq++
		entry.ScheduleEntryID = fmt.Sprintf("sched-%d", m.seq)
	}
	cp := *entry
	m.entries[entry.ScheduleEntryID] = &cp
	return nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.ScheduleEntry, error) {
	if e, ok := m.entries[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) ListForProfessorDay(_ context.Context, siteID, professorID, day string) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range m.entries {
		if e.DayOfWeek != day {
			continue
		}
		personal := e.ProfessorID != nil && *e.ProfessorID == professorID
		siteWide := e.ProfessorID == nil && e.SiteID == siteID
		if personal || siteWide {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockScheduleRepo) ListSiteWideByDay(_ context.Context, siteID, day string) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range m.entries {
		if e.SiteID == siteID && e.DayOfWeek == day && e.ProfessorID == nil {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockScheduleRepo) ListBySite(_ context.Context, siteID string) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range m.entries {
		if e.SiteID == siteID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockScheduleRepo) ListByProfessor(_ context.Context, professorID string) ([]model.ScheduleEntry, error) {
	var out []model.ScheduleEntry
	for _, e := range m.entries {
		if e.ProfessorID != nil && *e.ProfessorID == professorID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *mockScheduleRepo) Update(_ context.Context, entry *model.ScheduleEntry) error {
	if _, ok := m.entries[entry.ScheduleEntryID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *entry
	m.entries[entry.ScheduleEntryID] = &cp
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string, _ string) error {
	delete(m.entries, id)
	return nil
}

func (m *mockScheduleRepo) DeleteByProfessor(_ context.Context, professorID string, _ string) error {
	for id, e := range m.entries {
		if e.ProfessorID != nil && *e.ProfessorID == professorID {
			delete(m.entries, id)
		}
	}
	return nil
}

// ── Attendance ──

// mockAttendanceRepo 模拟「条件扣减 + 写记录」事务，扣减条件与真实实现一致
type mockAttendanceRepo struct {
	students *mockStudentRepo
	records  []model.AttendanceRecord
	seq      int
}

func newMockAttendanceRepo(students *mockStudentRepo) *mockAttendanceRepo {
	return &mockAttendanceRepo{students: students}
}

func (m *mockAttendanceRepo) Checkin(_ context.Context, rec *model.AttendanceRecord, now time.Time) (bool, error) {
	s, ok := m.students.students[rec.StudentID]
	if !ok {
		return false, nil
	}
	if s.ClassesRemaining <= 0 {
		return false, nil
	}
	if s.MembershipExpiresAt != nil && !s.MembershipExpiresAt.After(now) {
		return false, nil
	}
	s.ClassesRemaining--
	s.Version++
	m.seq++
	rec.AttendanceID = fmt.Sprintf("att-%d", m.seq)
	m.records = append(m.records, *rec)
	return true, nil
}

func (m *mockAttendanceRepo) ListByStudent(_ context.Context, studentID string, _, _ int) ([]model.AttendanceRecord, int64, error) {
	var out []model.AttendanceRecord
	for _, r := range m.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockAttendanceRepo) ListBySiteRange(_ context.Context, siteID string, from, to time.Time) ([]model.AttendanceRecord, error) {
	var out []model.AttendanceRecord
	for _, r := range m.records {
		if siteID != "" && r.SiteID != siteID {
			continue
		}
		if r.CheckinAt.Before(from) || !r.CheckinAt.Before(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockAttendanceRepo) CountBySiteRange(ctx context.Context, siteID string, from, to time.Time) (int64, error) {
	records, err := m.ListBySiteRange(ctx, siteID, from, to)
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}

// ── ProfessorAttendance ──

// mockProfessorAttendanceRepo 用 map 键模拟唯一索引上的幂等插入
type mockProfessorAttendanceRepo struct {
	records []model.ProfessorAttendance
	keys    map[string]bool
	seq     int
}

func newMockProfessorAttendanceRepo() *mockProfessorAttendanceRepo {
	return &mockProfessorAttendanceRepo{keys: make(map[string]bool)}
}

func checkinKey(professorID, className string, classDate time.Time) string {
	return professorID + "|" + className + "|" + classDate.Format("2006-01-02")
}

func (m *mockProfessorAttendanceRepo) CreateIfAbsent(_ context.Context, rec *model.ProfessorAttendance) (bool, error) {
	key := checkinKey(rec.ProfessorID, rec.ClassName, rec.ClassDate)
	if m.keys[key] {
		return false, nil
	}
	m.keys[key] = true
	m.seq++
	rec.ProfessorAttendanceID = fmt.Sprintf("patt-%d", m.seq)
	m.records = append(m.records, *rec)
	return true, nil
}

func (m *mockProfessorAttendanceRepo) Exists(_ context.Context, professorID, className string, classDate time.Time) (bool, error) {
	return m.keys[checkinKey(professorID, className, classDate)], nil
}

func (m *mockProfessorAttendanceRepo) ListBySiteRange(_ context.Context, siteID string, from, to time.Time) ([]model.ProfessorAttendance, error) {
	var out []model.ProfessorAttendance
	for _, r := range m.records {
		if siteID != "" && r.SiteID != siteID {
			continue
		}
		if r.CheckinAt.Before(from) || !r.CheckinAt.Before(to) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockProfessorAttendanceRepo) ListByProfessor(_ context.Context, professorID string, limit int) ([]model.ProfessorAttendance, error) {
	var out []model.ProfessorAttendance
	for _, r := range m.records {
		if r.ProfessorID == professorID {
			out = append(out, r)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ── Payment ──

type mockPaymentRepo struct {
	payments []model.Payment
	seq      int
}

func newMockPaymentRepo() *mockPaymentRepo { return &mockPaymentRepo{} }

func (m *mockPaymentRepo) Create(_ context.Context, payment *model.Payment) error {
	m.seq++
	payment.PaymentID = fmt.Sprintf("pay-%d", m.seq)
	m.payments = append(m.payments, *payment)
	return nil
}

func (m *mockPaymentRepo) ListByStudent(_ context.Context, studentID string, _, _ int) ([]model.Payment, int64, error) {
	var out []model.Payment
	for _, p := range m.payments {
		if p.StudentID == studentID {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (m *mockPaymentRepo) ListRange(_ context.Context, from, to time.Time) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range m.payments {
		if p.PaidAt.Before(from) || !p.PaidAt.Before(to) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPaymentRepo) SumRange(ctx context.Context, from, to time.Time) (float64, error) {
	payments, err := m.ListRange(ctx, from, to)
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}
	return sum, nil
}

// ── Announcement ──

type mockAnnouncementRepo struct {
	announcements []model.Announcement
	seq           int
}

func newMockAnnouncementRepo() *mockAnnouncementRepo { return &mockAnnouncementRepo{} }

func (m *mockAnnouncementRepo) Create(_ context.Context, announcement *model.Announcement) error {
	m.seq++
	announcement.AnnouncementID = fmt.Sprintf("ann-%d", m.seq)
	m.announcements = append(m.announcements, *announcement)
	return nil
}

func (m *mockAnnouncementRepo) List(_ context.Context, _, _ int) ([]model.Announcement, int64, error) {
	return m.announcements, int64(len(m.announcements)), nil
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, id string, _ string) error {
	for i, a := range m.announcements {
		if a.AnnouncementID == id {
			m.announcements = append(m.announcements[:i], m.announcements[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// ── Site ──

type mockSiteRepo struct {
	sites map[string]*model.Site
}

func newMockSiteRepo() *mockSiteRepo {
	return &mockSiteRepo{sites: make(map[string]*model.Site)}
}

func (m *mockSiteRepo) add(site *model.Site) {
	cp := *site
	m.sites[site.SiteID] = &cp
}

func (m *mockSiteRepo) GetByID(_ context.Context, id string) (*model.Site, error) {
	if s, ok := m.sites[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSiteRepo) List(_ context.Context, activeOnly bool) ([]model.Site, error) {
	var out []model.Site
	for _, s := range m.sites {
		if activeOnly && !s.IsActive {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

// ── Plan ──

type mockPlanRepo struct {
	plans map[string]*model.Plan
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{plans: make(map[string]*model.Plan)}
}

func (m *mockPlanRepo) add(plan *model.Plan) {
	cp := *plan
	m.plans[plan.PlanID] = &cp
}

func (m *mockPlanRepo) GetByID(_ context.Context, id string) (*model.Plan, error) {
	if p, ok := m.plans[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPlanRepo) GetByName(_ context.Context, name string) (*model.Plan, error) {
	for _, p := range m.plans {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPlanRepo) List(_ context.Context, activeOnly bool) ([]model.Plan, error) {
	var out []model.Plan
	for _, p := range m.plans {
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

// ── 聚合 ──

type mockRepos struct {
	adminUsers          *mockAdminUserRepo
	students            *mockStudentRepo
	professors          *mockProfessorRepo
	schedules           *mockScheduleRepo
	attendance          *mockAttendanceRepo
	professorAttendance *mockProfessorAttendanceRepo
	payments            *mockPaymentRepo
	announcements       *mockAnnouncementRepo
	sites               *mockSiteRepo
	plans               *mockPlanRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	m := &mockRepos{
		adminUsers:          newMockAdminUserRepo(),
		students:            newMockStudentRepo(),
		professors:          newMockProfessorRepo(),
		schedules:           newMockScheduleRepo(),
		professorAttendance: newMockProfessorAttendanceRepo(),
		payments:            newMockPaymentRepo(),
		announcements:       newMockAnnouncementRepo(),
		sites:               newMockSiteRepo(),
		plans:               newMockPlanRepo(),
	}
	m.attendance = newMockAttendanceRepo(m.students)

	repo := &repository.Repository{
		AdminUser:           m.adminUsers,
		Student:             m.students,
		Professor:           m.professors,
		Schedule:            m.schedules,
		Attendance:          m.attendance,
		ProfessorAttendance: m.professorAttendance,
		Payment:             m.payments,
		Announcement:        m.announcements,
		Site:                m.sites,
		Plan:                m.plans,
	}
	return repo, m
}

// [自证通过] internal/service/mock_repos_test.go
