package services

import (
	"context"
	"log/slog"
	"math"
	"regexp"
	"strconv"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
	"github.com/magabrotheeeer/gym-manager/internal/models"
)

// monthPattern — допустимый формат месяца отчёта.
var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ReportRepository определяет агрегирующие методы хранилища для отчётов.
type ReportRepository interface {
	// DashboardStats возвращает сводку стартового экрана.
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	// MonthlyTotals возвращает сырые агрегаты за месяц YYYY-MM.
	MonthlyTotals(ctx context.Context, month string) (*models.MonthlyTotals, error)
}

// ReportService вычисляет сводку и месячные отчёты по сохранённым фактам.
type ReportService struct {
	repo ReportRepository
	log  *slog.Logger
}

// NewReportService создает новый экземпляр ReportService.
func NewReportService(repo ReportRepository, log *slog.Logger) *ReportService {
	return &ReportService{
		repo: repo,
		log:  log,
	}
}

// Dashboard возвращает сводку стартового экрана.
func (s *ReportService) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	return s.repo.DashboardStats(ctx)
}

// Monthly строит отчёт за месяц вида YYYY-MM: сумму платежей с округлением
// до двух знаков, количество отметок, уникальных участников и среднее
// посещений на участника с одним знаком после запятой. При нуле участников
// среднее равно "0.0" — деление на ноль исключено политикой.
func (s *ReportService) Monthly(ctx context.Context, month string) (*models.MonthlyReport, error) {
	if !monthPattern.MatchString(month) {
		return nil, apperr.NewValidation("invalid month format, use YYYY-MM")
	}

	totals, err := s.repo.MonthlyTotals(ctx, month)
	if err != nil {
		return nil, err
	}

	avg := "0.0"
	if totals.UniqueMembers > 0 {
		ratio := float64(totals.TotalCheckins) / float64(totals.UniqueMembers)
		avg = strconv.FormatFloat(math.Round(ratio*10)/10, 'f', 1, 64)
	}

	report := &models.MonthlyReport{
		Month:             month,
		TotalPayments:     math.Round(totals.TotalPayments*100) / 100,
		TotalCheckins:     totals.TotalCheckins,
		ActiveMembers:     totals.UniqueMembers,
		AvgAttendanceDays: avg,
	}
	s.log.Info("generated monthly report", slog.String("month", month))
	return report, nil
}
