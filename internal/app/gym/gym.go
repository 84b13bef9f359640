// Package gym собирает ядро приложения: открывает хранилище, строит
// сервисы и отдаёт их UI-слою единым фасадом с явным жизненным циклом
// «создать на старте — передать вниз — закрыть на выходе», без глобального
// состояния.
package gym

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/gym-manager/internal/config"
	"github.com/magabrotheeeer/gym-manager/internal/services"
	"github.com/magabrotheeeer/gym-manager/internal/storage/repository"
)

// App владеет единственным дескриптором хранилища на время жизни процесса
// и предоставляет сервисы доменных операций.
type App struct {
	logger *slog.Logger
	db     *repository.Storage

	Members    *services.MemberService
	Payments   *services.PaymentService
	Attendance *services.AttendanceService
	Workouts   *services.WorkoutService
	Reports    *services.ReportService
}

// New открывает хранилище по пути из конфига и строит сервисы поверх него.
// Ошибка открытия фатальна: без инициализированного хранилища приложение
// не должно продолжать работу.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StoragePath)
	if err != nil {
		return nil, err
	}
	if err = repository.CheckStoreReady(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		logger:     logger,
		db:         db,
		Members:    services.NewMemberService(db, logger),
		Payments:   services.NewPaymentService(db, logger),
		Attendance: services.NewAttendanceService(db, logger),
		Workouts:   services.NewWorkoutService(db, logger),
		Reports:    services.NewReportService(db, logger),
	}

	stats, err := app.Reports.Dashboard(ctx)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	logger.Info("store ready",
		slog.String("path", cfg.StoragePath),
		slog.Int("members", stats.TotalMembers),
		slog.Int("workouts", stats.TotalWorkouts))

	return app, nil
}

// Close закрывает хранилище. Вызывается один раз при штатном завершении.
func (a *App) Close() error {
	a.logger.Info("closing store")
	return a.db.Close()
}
