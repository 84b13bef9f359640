// Package repository реализует хранилище данных на основе встраиваемого
// SQLite-файла для управления участниками, тренировками, платежами и
// посещениями зала. Предоставляет методы создания, чтения, обновления,
// удаления и агрегирования записей поверх единого исполнителя команд
// и запросов с переводом ошибок движка в типы apperr.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/mattn/go-sqlite3"

	"github.com/magabrotheeeer/gym-manager/internal/apperr"
)

// schema описывает четыре связанные таблицы хранилища. Создание идемпотентно:
// повторный запуск против уже инициализированного файла не меняет данных.
// Уникальность email и названий тренировок — без учёта регистра (COLLATE
// NOCASE), внешние ключи платежей и посещений каскадно удаляются вместе
// с участником.
const schema = `
CREATE TABLE IF NOT EXISTS members (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    email TEXT COLLATE NOCASE UNIQUE,
    phone TEXT UNIQUE,
    membership_type TEXT NOT NULL,
    join_date DATE DEFAULT (date('now')),
    end_date DATE
);

CREATE TABLE IF NOT EXISTS workouts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL COLLATE NOCASE UNIQUE,
    duration INTEGER NOT NULL CHECK (duration > 0),
    difficulty TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS payments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    member_id INTEGER REFERENCES members(id) ON DELETE CASCADE,
    amount REAL NOT NULL CHECK (amount > 0),
    payment_date DATE DEFAULT (date('now'))
);

CREATE TABLE IF NOT EXISTS attendance (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    member_id INTEGER NOT NULL REFERENCES members(id) ON DELETE CASCADE,
    check_in DATETIME DEFAULT (datetime('now'))
);
`

// Storage инкапсулирует соединение с SQLite-файлом и реализует методы
// работы с участниками, тренировками, платежами и посещениями.
// Команды записи сериализуются мьютексом: хранилище рассчитано на один
// процесс и один активный дескриптор.
type Storage struct {
	DB *sql.DB

	mu sync.Mutex
}

// New открывает SQLite-файл по указанному пути (создаёт его при отсутствии)
// и инициализирует необходимые таблицы. Внешние ключи включаются на каждом
// соединении: SQLite по умолчанию их не проверяет, а без этого каскадное
// удаление не срабатывает. synchronous=FULL сохраняет каждую зафиксированную
// команду долговечной до возврата управления вызывающему.
// Повреждённый или нечитаемый файл даёт apperr.StoreUnavailableError.
func New(storagePath string) (*Storage, error) {
	const op = "storage.New"

	dsn := fmt.Sprintf("file:%s?_foreign_keys=1&_synchronous=FULL", storagePath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &apperr.StoreUnavailableError{Err: fmt.Errorf("%s: %w", op, err)}
	}
	if err = db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, &apperr.StoreUnavailableError{Err: fmt.Errorf("%s: %w", op, err)}
	}

	var check string
	if err = db.QueryRowContext(context.Background(), "PRAGMA quick_check").Scan(&check); err != nil {
		_ = db.Close()
		return nil, &apperr.StoreUnavailableError{Err: fmt.Errorf("%s: %w", op, err)}
	}
	if check != "ok" {
		_ = db.Close()
		return nil, &apperr.StoreUnavailableError{Err: fmt.Errorf("%s: integrity check failed: %s", op, check)}
	}

	if _, err = db.ExecContext(context.Background(), schema); err != nil {
		_ = db.Close()
		return nil, &apperr.StoreUnavailableError{Err: fmt.Errorf("%s: %w", op, err)}
	}

	return &Storage{DB: db}, nil
}

// Close закрывает хранилище. Все зафиксированные к этому моменту команды
// уже долговечны, отдельного сброса не требуется.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.DB.Close()
}

// CheckStoreReady проверяет готовность хранилища.
func CheckStoreReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT 1 FROM sqlite_master
        WHERE type = 'table' AND name = 'members'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table members missing or query error: %w", err)
	}
	return nil
}

// CommandResult — результат команды записи: число затронутых строк и,
// для вставок, назначенный идентификатор.
type CommandResult struct {
	RowsAffected int64
	LastInsertID int64
}

// Command выполняет команду записи под мьютексом одиночного писателя.
// Нарушения ограничений переводятся в apperr.ConstraintViolationError,
// остальные сбои — в apperr.CommandError с текстом запроса для контекста.
func (s *Storage) Command(ctx context.Context, stmt string, args ...any) (CommandResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.DB.ExecContext(ctx, stmt, args...)
	if err != nil {
		return CommandResult{}, translateCommandErr(stmt, err)
	}
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return CommandResult{}, &apperr.CommandError{Stmt: stmt, Err: err}
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return CommandResult{}, &apperr.CommandError{Stmt: stmt, Err: err}
	}
	return CommandResult{RowsAffected: rowsAffected, LastInsertID: lastID}, nil
}

// Query выполняет запрос чтения. Сбои переводятся в apperr.QueryError.
func (s *Storage) Query(ctx context.Context, stmt string, args ...any) (*sql.Rows, error) {
	rows, err := s.DB.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, &apperr.QueryError{Stmt: stmt, Err: err}
	}
	return rows, nil
}

func translateCommandErr(stmt string, err error) error {
	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
		return &apperr.ConstraintViolationError{Field: constraintField(serr.Error())}
	}
	return &apperr.CommandError{Stmt: stmt, Err: err}
}

// constraintField достаёт имя колонки из текста ошибки движка вида
// "UNIQUE constraint failed: members.email".
func constraintField(msg string) string {
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
