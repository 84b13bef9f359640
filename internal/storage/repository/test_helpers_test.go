package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// setupTestStorage открывает свежее хранилище во временном каталоге теста
// и возвращает его вместе с функцией очистки.
func setupTestStorage(t *testing.T) (*Storage, func()) {
	t.Helper()

	storage, err := New(filepath.Join(t.TempDir(), "gym.db"))
	require.NoError(t, err)
	return storage, func() {
		_ = storage.Close()
	}
}

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateMember создает тестового участника и возвращает его ID.
// Пустые email и phone вставляются как NULL.
func (f *TestDataFactory) CreateMember(t *testing.T, name, email, phone, membershipType, joinDate, endDate string) int64 {
	t.Helper()

	res, err := f.storage.DB.Exec(`INSERT INTO members (name, email, phone, membership_type, join_date, end_date)
		VALUES (?, NULLIF(?, ''), NULLIF(?, ''), ?, ?, ?)`,
		name, email, phone, membershipType, joinDate, endDate)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}

// CreatePayment создает тестовый платёж с явной датой.
func (f *TestDataFactory) CreatePayment(t *testing.T, memberID int64, amount float64, paymentDate string) {
	t.Helper()

	_, err := f.storage.DB.Exec(`INSERT INTO payments (member_id, amount, payment_date)
		VALUES (?, ?, ?)`,
		memberID, amount, paymentDate)
	require.NoError(t, err)
}

// CreateCheckin создает тестовую отметку с явным моментом времени.
func (f *TestDataFactory) CreateCheckin(t *testing.T, memberID int64, checkIn string) {
	t.Helper()

	_, err := f.storage.DB.Exec(`INSERT INTO attendance (member_id, check_in)
		VALUES (?, ?)`,
		memberID, checkIn)
	require.NoError(t, err)
}

// CreateWorkout создает тестовую тренировку.
func (f *TestDataFactory) CreateWorkout(t *testing.T, name string, duration int, difficulty string) {
	t.Helper()

	_, err := f.storage.DB.Exec(`INSERT INTO workouts (name, duration, difficulty)
		VALUES (?, ?, ?)`,
		name, duration, difficulty)
	require.NoError(t, err)
}

// countRows возвращает количество строк таблицы с условием по member_id.
func countRows(t *testing.T, storage *Storage, table string, memberID int64) int {
	t.Helper()

	var count int
	err := storage.DB.QueryRow("SELECT COUNT(*) FROM "+table+" WHERE member_id = ?", memberID).Scan(&count)
	require.NoError(t, err)
	return count
}
