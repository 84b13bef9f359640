package models

// Workout представляет именованный шаблон тренировки.
type Workout struct {
	ID         int64  // Идентификатор, назначается хранилищем
	Name       string // Название, уникально без учёта регистра
	Duration   int    // Длительность в минутах, строго больше нуля
	Difficulty string // Сложность, свободная метка (Beginner/Intermediate/Advanced)
}

// DummyWorkout используется для приёма данных новой тренировки из UI-слоя.
// Длительность приходит строкой и парсится в сервисном слое.
type DummyWorkout struct {
	Name       string `json:"name" validate:"required"`       // Название тренировки
	Duration   string `json:"duration" validate:"required"`   // Длительность в минутах (>0)
	Difficulty string `json:"difficulty" validate:"required"` // Сложность
}
