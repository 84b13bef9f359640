// Package models содержит доменные структуры зала: участников, тренировки,
// платежи и посещения, а также вспомогательные типы для приёма данных из
// внешнего UI-слоя до их валидации.
package models

// Member представляет участника зала, как он хранится в таблице members.
// Даты хранятся строками в формате YYYY-MM-DD. Email и Phone могут быть
// nil — это означает отсутствие значения, а не пустую строку.
type Member struct {
	ID             int64   // Идентификатор, назначается хранилищем
	Name           string  // Имя участника
	Email          *string // Email, уникален без учёта регистра
	Phone          *string // Телефон, уникален
	MembershipType string  // Тип абонемента, свободная метка
	JoinDate       string  // Дата вступления
	EndDate        string  // Дата окончания абонемента
}

// MemberInfo — строка списка участников с производным статусом.
// Status вычисляется при чтении (Active, если дата окончания не раньше
// сегодняшней, иначе Expired) и никогда не хранится.
type MemberInfo struct {
	ID             int64
	Name           string
	Email          *string
	Phone          *string
	MembershipType string
	JoinDate       string
	EndDate        string
	Status         string
}

// DummyMember используется для приёма данных нового участника из UI-слоя,
// прежде чем конвертировать их в Member. Даты приходят строками, чтобы их
// можно было валидировать и парсить вручную.
type DummyMember struct {
	Name           string `json:"name" validate:"required"`                 // Имя участника
	Email          string `json:"email,omitempty"`                          // Email (опционально)
	Phone          string `json:"phone,omitempty"`                          // Телефон (опционально)
	MembershipType string `json:"membership_type" validate:"required"`      // Тип абонемента
	JoinDate       string `json:"join_date" validate:"required"`            // Дата вступления YYYY-MM-DD
	EndDate        string `json:"end_date" validate:"required"`             // Дата окончания YYYY-MM-DD
}

// FieldUpdate — одна колонка и её новое значение для частичного обновления
// участника. Сервисный слой пропускает сюда только колонки из белого списка.
type FieldUpdate struct {
	Column string
	Value  any
}
