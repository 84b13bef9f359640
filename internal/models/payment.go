package models

// Payment представляет один денежный платёж, привязанный к участнику.
type Payment struct {
	ID          int64   // Идентификатор, назначается хранилищем
	MemberID    int64   // Ссылка на участника
	Amount      float64 // Сумма, строго больше нуля
	PaymentDate string  // Дата платежа YYYY-MM-DD
}

// PaymentInfo — строка списка платежей, соединённая с именем участника
// через LEFT JOIN. MemberID и MemberName могут быть nil, если ссылка на
// участника отсутствует.
type PaymentInfo struct {
	ID          int64
	Amount      float64
	PaymentDate string
	MemberID    *int64
	MemberName  *string
}

// DummyPayment используется для приёма данных платежа из UI-слоя.
// Оба поля приходят строками и парсятся в сервисном слое: идентификатор
// участника должен быть положительным целым, сумма — строго положительным
// числом.
type DummyPayment struct {
	MemberID string `json:"member_id" validate:"required"` // Идентификатор участника
	Amount   string `json:"amount" validate:"required"`    // Сумма платежа
}
