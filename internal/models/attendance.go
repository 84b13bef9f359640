package models

// Attendance представляет одно событие отметки участника в зале.
type Attendance struct {
	ID       int64  // Идентификатор, назначается хранилищем
	MemberID int64  // Ссылка на участника
	CheckIn  string // Момент отметки, как он хранится в таблице
}

// AttendanceInfo — строка журнала посещений, соединённая с именем участника.
// CheckIn — сырое значение из хранилища, CheckInTime — отформатированное
// YYYY-MM-DD HH:MM:SS для отображения.
type AttendanceInfo struct {
	ID          int64
	CheckIn     string
	CheckInTime string
	MemberID    int64
	MemberName  string
}
