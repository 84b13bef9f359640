package models

// DashboardStats — сводка для стартового экрана.
type DashboardStats struct {
	TotalMembers  int     // Всего участников
	TotalWorkouts int     // Всего тренировок
	TotalPayments float64 // Сумма всех платежей, 0 при отсутствии
	ActiveMembers int     // Участники с отметкой за сегодня, без повторов
}

// MonthlyTotals — сырые агрегаты хранилища за один месяц, до округления
// и вычисления средних в отчётном сервисе.
type MonthlyTotals struct {
	TotalPayments float64 // Сумма платежей за месяц
	TotalCheckins int     // Количество отметок за месяц
	UniqueMembers int     // Участники с отметками за месяц, без повторов
}

// MonthlyReport — готовый месячный отчёт для UI-слоя.
// AvgAttendanceDays — строка с одним знаком после запятой, "0.0" при
// отсутствии посещений: деление на ноль исключено политикой, а не случайно.
type MonthlyReport struct {
	Month             string  // Месяц отчёта YYYY-MM
	TotalPayments     float64 // Сумма платежей, округлена до двух знаков
	TotalCheckins     int     // Количество отметок
	ActiveMembers     int     // Уникальные участники с отметками
	AvgAttendanceDays string  // Среднее посещений на участника
}
