package models

import "errors"

// Доменные ошибки ядра. Сервисы оборачивают их через fmt.Errorf с %w,
// обработчики сопоставляют через errors.Is
var (
	// ErrInvalidInput — входные данные вне объявленных диапазонов; запись не выполняется
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoRoutesAvailable — провайдер не вернул ни одного пригодного маршрута
	ErrNoRoutesAvailable = errors.New("no routes available")

	// ErrProviderUnavailable — внешний коллаборатор не ответил в отведённый
	// бюджет времени; ошибка ретраибельна
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrAssessmentNotFound — для репорта нет актуальной оценки; отличает
	// отсутствие записи от сбоя хранилища
	ErrAssessmentNotFound = errors.New("assessment not found")
)
