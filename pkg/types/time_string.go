package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout     = "15:04"
	minutesPerHour = 60
	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * minutesPerHour
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time is out of day range")
)

// TimeString время суток в формате "HH:MM" (с ведущими нулями).
// Фиксированная ширина позволяет сравнивать значения как строки.
type TimeString string

// NewTimeString создает TimeString из часов и минут time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS" (формат колонок TIME в PostgreSQL)
func NewTimeStringFromString(s string) (TimeString, error) {
	if len(s) == 8 && s[5] == ':' {
		seconds, ok := twoDigits(s[6], s[7])
		if !ok || seconds > 59 {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
		s = s[:5]
	}

	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromMinutes создает TimeString из количества минут от полуночи.
// Значения за пределами суток заворачиваются по модулю 24 часов.
func FromMinutes(total int) TimeString {
	total %= MinutesPerDay
	if total < 0 {
		total += MinutesPerDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/minutesPerHour, total%minutesPerHour))
}

// Validate проверяет формат "HH:MM" и диапазоны часов и минут
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, ok := twoDigits(s[0], s[1])
	if !ok || hours > 23 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	minutes, ok := twoDigits(s[3], s[4])
	if !ok || minutes > 59 {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return nil
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	hours, _ := twoDigits(t[0], t[1])
	minutes, _ := twoDigits(t[3], t[4])
	return hours*minutesPerHour + minutes, nil
}

// AddMinutes прибавляет минуты к времени.
// Возвращает ErrTimeOverflow, если результат выходит за пределы текущих суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	start, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := start + minutes
	if total < 0 || total >= MinutesPerDay {
		return "", fmt.Errorf("%w: %s%+dm", ErrTimeOverflow, t, minutes)
	}

	return FromMinutes(total), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}

// OnDate возвращает момент времени t в указанную дату и часовом поясе
func (t TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	return time.Date(y, m, d, minutes/minutesPerHour, minutes%minutesPerHour, 0, 0, loc), nil
}

// Scan реализует sql.Scanner для колонок TIME и TEXT
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
