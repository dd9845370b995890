package models

import (
	"time"

	"github.com/reservely/reservation-service/internal/domain"
)

// DayHours часы работы в один день недели
type DayHours struct {
	Day    string  `json:"day"` // "monday"
	IsOpen bool    `json:"isOpen"`
	Open   *string `json:"open,omitempty"`  // "09:00"
	Close  *string `json:"close,omitempty"` // "22:00"
}

// DurationDTO длительность бронирования
type DurationDTO struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// HoursResponse расписание и правила бронирования ресторана
type HoursResponse struct {
	RestaurantID    string       `json:"restaurantId"`
	Name            string       `json:"name"`
	TimeZone        string       `json:"timeZone"`
	Schedule        []DayHours   `json:"schedule"`
	DefaultDuration *DurationDTO `json:"defaultDuration,omitempty"`
	MinAdvanceHours int          `json:"minAdvanceHours"`
	MaxAdvanceDays  int          `json:"maxAdvanceDays"`
	MinPartySize    int          `json:"minPartySize"`
	MaxPartySize    int          `json:"maxPartySize"`
	OpenNow         bool         `json:"openNow"`
}

// OpenAtResponse ответ на вопрос "открыт ли ресторан в момент at"
type OpenAtResponse struct {
	RestaurantID string   `json:"restaurantId"`
	At           string   `json:"at"` // RFC3339 во временной зоне ресторана
	IsOpen       bool     `json:"isOpen"`
	Hours        DayHours `json:"hours"`
}

// weekOrder порядок дней в ответе: с понедельника
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// FromDaySchedule конвертирует расписание дня в DTO
func FromDaySchedule(day time.Weekday, s domain.DaySchedule) DayHours {
	hours := DayHours{
		Day:    dayName(day),
		IsOpen: s.IsOpen(),
	}
	if hours.IsOpen {
		openAt, closeAt := s.Open.String(), s.Close.String()
		hours.Open = &openAt
		hours.Close = &closeAt
	}
	return hours
}

// FromDomainRestaurant конвертирует настройки ресторана в DTO
func FromDomainRestaurant(c *domain.RestaurantConfig, openNow bool) *HoursResponse {
	resp := &HoursResponse{
		RestaurantID:    c.ID.String(),
		Name:            c.Name,
		TimeZone:        c.Location().String(),
		Schedule:        make([]DayHours, 0, len(weekOrder)),
		MinAdvanceHours: c.MinAdvanceHours,
		MaxAdvanceDays:  c.MaxAdvanceDays,
		MinPartySize:    c.MinPartySize,
		MaxPartySize:    c.MaxPartySize,
		OpenNow:         openNow,
	}

	for _, day := range weekOrder {
		resp.Schedule = append(resp.Schedule, FromDaySchedule(day, c.Schedule.ForWeekday(day)))
	}

	if c.DefaultDuration != nil {
		resp.DefaultDuration = &DurationDTO{
			Hours:   c.DefaultDuration.Hours,
			Minutes: c.DefaultDuration.Minutes,
		}
	}

	return resp
}

func dayName(day time.Weekday) string {
	switch day {
	case time.Monday:
		return "monday"
	case time.Tuesday:
		return "tuesday"
	case time.Wednesday:
		return "wednesday"
	case time.Thursday:
		return "thursday"
	case time.Friday:
		return "friday"
	case time.Saturday:
		return "saturday"
	default:
		return "sunday"
	}
}
