package domain

import (
	"strings"
	"time"
	_ "time/tzdata"
)

// Settings — параметры ресторана.
type Settings struct {
	RestaurantName string `json:"restaurant_name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	TableCount     int    `json:"table_count"`
	Currency       string `json:"currency"`
	Timezone       string `json:"timezone"`
}

// DefaultSettings возвращает значения по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		RestaurantName: "Restorun",
		Address:        "ул. Примерная, 123",
		Phone:          "+7 (999) 123-45-67",
		Email:          "info@restorun.ru",
		TableCount:     10,
		Currency:       "RUB",
		Timezone:       "Europe/Moscow",
	}
}

func (s Settings) Validate() error {
	if strings.TrimSpace(s.RestaurantName) == "" {
		return Invalid("restaurant_name is required")
	}
	if s.TableCount <= 0 {
		return Invalid("table_count must be positive")
	}
	if len(s.Currency) != 3 || strings.ToUpper(s.Currency) != s.Currency {
		return Invalid("currency must be a 3-letter ISO code")
	}
	if _, err := s.Location(); err != nil {
		return Invalid("unknown timezone %q", s.Timezone)
	}
	return nil
}

// Location загружает часовой пояс ресторана.
func (s Settings) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return nil, Invalid("timezone is empty")
	}
	return time.LoadLocation(s.Timezone)
}
