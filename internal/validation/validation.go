package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// EmailPattern определяет допустимый формат email.
// Намеренно нестрогий: окончательную проверку выполняет сервер.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// BirthTimePattern определяет формат времени рождения HH:MM
var BirthTimePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

const (
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 8
	// MaxChartNameLen максимальная длина названия карты
	MaxChartNameLen = 100

	birthDateLayout = "2006-01-02"
)

// ValidateEmail проверяет, что email похож на email
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}
	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}
	return nil
}

// ValidateChartName проверяет название натальной карты
func ValidateChartName(name string) error {
	if name == "" {
		return fmt.Errorf("chart name cannot be empty")
	}
	if len(name) > MaxChartNameLen {
		return fmt.Errorf("chart name must not exceed %d characters", MaxChartNameLen)
	}
	return nil
}

// ValidateBirthDate проверяет дату рождения в формате YYYY-MM-DD
func ValidateBirthDate(date string) error {
	if date == "" {
		return fmt.Errorf("birth date cannot be empty")
	}
	if _, err := time.Parse(birthDateLayout, date); err != nil {
		return fmt.Errorf("birth date must be in YYYY-MM-DD format: %w", err)
	}
	return nil
}

// ValidateBirthTime проверяет время рождения в формате HH:MM
func ValidateBirthTime(birthTime string) error {
	if !BirthTimePattern.MatchString(birthTime) {
		return fmt.Errorf("birth time must be in HH:MM format")
	}

	hours, _ := strconv.Atoi(birthTime[:2])
	minutes, _ := strconv.Atoi(birthTime[3:])
	if hours > 23 || minutes > 59 {
		return fmt.Errorf("invalid birth time: %s", birthTime)
	}

	return nil
}

// ValidateLatitude проверяет широту в градусах
func ValidateLatitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude проверяет долготу в градусах
func ValidateLongitude(lon float64) error {
	if lon < -180 || lon > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}
