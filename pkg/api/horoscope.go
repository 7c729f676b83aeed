package api

import "time"

// Периоды гороскопов, поддерживаемые backend
const (
	PeriodDaily = "daily"
)

// Horoscope представляет гороскоп для знака зодиака на дату
type Horoscope struct {
	Date        time.Time `json:"date"`
	Sign        string    `json:"sign"`
	Period      string    `json:"period"`
	ContentText string    `json:"content_text"`
	Mood        string    `json:"mood,omitempty"`
	LuckyColor  string    `json:"lucky_color,omitempty"`
	LuckyNumber string    `json:"lucky_number,omitempty"`
	Keywords    []string  `json:"keywords,omitempty"`
}
