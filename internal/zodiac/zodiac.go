// Package zodiac определяет знаки зодиака и вычисляет солнечный знак
// по дате рождения. Используется командой horoscope, когда знак
// не задан явно.
package zodiac

import (
	"fmt"
	"strings"
	"time"
)

// Sign представляет знак зодиака (значения совпадают с enum backend)
type Sign string

const (
	Aries       Sign = "aries"
	Taurus      Sign = "taurus"
	Gemini      Sign = "gemini"
	Cancer      Sign = "cancer"
	Leo         Sign = "leo"
	Virgo       Sign = "virgo"
	Libra       Sign = "libra"
	Scorpio     Sign = "scorpio"
	Sagittarius Sign = "sagittarius"
	Capricorn   Sign = "capricorn"
	Aquarius    Sign = "aquarius"
	Pisces      Sign = "pisces"
)

// Signs перечисляет все знаки в зодиакальном порядке
var Signs = []Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// signBounds задает последний день каждого знака внутри календарного года.
// Тропические границы; даты на стыке относятся к предыдущему знаку.
var signBounds = []struct {
	sign  Sign
	month time.Month
	day   int
}{
	{Capricorn, time.January, 19},
	{Aquarius, time.February, 18},
	{Pisces, time.March, 20},
	{Aries, time.April, 19},
	{Taurus, time.May, 20},
	{Gemini, time.June, 20},
	{Cancer, time.July, 22},
	{Leo, time.August, 22},
	{Virgo, time.September, 22},
	{Libra, time.October, 22},
	{Scorpio, time.November, 21},
	{Sagittarius, time.December, 21},
	{Capricorn, time.December, 31},
}

// ForDate возвращает солнечный знак для даты рождения
func ForDate(t time.Time) Sign {
	month := t.Month()
	day := t.Day()

	for _, b := range signBounds {
		if month < b.month || (month == b.month && day <= b.day) {
			return b.sign
		}
	}
	return Capricorn
}

// Parse нормализует пользовательский ввод в Sign
func Parse(s string) (Sign, error) {
	normalized := Sign(strings.ToLower(strings.TrimSpace(s)))
	for _, sign := range Signs {
		if sign == normalized {
			return sign, nil
		}
	}
	return "", fmt.Errorf("unknown zodiac sign: %q", s)
}

// String implements fmt.Stringer
func (s Sign) String() string {
	return string(s)
}

// Title возвращает имя знака с заглавной буквы для вывода
func (s Sign) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}
