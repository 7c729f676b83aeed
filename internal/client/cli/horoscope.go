package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fortranov/neoastrology/internal/zodiac"
)

func (c *Cli) runHoroscope(ctx context.Context, args []string) error {
	sign := ""
	date := ""
	all := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--all":
			all = true
		case "--sign":
			if i+1 >= len(args) {
				return fmt.Errorf("--sign requires a value")
			}
			i++
			parsed, err := zodiac.Parse(args[i])
			if err != nil {
				return err
			}
			sign = parsed.String()
		case "--date":
			if i+1 >= len(args) {
				return fmt.Errorf("--date requires a value in YYYY-MM-DD format")
			}
			i++
			if _, err := time.Parse("2006-01-02", args[i]); err != nil {
				return fmt.Errorf("invalid date %q: %w", args[i], err)
			}
			date = args[i]
		default:
			return fmt.Errorf("unknown argument: %s. Usage: neoastro horoscope [--sign SIGN] [--date YYYY-MM-DD] [--all]", args[i])
		}
	}

	token, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	if all {
		horoscopes, err := c.charts.GetAllSignsHoroscopes(ctx, token, date)
		if err != nil {
			return fmt.Errorf("failed to get horoscopes: %w", err)
		}
		return c.renderTemplate(horoscopeListTemplate, horoscopes)
	}

	// Без --sign берем знак из основной натальной карты пользователя
	if sign == "" {
		sign, err = c.primarySign(ctx, token)
		if err != nil {
			return err
		}
	}

	horoscope, err := c.charts.GetDailyHoroscope(ctx, token, sign, date)
	if err != nil {
		return fmt.Errorf("failed to get horoscope: %w", err)
	}

	return c.renderTemplate(horoscopeTemplate, horoscope)
}

// primarySign определяет солнечный знак по дате рождения из основной
// карты пользователя (или первой карты, если основная не отмечена)
func (c *Cli) primarySign(ctx context.Context, token string) (string, error) {
	charts, err := c.charts.ListCharts(ctx, token)
	if err != nil {
		return "", fmt.Errorf("failed to list charts: %w", err)
	}
	if len(charts) == 0 {
		return "", fmt.Errorf("no natal charts found. Pass --sign or create a chart first")
	}

	chart := charts[0]
	for _, ch := range charts {
		if ch.IsPrimary {
			chart = ch
			break
		}
	}

	return zodiac.ForDate(chart.BirthDate).String(), nil
}
