package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fortranov/neoastrology/internal/validation"
	"github.com/fortranov/neoastrology/pkg/api"
)

func (c *Cli) runChartCreate(ctx context.Context) error {
	token, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== New Natal Chart ===")
	c.io.Println()

	req, err := c.promptChartData()
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Calculating chart...")

	chart, err := c.charts.CreateChart(ctx, token, *req)
	if err != nil {
		return fmt.Errorf("failed to create chart: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Natal chart created!")
	c.io.Printf("ID:   %s\n", chart.ID)
	c.io.Printf("Name: %s\n", chart.Name)
	c.io.Println()
	c.io.Printf("Run 'neoastro chart get %s' to view the full chart.\n", chart.ID)

	return nil
}

// promptChartData интерактивно собирает данные рождения,
// валидируя каждое поле до отправки на сервер
func (c *Cli) promptChartData() (*api.NatalChartCreate, error) {
	name, err := c.io.ReadInput("Chart name: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read name: %w", err)
	}
	if err := validation.ValidateChartName(name); err != nil {
		return nil, err
	}

	birthDate, err := c.io.ReadInput("Birth date (YYYY-MM-DD): ")
	if err != nil {
		return nil, fmt.Errorf("failed to read birth date: %w", err)
	}
	if err := validation.ValidateBirthDate(birthDate); err != nil {
		return nil, err
	}

	birthTime, err := c.io.ReadInput("Birth time (HH:MM): ")
	if err != nil {
		return nil, fmt.Errorf("failed to read birth time: %w", err)
	}
	if err := validation.ValidateBirthTime(birthTime); err != nil {
		return nil, err
	}

	timezone, err := c.io.ReadInput("Birth timezone (e.g. Europe/Moscow): ")
	if err != nil {
		return nil, fmt.Errorf("failed to read timezone: %w", err)
	}

	city, err := c.io.ReadInput("Birth city: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read city: %w", err)
	}

	country, err := c.io.ReadInput("Birth country: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read country: %w", err)
	}

	lat, err := c.readCoordinate("Birth latitude (-90..90): ", validation.ValidateLatitude)
	if err != nil {
		return nil, err
	}

	lon, err := c.readCoordinate("Birth longitude (-180..180): ", validation.ValidateLongitude)
	if err != nil {
		return nil, err
	}

	primaryAnswer, err := c.io.ReadInput("Make this your primary chart? (y/N): ")
	if err != nil {
		return nil, fmt.Errorf("failed to read answer: %w", err)
	}
	isPrimary := strings.EqualFold(strings.TrimSpace(primaryAnswer), "y")

	return &api.NatalChartCreate{
		Name:           name,
		BirthDate:      birthDate,
		BirthTime:      birthTime,
		BirthTimezone:  timezone,
		BirthCity:      city,
		BirthCountry:   country,
		BirthLatitude:  lat,
		BirthLongitude: lon,
		IsPrimary:      isPrimary,
	}, nil
}

func (c *Cli) readCoordinate(prompt string, validate func(float64) error) (float64, error) {
	raw, err := c.io.ReadInput(prompt)
	if err != nil {
		return 0, fmt.Errorf("failed to read coordinate: %w", err)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid coordinate %q: %w", raw, err)
	}
	if err := validate(value); err != nil {
		return 0, err
	}
	return value, nil
}
