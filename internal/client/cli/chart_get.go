package cli

import (
	"context"
	"fmt"
	"os"
)

// Секции детального просмотра карты, аналог вкладок на странице карты
const (
	sectionPlanets        = "planets"
	sectionHouses         = "houses"
	sectionAspects        = "aspects"
	sectionInterpretation = "interpretation"
)

func (c *Cli) runChartGet(ctx context.Context, args []string) error {
	// Проверяем наличие ID
	if len(args) == 0 {
		return fmt.Errorf("missing chart ID. Usage: neoastro chart get <id> [section] [--svg PATH]")
	}

	chartID := args[0]
	section := sectionPlanets
	svgPath := ""

	rest := args[1:]
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case "--svg":
			if i+1 >= len(rest) {
				return fmt.Errorf("--svg requires a file path")
			}
			i++
			svgPath = rest[i]
		case sectionPlanets, sectionHouses, sectionAspects, sectionInterpretation:
			section = rest[i]
		default:
			return fmt.Errorf("unknown section: %s. Use: planets, houses, aspects, or interpretation", rest[i])
		}
	}

	token, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	chart, err := c.charts.GetChart(ctx, token, chartID)
	if err != nil {
		return fmt.Errorf("failed to get chart: %w", err)
	}

	if err := c.renderTemplate(chartHeaderTemplate, chart); err != nil {
		return err
	}

	if chart.ChartData == nil {
		c.io.Println("Chart data is still being calculated. Try again in a moment.")
		return nil
	}

	switch section {
	case sectionPlanets:
		err = c.renderTemplate(chartPlanetsTemplate, chart.ChartData)
	case sectionHouses:
		err = c.renderTemplate(chartHousesTemplate, chart.ChartData)
	case sectionAspects:
		err = c.renderTemplate(chartAspectsTemplate, chart.ChartData)
	case sectionInterpretation:
		err = c.renderTemplate(chartInterpretationTemplate, chart)
	}
	if err != nil {
		return err
	}

	if svgPath != "" {
		if chart.SVGChart == "" {
			return fmt.Errorf("chart has no SVG rendering")
		}
		if err := os.WriteFile(svgPath, []byte(chart.SVGChart), 0o644); err != nil {
			return fmt.Errorf("failed to write SVG file: %w", err)
		}
		c.io.Printf("SVG chart saved to %s\n", svgPath)
	}

	return nil
}
