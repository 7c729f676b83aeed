package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runChartList(ctx context.Context) error {
	token, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	charts, err := c.charts.ListCharts(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to list charts: %w", err)
	}

	return c.renderTemplate(chartListTemplate, charts)
}
