package cli

import (
	"context"
	"fmt"
	"strings"
)

func (c *Cli) runChartDelete(ctx context.Context, args []string) error {
	// Проверяем наличие ID
	if len(args) == 0 {
		return fmt.Errorf("missing chart ID. Usage: neoastro chart delete <id>")
	}

	chartID := args[0]

	token, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	// Запрашиваем подтверждение перед удалением
	answer, err := c.io.ReadInput(fmt.Sprintf("Delete chart %s? This cannot be undone (y/N): ", chartID))
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		c.io.Println("Aborted.")
		return nil
	}

	if err := c.charts.DeleteChart(ctx, token, chartID); err != nil {
		return fmt.Errorf("failed to delete chart: %w", err)
	}

	c.io.Println("✓ Chart deleted.")

	return nil
}
