package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runChart(ctx context.Context, args []string) error {
	// Проверяем подкоманду
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: neoastro chart <list|create|get|delete>")
	}

	switch args[0] {
	case "list":
		return c.runChartList(ctx)
	case "create":
		return c.runChartCreate(ctx)
	case "get":
		return c.runChartGet(ctx, args[1:])
	case "delete":
		return c.runChartDelete(ctx, args[1:])
	default:
		return fmt.Errorf("unknown chart subcommand: %s. Use: list, create, get, or delete", args[0])
	}
}
