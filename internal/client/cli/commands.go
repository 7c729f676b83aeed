package cli

import (
	"context"
	"fmt"
)

// Run выполняет команду. Неизвестная команда печатает usage и возвращает ошибку.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "chart":
		return c.runChart(ctx, args)
	case "horoscope":
		return c.runHoroscope(ctx, args)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
