package cli

import (
	"context"
	"fmt"

	"github.com/fortranov/neoastrology/pkg/api"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем email
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	// Запрашиваем пароль
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	if err := c.session.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	}); err != nil {
		return err
	}

	user := c.session.CurrentUser()

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Email:        %s\n", user.Email)
	c.io.Printf("Subscription: %s\n", user.SubscriptionTier)
	c.io.Println()
	c.io.Println("Your session has been saved.")

	return nil
}
