package cli

import (
	"context"
	"fmt"

	"github.com/fortranov/neoastrology/internal/validation"
	"github.com/fortranov/neoastrology/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	// Запрашиваем email
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if err := validation.ValidateEmail(email); err != nil {
		return err
	}

	// Полное имя опционально
	fullName, err := c.io.ReadInput("Full name (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read full name: %w", err)
	}

	// Запрашиваем пароль с подтверждением
	password, err := c.io.ReadPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return err
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Registering...")

	if err := c.session.Register(ctx, api.RegisterRequest{
		Email:    email,
		Password: password,
		FullName: fullName,
	}); err != nil {
		return err
	}

	user := c.session.CurrentUser()

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Email: %s\n", user.Email)
	if user.FullName != "" {
		c.io.Printf("Name:  %s\n", user.FullName)
	}
	c.io.Println()
	c.io.Println("You are now logged in. Run 'neoastro chart create' to build your first natal chart.")

	return nil
}
