package cli

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	c.session.Initialize(ctx)

	if !c.session.IsAuthenticated() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'neoastro login' to authenticate.")
		return nil
	}

	// Обновляем профиль с сервера. Ошибка означает, что сохраненный
	// токен больше не действителен и сессия уже сброшена.
	if err := c.session.RefreshUser(ctx); err != nil {
		c.io.Println("Status: Not authenticated")
		c.io.Printf("Stored session is no longer valid: %v\n", err)
		c.io.Println()
		c.io.Println("Run 'neoastro login' to authenticate.")
		return nil
	}

	user := c.session.CurrentUser()

	c.io.Println("Status: Authenticated")
	c.io.Printf("Email:        %s\n", user.Email)
	if user.FullName != "" {
		c.io.Printf("Name:         %s\n", user.FullName)
	}
	c.io.Printf("Subscription: %s\n", user.SubscriptionTier)
	if user.SubscriptionEndDate != nil {
		c.io.Printf("Renews until: %s\n", user.SubscriptionEndDate.Format("2006-01-02"))
	}
	c.io.Printf("Verified:     %t\n", user.IsVerified)
	c.io.Printf("Member since: %s\n", user.CreatedAt.Format("2006-01-02"))

	c.printTokenExpiry()

	return nil
}

// printTokenExpiry показывает срок действия access токена.
// Подпись не проверяется, клиенту нужен только claim exp.
func (c *Cli) printTokenExpiry() {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(c.session.AuthToken(), claims); err != nil {
		return
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}

	c.io.Println()
	c.io.Printf("Token expires: %s\n", exp.Format(time.RFC3339))
	if remaining := time.Until(exp.Time); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("⚠️  Token has expired. Please login again.")
	}
}
