package auth

import (
	"context"
	"fmt"

	"construlab/config"
	"construlab/internal/infra/mailer"
)

func SendVerificationEmail(ctx context.Context, to string, token string) error {
	link := fmt.Sprintf("%s/verify?token=%s", config.APP_URL, token)
	return mailer.Default.Send(ctx, mailer.Message{
		To:      to,
		Subject: "Verify Your Account",
		Body:    fmt.Sprintf("Click the following link to verify your account:\n\n%s", link),
	})
}

func SendPasswordResetEmail(ctx context.Context, to string, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", config.FRONTEND_URL, token)
	return mailer.Default.Send(ctx, mailer.Message{
		To:      to,
		Subject: "Reset Your Password",
		Body:    fmt.Sprintf("Use the following link to choose a new password. It expires in one hour.\n\n%s", link),
	})
}
