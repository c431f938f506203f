package utils

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESMailer sends transactional mail through AWS SES.
type SESMailer struct {
	client *ses.Client
	sender string
}

func NewSESMailer(ctx context.Context) (*SESMailer, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &SESMailer{
		client: ses.NewFromConfig(cfg),
		sender: os.Getenv("SES_EMAIL"),
	}, nil
}

// NotifyLimitExceeded tells the user their daily calorie limit was passed.
// Callers treat delivery as best effort.
func (m *SESMailer) NotifyLimitExceeded(email string, totalCalories, limit float64) error {
	subject := "Daily Calorie Limit Exceeded"
	body := fmt.Sprintf(
		"Your daily calorie intake (%.0f kcal) has exceeded your set limit of %.0f kcal.",
		totalCalories, limit,
	)
	return m.send(email, subject, body)
}

func (m *SESMailer) send(to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.sender),
	}

	_, err := m.client.SendEmail(context.Background(), input)
	if err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
