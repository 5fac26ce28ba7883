package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"loanlens/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendDispositionOpened(ctx context.Context, n port.DispositionNotification) error {
	subject := fmt.Sprintf("[%s] %s finding on loan %s needs review", n.ItemStatus, n.FieldName, n.LoanID)
	htmlBody := buildDispositionHTML(n)
	textBody := fmt.Sprintf(
		"A %s validation finding on loan %s was dispositioned.\n\nField: %s\nAction: %s\nNotes: %s\n\nLoanLens",
		n.ItemStatus, n.LoanID, n.FieldName, n.Action, n.Notes)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{n.ToEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildDispositionHTML(n port.DispositionNotification) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">Validation finding needs review</h2>
  <p>A <strong>%s</strong> finding on loan <strong>%s</strong> was dispositioned.</p>
  <table style="border-collapse: collapse; width: 100%%;">
    <tr><td style="padding: 6px; color: #666;">Field</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">Action</td><td style="padding: 6px;">%s</td></tr>
    <tr><td style="padding: 6px; color: #666;">Notes</td><td style="padding: 6px;">%s</td></tr>
  </table>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">LoanLens - Mortgage Document Validation</p>
</body>
</html>`, n.ItemStatus, n.LoanID, n.FieldName, n.Action, n.Notes)
}
