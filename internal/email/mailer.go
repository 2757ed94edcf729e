package email

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"

	"unlinked/internal/config"
)

// Mailer - внешний почтовый коллаборатор. Все вызовы для ядра
// fire-and-forget: ошибка логируется вызывающим, но не пробрасывается
// в ответ пользователю.
type Mailer interface {
	SendWelcomeEmail(ctx context.Context, email, name, profileURL string) error
	SendCommentNotificationEmail(ctx context.Context, recipientEmail, recipientName, commenterName, postURL, commentContent string) error
	SendConnectionAcceptedEmail(ctx context.Context, recipientEmail, senderName, recipientName string) error
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendRequest struct {
	From     address   `json:"from"`
	To       []address `json:"to"`
	Subject  string    `json:"subject"`
	HTML     string    `json:"html"`
	Category string    `json:"category"`
}

// MailtrapClient шлет письма через HTTP API Mailtrap.
type MailtrapClient struct {
	client *resty.Client
	config *config.Config
}

func NewMailtrapClient(cfg *config.Config) *MailtrapClient {
	client := resty.New().
		SetAuthToken(cfg.Mailtrap.APIToken).
		SetHeader("Content-Type", "application/json")

	return &MailtrapClient{client: client, config: cfg}
}

func (m *MailtrapClient) send(ctx context.Context, to, subject, html, category string) error {
	req := sendRequest{
		From:     address{Email: m.config.Mailtrap.FromEmail, Name: m.config.Mailtrap.FromName},
		To:       []address{{Email: to}},
		Subject:  subject,
		HTML:     html,
		Category: category,
	}

	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(m.config.Mailtrap.APIURL)
	if err != nil {
		return fmt.Errorf("ошибка отправки письма: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("почтовый сервис вернул статус %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}

func (m *MailtrapClient) SendWelcomeEmail(ctx context.Context, email, name, profileURL string) error {
	return m.send(ctx, email, "Welcome to UnLinked", welcomeEmailTemplate(name, profileURL), "welcome")
}

func (m *MailtrapClient) SendCommentNotificationEmail(ctx context.Context, recipientEmail, recipientName, commenterName, postURL, commentContent string) error {
	return m.send(ctx, recipientEmail, "New comment on your post",
		commentNotificationEmailTemplate(recipientName, commenterName, postURL, commentContent), "comment_notification")
}

func (m *MailtrapClient) SendConnectionAcceptedEmail(ctx context.Context, recipientEmail, senderName, recipientName string) error {
	return m.send(ctx, recipientEmail, fmt.Sprintf("%s accepted your connection request", recipientName),
		connectionAcceptedEmailTemplate(senderName, recipientName), "connection_accepted")
}
