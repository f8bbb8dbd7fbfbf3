package contact

import (
	"errors"
	"fmt"
	"strings"
)

const emptyField = "—"

// FormatText renders a submission as the plain-text block shared by the chat
// and CRM-note integrations.
func FormatText(sub Submission, ictx IntegrationContext) string {
	return strings.Join([]string{
		"Нова заявка з сайту",
		"Імʼя: " + sub.Name,
		"Телефон: " + sub.Phone,
		"Email: " + orDash(sub.Email),
		"Бюджет: " + orDash(sub.Budget),
		"Канал звʼязку: " + sub.PreferredContact,
		"Повідомлення: " + sub.Message,
		"Файл: " + orDash(ictx.FileURL),
	}, "\n")
}

// Title renders the short one-line summary used as the CRM deal title and the
// webhook headline.
func Title(sub Submission) string {
	return fmt.Sprintf("Заявка з сайту: %s (%s)", sub.Name, sub.Phone)
}

func orDash(s string) string {
	if s == "" {
		return emptyField
	}
	return s
}

// normalizeError converts a recovered panic value into an error so a
// misbehaving sink is recorded like any other sink failure.
func normalizeError(v any, fallback string) error {
	switch e := v.(type) {
	case nil:
		return nil
	case error:
		return e
	case string:
		return errors.New(e)
	default:
		return fmt.Errorf("%s: %v", fallback, v)
	}
}
