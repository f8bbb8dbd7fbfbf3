package contact

import (
	"net/mail"
	"regexp"
	"strings"
)

// phoneRe is the canonical phone rule: optional leading +, then digits and
// common separators, 6 to 20 characters total.
var phoneRe = regexp.MustCompile(`^\+?[0-9()\-\s]{6,20}$`)

// Field error messages are fixed Ukrainian strings, matching what the site
// has always shown under the form fields.
const (
	errName    = "Вкажіть імʼя"
	errPhone   = "Вкажіть номер телефону"
	errEmail   = "Некоректний email"
	errMessage = "Опишіть коротко ваш запит"
	errChannel = "Оберіть спосіб звʼязку"
)

var allowedChannels = map[string]struct{}{
	"phone":    {},
	"telegram": {},
	"email":    {},
}

// Validate checks a submission field by field. A nil result means the
// submission is valid; otherwise every offending field maps to one or more
// messages and no compliant field appears in the map.
func Validate(sub Submission) map[string][]string {
	errs := map[string][]string{}

	if len([]rune(strings.TrimSpace(sub.Name))) < 2 {
		errs["name"] = append(errs["name"], errName)
	}
	if !phoneRe.MatchString(strings.TrimSpace(sub.Phone)) {
		errs["phone"] = append(errs["phone"], errPhone)
	}
	// Empty email means "absent" and is valid.
	if sub.Email != "" {
		if _, err := mail.ParseAddress(sub.Email); err != nil {
			errs["email"] = append(errs["email"], errEmail)
		}
	}
	if len([]rune(strings.TrimSpace(sub.Message))) < 10 {
		errs["message"] = append(errs["message"], errMessage)
	}
	if _, ok := allowedChannels[sub.PreferredContact]; !ok {
		errs["preferredContact"] = append(errs["preferredContact"], errChannel)
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
