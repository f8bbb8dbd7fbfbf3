// Package i18n provides the localized user-facing strings returned by the
// public API. The site serves Ukrainian, Polish and English visitors;
// Ukrainian is the default.
package i18n

import "golang.org/x/text/language"

// Messages holds every user-facing string for one locale.
type Messages struct {
	Locale            string
	SubmitSuccess     string
	SubmitPartial     string
	ValidationFailed  string
	InvalidForm       string
	SubmitFailed      string
	NoIntegrations    string
	IntegrationFailed string // fmt verb: sink name
}

var catalogs = map[string]Messages{
	"uk": {
		Locale:            "uk",
		SubmitSuccess:     "Дякуємо! Менеджер звʼяжеться з вами",
		SubmitPartial:     "Заявку збережено, але частина інтеграцій недоступна. Менеджер перевірить вручну.",
		ValidationFailed:  "Перевірте правильність заповнення форми",
		InvalidForm:       "Невалідні дані форми. Перевірте поля і спробуйте ще раз.",
		SubmitFailed:      "Сталася помилка при відправці заявки. Спробуйте ще раз.",
		NoIntegrations:    "Жодна інтеграція не налаштована, заявка збережена лише в базі",
		IntegrationFailed: "Інтеграція %s недоступна",
	},
	"pl": {
		Locale:            "pl",
		SubmitSuccess:     "Dziękujemy! Menedżer skontaktuje się z Tobą",
		SubmitPartial:     "Zgłoszenie zapisano, ale część integracji jest niedostępna. Menedżer sprawdzi je ręcznie.",
		ValidationFailed:  "Sprawdź poprawność wypełnienia formularza",
		InvalidForm:       "Nieprawidłowe dane formularza. Sprawdź pola i spróbuj ponownie.",
		SubmitFailed:      "Wystąpił błąd podczas wysyłania zgłoszenia. Spróbuj ponownie.",
		NoIntegrations:    "Żadna integracja nie jest skonfigurowana, zgłoszenie zapisano tylko w bazie",
		IntegrationFailed: "Integracja %s jest niedostępna",
	},
	"en": {
		Locale:            "en",
		SubmitSuccess:     "Thank you! A manager will contact you shortly",
		SubmitPartial:     "Your request was saved, but some integrations are unavailable. A manager will review it manually.",
		ValidationFailed:  "Please check the form fields",
		InvalidForm:       "Invalid form data. Check the fields and try again.",
		SubmitFailed:      "Something went wrong while sending your request. Please try again.",
		NoIntegrations:    "No integrations are configured, the request was saved to the database only",
		IntegrationFailed: "The %s integration is unavailable",
	},
}

var matcher = language.NewMatcher([]language.Tag{
	language.Ukrainian, // first tag is the fallback
	language.Polish,
	language.English,
})

// Resolve picks the message catalog for a request. The explicit locale (query
// parameter) wins over the Accept-Language header; anything unrecognized
// falls back to Ukrainian.
func Resolve(explicit, acceptLanguage string) Messages {
	if m, ok := catalogs[explicit]; ok {
		return m
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return catalogs["uk"]
	}
	_, idx, _ := matcher.Match(tags...)
	switch idx {
	case 1:
		return catalogs["pl"]
	case 2:
		return catalogs["en"]
	default:
		return catalogs["uk"]
	}
}

// Supported reports whether the locale code has a catalog.
func Supported(locale string) bool {
	_, ok := catalogs[locale]
	return ok
}
