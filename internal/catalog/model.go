// Package catalog serves the kitchen project catalog with per-locale titles
// and descriptions.
package catalog

// Project is one catalog entry. Title and description are stored per locale;
// price is the starting price per running meter.
type Project struct {
	ID            string  `json:"id"`
	Slug          *string `json:"slug"`
	TitleUK       *string `json:"-"`
	TitlePL       *string `json:"-"`
	TitleEN       *string `json:"-"`
	DescriptionUK *string `json:"-"`
	DescriptionPL *string `json:"-"`
	DescriptionEN *string `json:"-"`
	PriceStart    *int64  `json:"price_start"`
	ImageURL      *string `json:"image_url"`
	IsFeatured    bool    `json:"is_featured"`
}

// LocalizedProject is the API shape: one title/description pair resolved for
// the requested locale.
type LocalizedProject struct {
	ID          string  `json:"id"`
	Slug        *string `json:"slug"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PriceStart  *int64  `json:"price_start"`
	ImageURL    *string `json:"image_url"`
	IsFeatured  bool    `json:"is_featured"`
}

// Localize resolves the project text for a locale. Missing translations fall
// back uk → en → pl; a project with no titles at all gets a generic one.
func (p *Project) Localize(locale string) LocalizedProject {
	var title, desc *string
	switch locale {
	case "pl":
		title, desc = p.TitlePL, p.DescriptionPL
	case "en":
		title, desc = p.TitleEN, p.DescriptionEN
	default:
		title, desc = p.TitleUK, p.DescriptionUK
	}

	return LocalizedProject{
		ID:          p.ID,
		Slug:        p.Slug,
		Title:       firstNonEmpty(title, p.TitleUK, p.TitleEN, p.TitlePL, strPtr("Kitchen project")),
		Description: firstNonEmpty(desc, p.DescriptionUK, p.DescriptionEN, p.DescriptionPL, strPtr("")),
		PriceStart:  p.PriceStart,
		ImageURL:    p.ImageURL,
		IsFeatured:  p.IsFeatured,
	}
}

// NormalizeLocale maps arbitrary input to a supported catalog locale.
func NormalizeLocale(input string) string {
	switch input {
	case "pl", "en", "uk":
		return input
	}
	return "uk"
}

func firstNonEmpty(candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && *c != "" {
			return *c
		}
	}
	return ""
}

func strPtr(s string) *string { return &s }
