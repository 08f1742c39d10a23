package models

// Defaults served when no settings row has ever been written.
const (
	DefaultQuoteText   = "The more that you read, the more things you will know. The more that you learn, the more places you'll go."
	DefaultQuoteAuthor = "Dr. Seuss"

	// SiteSettingsID is the fixed id of the singleton settings row.
	SiteSettingsID = "general"
)

// SiteSettings is a singleton record holding site-wide content knobs.
type SiteSettings struct {
	ID          string `json:"-" gorm:"primaryKey;size:36"`
	QuoteText   string `json:"quoteText"`
	QuoteAuthor string `json:"quoteAuthor"`
}

// DefaultSiteSettings returns the built-in values.
func DefaultSiteSettings() SiteSettings {
	return SiteSettings{
		ID:          SiteSettingsID,
		QuoteText:   DefaultQuoteText,
		QuoteAuthor: DefaultQuoteAuthor,
	}
}

// SettingsUpdate is a partial settings update; nil fields are untouched.
type SettingsUpdate struct {
	QuoteText   *string `json:"quoteText"`
	QuoteAuthor *string `json:"quoteAuthor"`
}
