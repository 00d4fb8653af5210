package calendar

import (
	"github.com/goodsign/monday"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is requested or matching fails.
var DefaultLocale = language.AmericanEnglish

var supportedLocales = []language.Tag{
	language.AmericanEnglish, // first entry is the matcher fallback
	language.BritishEnglish,
	language.German,
	language.Spanish,
	language.French,
}

var localeMatcher = language.NewMatcher(supportedLocales)

// longLayouts pairs each supported locale with its monday locale and long date layout.
// Month names in the layout are translated by monday.
var longLayouts = map[language.Tag]struct {
	locale monday.Locale
	layout string
}{
	language.AmericanEnglish: {monday.LocaleEnUS, "January 2, 2006"},
	language.BritishEnglish:  {monday.LocaleEnGB, "2 January 2006"},
	language.German:          {monday.LocaleDeDE, "2. January 2006"},
	language.Spanish:         {monday.LocaleEsES, "2 de January de 2006"},
	language.French:          {monday.LocaleFrFR, "2 January 2006"},
}

// SupportedLocales lists the locales FormatLong renders natively.
func SupportedLocales() []string {
	out := make([]string, len(supportedLocales))
	for i, tag := range supportedLocales {
		out[i] = tag.String()
	}
	return out
}

// MatchLocale resolves a BCP 47 string to the closest supported locale.
// Empty, malformed or unsupported input falls back to DefaultLocale.
func MatchLocale(locale string) language.Tag {
	if locale == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultLocale
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return DefaultLocale
	}
	return supportedLocales[idx]
}

// FormatLong renders d as a long-form date, e.g. "January 5, 2024" for en-US
// or "5 janvier 2024" for fr.
func FormatLong(d Date, locale string) string {
	f, ok := longLayouts[MatchLocale(locale)]
	if !ok {
		f = longLayouts[DefaultLocale]
	}
	return monday.Format(d.Time(), f.layout, f.locale)
}
