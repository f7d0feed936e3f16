package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Supported lists the report languages. The first entry is the fallback.
var Supported = []language.Tag{
	language.Portuguese,
	language.English,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(Supported)

// Localizer translates report labels and formats numbers for one language.
type Localizer struct {
	Tag     language.Tag
	lang    string
	printer *message.Printer
}

// Resolve picks the best supported language from an explicit choice (query
// parameter) and the Accept-Language header, in that order.
func Resolve(explicit, acceptLanguage string) *Localizer {
	var tags []language.Tag
	if explicit != "" {
		if t, err := language.Parse(strings.TrimSpace(explicit)); err == nil {
			tags = append(tags, t)
		}
	}
	if acceptLanguage != "" {
		if parsed, _, err := language.ParseAcceptLanguage(acceptLanguage); err == nil {
			tags = append(tags, parsed...)
		}
	}

	_, idx, _ := matcher.Match(tags...)
	tag := Supported[idx]
	base, _ := tag.Base()

	return &Localizer{
		Tag:     tag,
		lang:    base.String(),
		printer: message.NewPrinter(tag),
	}
}

func (l *Localizer) Lang() string { return l.lang }

// T returns the label for key, falling back to Portuguese and then to the key.
func (l *Localizer) T(key string) string {
	if v, ok := catalog[l.lang][key]; ok {
		return v
	}
	if v, ok := catalog["pt"][key]; ok {
		return v
	}
	return key
}

// Number formats v with the given number of decimals in the locale's style.
func (l *Localizer) Number(v float64, decimals int) string {
	return l.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(decimals), number.MinFractionDigits(decimals)))
}
