package reports

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeSlug turns a project name into a file-name-safe slug.
// Example: "Laje Garagem Nº2" -> "laje-garagem-n2"
func MakeSlug(name string) string {
	stripped, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		stripped = name
	}

	base := strings.ToLower(strings.TrimSpace(stripped))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonSlug.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "project"
	}
	return base
}

// FileName builds the download name, e.g. "construlab-laje-garagem.pdf".
func FileName(projectName, ext string) string {
	return "construlab-" + MakeSlug(projectName) + "." + ext
}
