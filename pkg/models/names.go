package models

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// identifierPattern is the shape of project names and normalized tags.
var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// IsIdentifier reports whether s starts with a lowercase letter or
// underscore and contains only lowercase letters, digits and underscores.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// Normalize lowercases a display name and joins its words with underscores.
// Hyphens count as word separators: "Push-Notifications" and
// "push notifications" both become "push_notifications".
func Normalize(s string) string {
	lower := cases.Lower(language.Und).String(strings.ReplaceAll(s, "-", " "))
	return strings.Join(strings.Fields(lower), "_")
}

// ClassName converts a normalized name into a PascalCase class stem.
func ClassName(normalized string) string {
	title := cases.Title(language.Und)
	var b strings.Builder
	for part := range strings.SplitSeq(normalized, "_") {
		if part == "" {
			continue
		}
		b.WriteString(title.String(part))
	}
	return b.String()
}

// VariableName converts a normalized name into a lowerCamelCase identifier.
func VariableName(normalized string) string {
	class := ClassName(normalized)
	if class == "" {
		return ""
	}
	return strings.ToLower(class[:1]) + class[1:]
}

// Title converts a normalized name into space separated title words.
func Title(normalized string) string {
	title := cases.Title(language.Und)
	return title.String(strings.Join(strings.Fields(strings.ReplaceAll(normalized, "_", " ")), " "))
}
