// Package identifier derives per-platform application identifiers from a
// single organization identifier.
package identifier

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/modu-ai/flutterkit/pkg/models"
)

// Derive computes the Android and iOS application identifiers for org.
// Both platforms currently share one rule: underscores are removed and the
// result is case-folded to lowercase. An empty org yields empty identifiers.
func Derive(org string) models.DerivedIdentifiers {
	id := normalize(org)
	return models.DerivedIdentifiers{
		Android: id,
		IOS:     id,
	}
}

func normalize(org string) string {
	org = strings.TrimSpace(org)
	if org == "" {
		return ""
	}
	// cases.Caser keeps state and is not safe for concurrent use.
	return cases.Fold().String(strings.ReplaceAll(org, "_", ""))
}
