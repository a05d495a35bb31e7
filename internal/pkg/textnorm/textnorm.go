// Package textnorm folds free text for accent- and case-insensitive matching,
// so "Alibág" matches a search for "alibag".
package textnorm

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
)

func Fold(s string) string {
	return strings.ToLower(strings.TrimSpace(unidecode.Unidecode(s)))
}
