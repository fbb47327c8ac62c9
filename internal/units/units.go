// Package units canonicalizes free-form billboard size and level labels
// into the fixed vocabulary used as pricing lookup keys.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	LevelStandard  = "عادي"
	LevelExcellent = "ممتاز"
	LevelVIP       = "VIP"
)

// Baseline customer categories. The live category list from the backend is
// merged on top of these, never replacing them.
var BaseCategories = []string{"عادي", "المدينة", "مسوق", "شركات"}

var levelSynonyms = map[string]string{
	"عادي":      LevelStandard,
	"standard":  LevelStandard,
	"normal":    LevelStandard,
	"ممتاز":     LevelExcellent,
	"premium":   LevelExcellent,
	"excellent": LevelExcellent,
	"vip":       LevelVIP,
}

// CanonicalizeSize normalizes a raw size string: separators x, * and × are
// equivalent, spaces ignored, and the dimension pair is order-insensitive
// (smaller number first, so "12x4" and "4x12" collapse to "4x12").
// Unrecognized input is returned verbatim so a fallback lookup keyed on the
// original string can still be attempted.
func CanonicalizeSize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "×", "x")
	s = strings.ReplaceAll(s, "*", "x")

	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return raw
	}
	a, errA := strconv.Atoi(parts[0])
	b, errB := strconv.Atoi(parts[1])
	if errA != nil || errB != nil {
		return raw
	}
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%dx%d", a, b)
}

// CanonicalizeLevel maps level synonyms into {عادي, ممتاز, VIP}.
// Empty or unknown input defaults to عادي.
func CanonicalizeLevel(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return LevelStandard
	}
	if level, ok := levelSynonyms[s]; ok {
		return level
	}
	return LevelStandard
}

// MergeCategories combines the static baseline with a dynamically fetched
// category list, preserving baseline order and dropping duplicates and blanks.
func MergeCategories(fetched []string) []string {
	seen := make(map[string]struct{}, len(BaseCategories)+len(fetched))
	merged := make([]string, 0, len(BaseCategories)+len(fetched))
	for _, c := range BaseCategories {
		seen[c] = struct{}{}
		merged = append(merged, c)
	}
	for _, c := range fetched {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		merged = append(merged, c)
	}
	return merged
}
