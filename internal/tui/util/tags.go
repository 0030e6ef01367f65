package util

import (
	"strconv"
	"strings"
	"unicode"

	"pico-x/internal/tui/state"
)

// EditorTags describes how the editor's current text relates to the text it
// was opened with. Order is stable: Edited, Trimmed or Truncated, Over +N,
// Orig N, Mod N.
//
// Trimmed and Truncated are mutually exclusive: Trimmed when current equals a
// word-boundary cut of original at limit, Truncated when it equals a hard cut.
// Over +N counts how far current exceeds limit.
func EditorTags(original, current string, limit int, edited bool) []state.Tag {
	origLen := runeLen(original)
	curLen := runeLen(current)

	wsTrim := wordSafeTrim(original, limit)
	hardCut := hardTruncate(original, limit)
	shorter := origLen > curLen
	trimmed := shorter && current == wsTrim && wsTrim != hardCut
	truncated := !trimmed && shorter && current == hardCut

	tags := make([]state.Tag, 0, 6)
	if edited {
		tags = append(tags, state.Tag{Label: "Edited", Variant: "primary"})
	}
	if trimmed {
		tags = append(tags, state.Tag{Label: "Trimmed", Variant: "success"})
	}
	if truncated {
		tags = append(tags, state.Tag{Label: "Truncated", Variant: "danger"})
	}
	if limit > 0 && curLen > limit {
		tags = append(tags, state.Tag{Label: "Over +" + strconv.Itoa(curLen-limit), Variant: "warning"})
	}
	tags = append(tags,
		state.Tag{Label: "Orig " + strconv.Itoa(origLen), Variant: "muted"},
		state.Tag{Label: "Mod " + strconv.Itoa(curLen), Variant: "muted"},
	)
	return tags
}

// wordSafeTrim cuts s to at most limit runes at the last whitespace before
// the limit, falling back to a hard cut when there is none.
func wordSafeTrim(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	boundary := -1
	for i := 0; i < limit; i++ {
		if unicode.IsSpace(r[i]) {
			boundary = i
		}
	}
	if boundary >= 0 {
		return strings.TrimSpace(string(r[:boundary]))
	}
	return string(r[:limit])
}

func hardTruncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 || len(r) <= limit {
		return s
	}
	return string(r[:limit])
}

func runeLen(s string) int { return len([]rune(s)) }
