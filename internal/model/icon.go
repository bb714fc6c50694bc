package model

import "strings"

// Icon is a Slack-style shortcode that formatters put at the start of a line.
type Icon string

const (
	IconMerged   Icon = ":merged:"
	IconClosed   Icon = ":no_entry_sign:"
	IconEdited   Icon = ":pencil2:"
	IconUpdated  Icon = ":leftwards_arrow_with_hook:"
	IconReady    Icon = ":wave:"
	IconMemo     Icon = ":memo:"
	IconResolved Icon = ":white_check_mark:"
	IconLocked   Icon = ":lock:"
	IconUnlocked Icon = ":unlock:"
	IconWarning  Icon = ":warning:"
	IconComment  Icon = ":speech_balloon:"
	IconApproved Icon = ":thumbsup:"
	IconChanges  Icon = ":thinking_face:"
	IconReviewed Icon = ":eyes:"
	IconReview   Icon = ":mag:"
	IconFork     Icon = ":gemini:"
	IconPush     Icon = ":eight_spoked_asterisk:"
)

var glyphs = map[Icon]string{
	IconMerged:   "🔀",
	IconClosed:   "🚫",
	IconEdited:   "✏️",
	IconUpdated:  "↩️",
	IconReady:    "👋",
	IconMemo:     "📝",
	IconResolved: "✅",
	IconLocked:   "🔒",
	IconUnlocked: "🔓",
	IconWarning:  "⚠️",
	IconComment:  "💬",
	IconApproved: "👍",
	IconChanges:  "🤔",
	IconReviewed: "👀",
	IconReview:   "🔍",
	IconFork:     "♊",
	IconPush:     "✳️",
}

var glyphReplacer = newGlyphReplacer()

func newGlyphReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(glyphs)*2)
	for icon, glyph := range glyphs {
		pairs = append(pairs, string(icon), glyph)
	}
	return strings.NewReplacer(pairs...)
}

// Glyph returns the emoji for the shortcode, or the shortcode itself if unknown.
func (i Icon) Glyph() string {
	if g, ok := glyphs[i]; ok {
		return g
	}
	return string(i)
}

// ReplaceIcons substitutes every known shortcode in text with its glyph.
func ReplaceIcons(text string) string {
	return glyphReplacer.Replace(text)
}
