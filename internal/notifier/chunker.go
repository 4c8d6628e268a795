package notifier

import (
	"strings"
	"unicode/utf8"
)

const (
	// Telegram rejects messages over 4096 characters; the margin leaves
	// room for page prefixes added by callers.
	telegramMaxMessage = 4096
	messageMargin      = 100

	// MaxChunkLen is the largest chunk Split produces by default.
	MaxChunkLen = telegramMaxMessage - messageMargin

	// ampersandWindow is how far back from the cut point a '&' is still
	// considered a reasonable break.
	ampersandWindow = 20
)

// Split breaks text into chunks of at most maxLen bytes. Cuts prefer the
// last newline past the midpoint of the window, then a trailing '&', then
// a hard cut backed off to a rune boundary. Concatenating the returned
// chunks always reproduces the input exactly.
func Split(text string, maxLen int) []string {
	if maxLen <= 0 {
		maxLen = MaxChunkLen
	}
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	rest := text
	for len(rest) > maxLen {
		cut := splitPoint(rest, maxLen)
		chunks = append(chunks, rest[:cut])
		rest = rest[cut:]
	}
	chunks = append(chunks, rest)
	return chunks
}

func splitPoint(s string, maxLen int) int {
	window := s[:maxLen]

	// Prefer breaking after a newline so entries stay intact, but only
	// when that keeps the chunk usefully large.
	if nl := strings.LastIndexByte(window, '\n'); nl > maxLen/2 {
		return nl + 1
	}

	// A '&' near the end usually marks an escaped entity about to start.
	if amp := strings.LastIndexByte(window, '&'); amp >= maxLen-ampersandWindow && amp > 0 {
		return amp
	}

	// Hard cut, backed off so a multi-byte rune is never split.
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		cut = maxLen
	}
	return cut
}

// bold tag and entity stripping for the plain-text retry path.
var htmlStripper = strings.NewReplacer(
	"<b>", "", "</b>", "",
	"&amp;", "&", "&lt;", "<", "&gt;", ">",
)

// StripHTML removes the bold markup and reverses the entity escaping used
// by the formatter, yielding text safe to send without a parse mode.
func StripHTML(text string) string {
	return htmlStripper.Replace(text)
}
