package notifier

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitFitsInOneChunk(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"short", "hello world"},
		{"exactly max", strings.Repeat("x", 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Split(tt.text, 100)
			require.Len(t, chunks, 1)
			assert.Equal(t, tt.text, chunks[0])
		})
	}
}

func TestSplitLossless(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain lines", strings.Repeat("line of report text\n", 50)},
		{"no newlines", strings.Repeat("abcdefgh", 100)},
		{"entities", strings.Repeat("S&amp;P 500 data ", 60)},
		{"multibyte", strings.Repeat("📊 emoji ", 80)},
		{"leading newlines", "\n\n\n" + strings.Repeat("x\n", 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Split(tt.text, 100)
			assert.Equal(t, tt.text, strings.Join(chunks, ""))
			for i, c := range chunks {
				assert.LessOrEqual(t, len(c), 100, "chunk %d", i)
			}
		})
	}
}

func TestSplitPrefersNewlineBoundary(t *testing.T) {
	// Entries of 20 bytes each, with a newline well past the midpoint of
	// the 100-byte window. Every chunk except the last should end on a
	// newline so entries are not cut mid-line.
	text := strings.Repeat(strings.Repeat("a", 19)+"\n", 20)
	chunks := Split(text, 100)
	require.Greater(t, len(chunks), 1)
	for i, c := range chunks[:len(chunks)-1] {
		assert.True(t, strings.HasSuffix(c, "\n"), "chunk %d should end on newline", i)
	}
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitIgnoresEarlyNewline(t *testing.T) {
	// The only newline sits before the midpoint, so the cut falls back to
	// a hard cut instead of producing a tiny chunk.
	text := "ab\n" + strings.Repeat("c", 200)
	chunks := Split(text, 100)
	require.Greater(t, len(chunks), 1)
	assert.Equal(t, 100, len(chunks[0]))
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitBreaksBeforeTrailingAmpersand(t *testing.T) {
	// A '&' five bytes before the limit with no usable newline: the cut
	// should land on the '&' so the entity is not severed.
	text := strings.Repeat("x", 95) + "&amp;" + strings.Repeat("y", 50)
	chunks := Split(text, 100)
	require.Greater(t, len(chunks), 1)
	assert.Equal(t, strings.Repeat("x", 95), chunks[0])
	assert.True(t, strings.HasPrefix(chunks[1], "&amp;"))
	assert.Equal(t, text, strings.Join(chunks, ""))
}

func TestSplitNeverCutsRunes(t *testing.T) {
	text := strings.Repeat("é", 300)
	for _, c := range Split(text, 101) {
		assert.True(t, utf8.ValidString(c))
	}
}

func TestSplitDefaultLimit(t *testing.T) {
	text := strings.Repeat("a line of text in the report\n", 500)
	for _, c := range Split(text, 0) {
		assert.LessOrEqual(t, len(c), MaxChunkLen)
	}
}

func TestStripHTML(t *testing.T) {
	in := "<b>AT&amp;T (T)</b> $12.34\n  1D: <b>+5.00%</b> | 1W: &lt;n/a&gt;"
	want := "AT&T (T) $12.34\n  1D: +5.00% | 1W: <n/a>"
	assert.Equal(t, want, StripHTML(in))
}
