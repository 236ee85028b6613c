package events

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "*No content*", truncate("", 10))

	long := strings.Repeat("a", 50)
	assert.Equal(t, long[:10]+"...", truncate(long, 10))
}

func TestTruncateRuneBoundary(t *testing.T) {
	// 4-byte runes, so most limits land mid-rune
	long := strings.Repeat("🎫", 10)

	for limit := 1; limit < len(long); limit++ {
		got := truncate(long, limit)
		assert.True(t, utf8.ValidString(got), "truncate(%q, %v) = %q is not valid UTF-8", long, limit, got)
		assert.LessOrEqual(t, len(got), limit+len("..."))
	}

	// exact boundary keeps the whole rune
	assert.Equal(t, "🎫...", truncate(long, 4))
}
