package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresenceString(t *testing.T) {
	assert.Equal(t, "!help", presenceString("!", 0))
	assert.Equal(t, "!help | in 1 servers", presenceString("!", 1))
	assert.Equal(t, "v!help | in 42 servers", presenceString("v!", 42))
}
