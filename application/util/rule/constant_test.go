package rule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsWhitespace(t *testing.T) {
	for _, c := range []byte{' ', '\t', '\r', '\n', 0x0B, 0x0C} {
		assert.True(t, IsWhitespace(c), "%q", c)
	}
	for _, c := range []byte{'a', '/', ':', '0', 0} {
		assert.False(t, IsWhitespace(c), "%q", c)
	}
}
