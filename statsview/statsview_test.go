package statsview

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestURL(t *testing.T) {
	assert.Equal(t, "http://localhost:12600/debug/statsview", URL(DefaultAddress))
	assert.Equal(t, "http://0.0.0.0:9000/debug/statsview", URL("0.0.0.0:9000"))
}
