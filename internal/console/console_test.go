package console

import (
	"bytes"
	"strings"
	"testing"
	"voice-api-smoke/internal/constants"

	"github.com/stretchr/testify/assert"
)

func TestBegin_TerminatorOnce(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)

	end := c.Begin("GET /")
	c.Println("body")
	end()
	end()

	assert.Equal(t, "--- Testing GET / ---\nbody\n"+constants.Terminator+"\n", buf.String())
	assert.Equal(t, 1, strings.Count(buf.String(), constants.Terminator))
}

func TestPrintf_AppendsNewline(t *testing.T) {
	var buf bytes.Buffer
	New(&buf).Printf("Status Code: %d", 200)
	assert.Equal(t, "Status Code: 200\n", buf.String())
}
