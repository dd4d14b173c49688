package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKVEq(t *testing.T) {
	out := `
ID_MODEL=DataTraveler_3.0
ID_SERIAL_SHORT=0019E06B
# comment line
not-a-pair

ID_VENDOR= Kingston
`
	kv := ParseKVEq(out)
	assert.Equal(t, "DataTraveler_3.0", kv["ID_MODEL"])
	assert.Equal(t, "0019E06B", kv["ID_SERIAL_SHORT"])
	assert.Equal(t, "Kingston", kv["ID_VENDOR"])
	_, ok := kv["not-a-pair"]
	assert.False(t, ok)
}
