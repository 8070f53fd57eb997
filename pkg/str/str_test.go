package str

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitTrim("a, b ,c", ","))
	assert.Equal(t, []string{"one"}, SplitTrim("  one  ", ","))
	assert.Nil(t, SplitTrim("   ", ","))
	assert.Nil(t, SplitTrim("", ","))
	assert.Equal(t, []string{"a", "b"}, SplitTrim("a,,b,", ","))
}

func TestJoinTrim(t *testing.T) {
	assert.Equal(t, "a,b", JoinTrim([]string{" a ", "", "b"}, ","))
	assert.Equal(t, "", JoinTrim(nil, ","))
}
