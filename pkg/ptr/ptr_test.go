package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	s := Ptr("cancelled by user")
	require.NotNil(t, s)
	assert.Equal(t, "cancelled by user", *s)

	n := Ptr(int64(42))
	require.NotNil(t, n)
	assert.Equal(t, int64(42), *n)
}

func TestDeref(t *testing.T) {
	assert.Equal(t, "confirmed", Deref(Ptr("confirmed")))
	assert.Equal(t, "", Deref[string](nil))
	assert.Equal(t, int64(0), Deref[int64](nil))
}
