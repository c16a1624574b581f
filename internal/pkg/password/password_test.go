package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, Verify("secret123", hash))
	assert.False(t, Verify("wrong", hash))
}

func TestVerify_EmptyHash(t *testing.T) {
	assert.False(t, Verify("anything", ""))
}

func TestValidate(t *testing.T) {
	assert.True(t, Validate("123456"))
	assert.True(t, Validate("a-much-longer-password"))
	assert.False(t, Validate("12345"))
	assert.False(t, Validate(""))
}
