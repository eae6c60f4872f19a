package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHash_And_CompareHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{
			name:     "simple password",
			password: "secret1",
		},
		{
			name:     "password with special characters",
			password: "p@$$w0rd!#",
		},
		{
			name:     "long password",
			password: "a-rather-long-password-with-many-characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHash(tt.password)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)

			require.NoError(t, CompareHash(hash, tt.password))
		})
	}
}

func TestCompareHash_WrongPassword(t *testing.T) {
	hash, err := GetHash("correct-password")
	require.NoError(t, err)

	assert.Error(t, CompareHash(hash, "wrong-password"))
	assert.Error(t, CompareHash(hash, ""))
}

func TestGetHash_SamePasswordDifferentHashes(t *testing.T) {
	first, err := GetHash("secret1")
	require.NoError(t, err)
	second, err := GetHash("secret1")
	require.NoError(t, err)

	// bcrypt использует случайную соль
	assert.NotEqual(t, first, second)
}
