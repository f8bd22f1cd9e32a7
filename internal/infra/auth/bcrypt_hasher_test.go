package auth

import (
	"testing"

	"aeon/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, hasher.Check("admin123", hash))
	assert.False(t, hasher.Check("admin124", hash))
	assert.False(t, hasher.Check("admin123", "not-a-hash"))
}

func TestBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		wantCost int
	}{
		{
			name:     "configured cost",
			cfg:      &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}},
			wantCost: 5,
		},
		{
			name:     "out of range falls back to default",
			cfg:      &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}},
			wantCost: bcrypt.DefaultCost,
		},
		{
			name:     "nil config",
			cfg:      nil,
			wantCost: bcrypt.DefaultCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			assert.Equal(t, tt.wantCost, hasher.cost)
		})
	}
}

func TestBcryptHasher_CompatibleWithExistingHashes(t *testing.T) {
	// Rows written by the previous service used cost 10.
	legacy, err := bcrypt.GenerateFromPassword([]byte("user123"), 10)
	require.NoError(t, err)

	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})
	assert.True(t, hasher.Check("user123", string(legacy)))
}
