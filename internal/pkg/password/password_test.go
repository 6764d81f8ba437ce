//go:build unit

package password_test

import (
	"testing"

	"canteen-coupon/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCompare(t *testing.T) {
	hash, err := password.Hash("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)

	testCases := []struct {
		name  string
		hash  string
		plain string
		errIs error
	}{
		{name: "match", hash: hash, plain: "s3cret-pass"},
		{name: "mismatch", hash: hash, plain: "wrong", errIs: password.ErrMismatch},
		{name: "empty password", hash: hash, plain: "", errIs: password.ErrEmptyPassword},
		{name: "empty hash", hash: "", plain: "s3cret-pass", errIs: password.ErrMalformedHash},
		{name: "malformed hash", hash: "plain-text", plain: "s3cret-pass", errIs: password.ErrMalformedHash},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := password.Compare(tc.hash, tc.plain)
			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestHash(t *testing.T) {
	_, err := password.Hash("", bcrypt.MinCost)
	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestValidateHash(t *testing.T) {
	weak, err := password.Hash("s3cret-pass", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NoError(t, password.ValidateHash(weak, bcrypt.MinCost))
	assert.ErrorIs(t, password.ValidateHash(weak, password.MinConfiguredCost), password.ErrWeakHash)
	assert.ErrorIs(t, password.ValidateHash("not-bcrypt", bcrypt.MinCost), password.ErrMalformedHash)
}
