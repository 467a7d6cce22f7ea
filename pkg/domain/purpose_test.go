package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "kycgate/pkg/domain-errors"
)

func TestParsePurpose(t *testing.T) {
	t.Run("accepts every declared purpose", func(t *testing.T) {
		for _, p := range Purposes() {
			parsed, err := ParsePurpose(string(p))
			require.NoError(t, err)
			assert.Equal(t, p, parsed)
		}
	})

	t.Run("rejects unknown purpose with coded error", func(t *testing.T) {
		_, err := ParsePurpose("crypto_wallet")
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeUnknownPurpose, dErrors.CodeOf(err))
	})

	t.Run("is case sensitive", func(t *testing.T) {
		_, err := ParsePurpose("Account_Opening_Savings")
		require.Error(t, err)
	})
}

func TestPurposeDisplayName(t *testing.T) {
	assert.Equal(t, "Open Savings Account", PurposeAccountOpeningSavings.DisplayName())

	// Every purpose has a display name.
	for _, p := range Purposes() {
		assert.NotEmpty(t, p.DisplayName(), "purpose %q", p)
	}
}
