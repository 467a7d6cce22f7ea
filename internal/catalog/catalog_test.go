package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kycgate/pkg/domain"
	dErrors "kycgate/pkg/domain-errors"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		entries map[domain.Purpose][]Requirement
		reason  string
	}{
		{
			name: "unknown kind",
			entries: map[domain.Purpose][]Requirement{
				domain.PurposeAddressUpdate: {
					{Kind: "ration_card", Mandatory: true, MinConfidence: 0.7},
				},
			},
			reason: "unknown document kind",
		},
		{
			name: "min confidence above one",
			entries: map[domain.Purpose][]Requirement{
				domain.PurposeAddressUpdate: {
					{Kind: domain.KindAadhaar, Mandatory: true, MinConfidence: 1.2},
				},
			},
			reason: "min_confidence outside [0,1]",
		},
		{
			name: "min confidence negative",
			entries: map[domain.Purpose][]Requirement{
				domain.PurposeAddressUpdate: {
					{Kind: domain.KindAadhaar, MinConfidence: -0.1},
				},
			},
			reason: "min_confidence outside [0,1]",
		},
		{
			name: "mandatory with zero floor",
			entries: map[domain.Purpose][]Requirement{
				domain.PurposeAddressUpdate: {
					{Kind: domain.KindAadhaar, Mandatory: true, MinConfidence: 0},
				},
			},
			reason: "mandatory entry requires min_confidence > 0",
		},
		{
			name: "duplicate kind",
			entries: map[domain.Purpose][]Requirement{
				domain.PurposeAddressUpdate: {
					{Kind: domain.KindAadhaar, Mandatory: true, MinConfidence: 0.7},
					{Kind: domain.KindAadhaar, Mandatory: false, MinConfidence: 0.5},
				},
			},
			reason: "duplicate kind for purpose",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.reason, cfgErr.Reason)
		})
	}
}

func TestRequirementsFor(t *testing.T) {
	cat := Default()

	t.Run("unknown purpose", func(t *testing.T) {
		_, err := cat.RequirementsFor(domain.Purpose("crypto_wallet"))
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeUnknownPurpose, dErrors.CodeOf(err))
	})

	t.Run("returns a copy", func(t *testing.T) {
		reqs, err := cat.RequirementsFor(domain.PurposeAccountOpeningSavings)
		require.NoError(t, err)
		require.NotEmpty(t, reqs)

		reqs[0].Kind = "tampered"
		again, err := cat.RequirementsFor(domain.PurposeAccountOpeningSavings)
		require.NoError(t, err)
		assert.NotEqual(t, domain.DocumentKind("tampered"), again[0].Kind)
	})

	t.Run("order follows configuration", func(t *testing.T) {
		reqs, err := cat.RequirementsFor(domain.PurposeAccountOpeningSavings)
		require.NoError(t, err)
		assert.Equal(t, domain.KindPAN, reqs[0].Kind)
		assert.Equal(t, domain.KindAadhaar, reqs[1].Kind)
	})
}

func TestDefault(t *testing.T) {
	cat := Default()

	// Every supported purpose has a checklist.
	for _, p := range domain.Purposes() {
		reqs, err := cat.RequirementsFor(p)
		require.NoError(t, err, "purpose %q", p)
		assert.NotEmpty(t, reqs, "purpose %q", p)
	}

	t.Run("savings mandates pan and aadhaar", func(t *testing.T) {
		pan, ok := cat.Lookup(domain.PurposeAccountOpeningSavings, domain.KindPAN)
		require.True(t, ok)
		assert.True(t, pan.Mandatory)
		assert.InDelta(t, 0.75, pan.MinConfidence, 1e-9)

		aadhaar, ok := cat.Lookup(domain.PurposeAccountOpeningSavings, domain.KindAadhaar)
		require.True(t, ok)
		assert.True(t, aadhaar.Mandatory)
	})

	t.Run("photograph is optional for savings", func(t *testing.T) {
		photo, ok := cat.Lookup(domain.PurposeAccountOpeningSavings, domain.KindPhotograph)
		require.True(t, ok)
		assert.False(t, photo.Mandatory)
	})
}

func TestLookup(t *testing.T) {
	cat := Default()

	_, ok := cat.Lookup(domain.PurposeAddressUpdate, domain.KindGSTCertificate)
	assert.False(t, ok)

	_, ok = cat.Lookup(domain.Purpose("crypto_wallet"), domain.KindPAN)
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, `
purposes:
  address_update:
    - kind: aadhaar
      mandatory: true
      min_confidence: 0.7
    - kind: utility_bill
      mandatory: false
      min_confidence: 0.5
`)
		cat, err := Load(path)
		require.NoError(t, err)

		reqs, err := cat.RequirementsFor(domain.PurposeAddressUpdate)
		require.NoError(t, err)
		require.Len(t, reqs, 2)
		assert.Equal(t, domain.KindAadhaar, reqs[0].Kind)
		assert.True(t, reqs[0].Mandatory)
	})

	t.Run("unknown purpose fails", func(t *testing.T) {
		path := writeFile(t, `
purposes:
  crypto_wallet:
    - kind: pan
      mandatory: true
      min_confidence: 0.7
`)
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("invalid entry fails", func(t *testing.T) {
		path := writeFile(t, `
purposes:
  address_update:
    - kind: aadhaar
      mandatory: true
      min_confidence: 1.4
`)
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("empty file fails", func(t *testing.T) {
		path := writeFile(t, "")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
}
