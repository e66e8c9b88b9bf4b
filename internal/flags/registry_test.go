package flags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in   string
		want *Catalog
	}{
		{"RippleState", RippleState},
		{"ripple-state", RippleState},
		{"ripple_state", RippleState},
		{"  payment ", Payment},
		{"UNIVERSAL", Universal},
		{"signer-list", SignerList},
		{"AccountRoot", AccountRoot},
		{"mptoken", MPToken},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Lookup(tt.in)
			require.True(t, ok)
			assert.Same(t, tt.want, got)
		})
	}

	_, ok := Lookup("escrow")
	assert.False(t, ok)
}

func TestCatalogs(t *testing.T) {
	all := Catalogs()
	require.Len(t, all, 23)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Name(), all[i].Name())
	}
}
