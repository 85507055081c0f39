package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAidsRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		aids []string
	}{
		{name: "nil slice", aids: nil},
		{name: "empty slice", aids: []string{}},
		{name: "ordered values", aids: []string{"a", "b", "c"}},
		{name: "values needing escaping", aids: []string{`say "hello"`, "line\nbreak", "记忆法"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := encodeMemoryAids(tt.aids)
			require.NoError(t, err)

			decoded, err := decodeMemoryAids(encoded)
			require.NoError(t, err)

			want := tt.aids
			if want == nil {
				want = []string{}
			}
			assert.Equal(t, want, decoded, "aids must round-trip losslessly in order")
		})
	}
}

func TestDecodeMemoryAids(t *testing.T) {
	t.Run("empty column reads as empty slice", func(t *testing.T) {
		aids, err := decodeMemoryAids("")
		require.NoError(t, err)
		assert.Equal(t, []string{}, aids)
	})

	t.Run("json null reads as empty slice", func(t *testing.T) {
		aids, err := decodeMemoryAids("null")
		require.NoError(t, err)
		assert.Equal(t, []string{}, aids)
	})

	t.Run("malformed json is an error", func(t *testing.T) {
		_, err := decodeMemoryAids("{not json")
		assert.Error(t, err)
	})
}
