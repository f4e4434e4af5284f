package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinLookupEveryEntry(t *testing.T) {
	for _, e := range knownKeys {
		if e.Name == 0 {
			continue
		}
		key, ok := Lookup(e.Name)
		require.True(t, ok, "key %s", FormatName(e.Name))
		assert.Equal(t, e.Key, key)
	}
}

func TestBuiltinSentinel(t *testing.T) {
	last := knownKeys[len(knownKeys)-1]
	assert.Equal(t, uint64(0), last.Name)

	_, ok := Lookup(0)
	assert.False(t, ok, "sentinel must never match")
}

func TestBuiltinNamesUnique(t *testing.T) {
	names := Builtin.Names()
	assert.Equal(t, len(knownKeys)-1, len(names))
	assert.Equal(t, len(names), Builtin.Len())

	seen := make(map[uint64]bool)
	for _, n := range names {
		assert.NotZero(t, n)
		assert.False(t, seen[n], "duplicate key name %s", FormatName(n))
		seen[n] = true
	}
}

func TestLookupKnownKey(t *testing.T) {
	key, ok := Lookup(0xFB680CB6A8BF81F3)
	require.True(t, ok)
	assert.Equal(t, Key{0x62, 0xD9, 0x0E, 0xFA, 0x7F, 0x36, 0xD7, 0x1C, 0x39, 0x8A, 0xE2, 0xF1, 0xFE, 0x37, 0xBD, 0xB9}, key)
}

func TestFindUnknownKey(t *testing.T) {
	_, err := Builtin.Find(0x0123456789ABCDEF)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	key, err := Builtin.Find(0x2C547F26A2613E01)
	require.NoError(t, err)
	assert.Equal(t, byte(0x37), key[0])
}

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{"empty", nil, nil},
		{"single", []Entry{{Name: 1, Key: Key{1}}}, nil},
		{"zero name", []Entry{{Name: 0}}, ErrZeroKeyName},
		{"duplicate", []Entry{{Name: 5}, {Name: 5}}, ErrDuplicateName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.entries)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.entries), table.Len())
			for _, e := range tt.entries {
				key, ok := table.Lookup(e.Name)
				assert.True(t, ok)
				assert.Equal(t, e.Key, key)
			}
			_, ok := table.Lookup(0)
			assert.False(t, ok)
		})
	}
}

func TestFormatName(t *testing.T) {
	assert.Equal(t, "FB680CB6A8BF81F3", FormatName(0xFB680CB6A8BF81F3))
	assert.Equal(t, "000000000000000A", FormatName(10))
}
