// Package keys holds the symmetric keys known to this process, addressed by
// their 64-bit key name.
package keys

import (
	"errors"
	"fmt"

	"github.com/go-i2p/go-casc/lib/util/logger"
	"github.com/samber/oops"
)

var log = logger.GetGoCascLogger()

// KeySize is the length of every key in the table.
const KeySize = 16

var (
	ErrKeyNotFound   = errors.New("encryption key not found")
	ErrZeroKeyName   = errors.New("key name 0 is reserved for the table sentinel")
	ErrDuplicateName = errors.New("duplicate key name")
)

// Key is a Salsa20 key.
type Key [KeySize]byte

// Entry names a key.
type Entry struct {
	Name uint64
	Key  Key
}

// Table is an immutable, sentinel-terminated list of keys. It is safe for
// concurrent use.
type Table struct {
	entries []Entry
}

// Builtin is the compiled-in key table.
var Builtin = &Table{entries: knownKeys[:]}

// NewTable copies entries into a new Table. Names must be non-zero and unique.
func NewTable(entries []Entry) (*Table, error) {
	seen := make(map[uint64]struct{}, len(entries))
	t := &Table{entries: make([]Entry, 0, len(entries)+1)}
	for _, e := range entries {
		if e.Name == 0 {
			return nil, ErrZeroKeyName
		}
		if _, ok := seen[e.Name]; ok {
			return nil, oops.Wrapf(ErrDuplicateName, "key %s", FormatName(e.Name))
		}
		seen[e.Name] = struct{}{}
		t.entries = append(t.entries, e)
	}
	t.entries = append(t.entries, Entry{})
	return t, nil
}

// Lookup returns the first key whose name matches. Name 0 never matches.
func (t *Table) Lookup(name uint64) (Key, bool) {
	if name == 0 {
		return Key{}, false
	}
	for i := 0; i < len(t.entries) && t.entries[i].Name != 0; i++ {
		if t.entries[i].Name == name {
			return t.entries[i].Key, true
		}
	}
	return Key{}, false
}

// Find is Lookup with an error for unknown names.
func (t *Table) Find(name uint64) (Key, error) {
	key, ok := t.Lookup(name)
	if !ok {
		log.WithField("key_name", FormatName(name)).Debug("Unknown key name")
		return Key{}, oops.Wrapf(ErrKeyNotFound, "key %s", FormatName(name))
	}
	return key, nil
}

// Names lists the key names in table order, without the sentinel.
func (t *Table) Names() []uint64 {
	names := make([]uint64, 0, len(t.entries))
	for _, e := range t.entries {
		if e.Name == 0 {
			break
		}
		names = append(names, e.Name)
	}
	return names
}

// Len returns the number of usable keys.
func (t *Table) Len() int {
	return len(t.Names())
}

// Lookup searches the built-in table.
func Lookup(name uint64) (Key, bool) {
	return Builtin.Lookup(name)
}

// FormatName renders a key name the way key lists publish them.
func FormatName(name uint64) string {
	return fmt.Sprintf("%016X", name)
}
