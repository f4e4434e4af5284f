package salsa20

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	refsalsa "golang.org/x/crypto/salsa20"
	"golang.org/x/crypto/salsa20/salsa"
)

func testKey(n int) []byte {
	key := make([]byte, n)
	for i := range key {
		key[i] = byte(i*7 + 1)
	}
	return key
}

var testIV = [IVSize]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

func TestKeyStream32MatchesReference(t *testing.T) {
	key := testKey(KeySize32)
	var key32 [32]byte
	copy(key32[:], key)

	for _, n := range []int{0, 1, 63, 64, 65, 128, 200, 1000} {
		src := bytes.Repeat([]byte{0xA5}, n)

		want := make([]byte, n)
		refsalsa.XORKeyStream(want, src, testIV[:], &key32)

		got := make([]byte, n)
		require.NoError(t, XORKeyStream(got, src, key, &testIV))
		assert.Equal(t, want, got, "length %d", n)
	}
}

// eSTREAM Salsa20/20 128-bit key, set 1, vector 0.
func TestKnownAnswer16ByteKey(t *testing.T) {
	key := make([]byte, KeySize16)
	key[0] = 0x80
	var iv [IVSize]byte

	want, err := hex.DecodeString("4DFA5E481DA23EA09A31022050859936" +
		"DA52FCEE218005164F267CB65F5CFD7F" +
		"2B4F97E0FF16924A52DF269515110A07" +
		"F9E460BC65EF95DA58F740B7D1DBB0AA")
	require.NoError(t, err)

	c, err := New(key, &iv)
	require.NoError(t, err)
	got := make([]byte, BlockSize)
	c.KeyStream(got)
	assert.Equal(t, want, got)

	xored := make([]byte, BlockSize)
	require.NoError(t, XORKeyStream(xored, make([]byte, BlockSize), key, &iv))
	assert.Equal(t, want, xored)
}

func TestBlock16ByteKeyMatchesCore(t *testing.T) {
	key := testKey(KeySize16)
	c, err := New(key, &testIV)
	require.NoError(t, err)

	var ks [BlockSize]byte
	c.block(&ks)

	// HSalsa20 exposes words 0,5,10,15,6,7,8,9 of the permuted matrix
	// before the feed-forward addition.
	var in [16]byte
	copy(in[:8], testIV[:])
	var k32 [32]byte
	copy(k32[:16], key)
	copy(k32[16:], key)
	var permuted [32]byte
	salsa.HSalsa20(&permuted, &in, &k32, &tau)

	for j, w := range []int{0, 5, 10, 15, 6, 7, 8, 9} {
		want := binary.LittleEndian.Uint32(permuted[j*4:]) + c.state[w]
		got := binary.LittleEndian.Uint32(ks[w*4:])
		assert.Equal(t, want, got, "word %d", w)
	}
}

func TestKeySchedule16RepeatsKey(t *testing.T) {
	key := testKey(KeySize16)
	c, err := New(key, &testIV)
	require.NoError(t, err)

	assert.Equal(t, c.state[1:5], c.state[11:15])
	assert.Equal(t, binary.LittleEndian.Uint32([]byte("expa")), c.state[0])
	assert.Equal(t, binary.LittleEndian.Uint32([]byte("nd 1")), c.state[5])
	assert.Equal(t, binary.LittleEndian.Uint32([]byte("6-by")), c.state[10])
	assert.Equal(t, binary.LittleEndian.Uint32([]byte("te k")), c.state[15])
	assert.Equal(t, uint32(0x04030201), c.state[6])
	assert.Equal(t, uint32(0x08070605), c.state[7])
	assert.Equal(t, uint64(0), c.Counter())
	assert.Equal(t, Rounds, c.rounds)
}

func TestCounterCarry(t *testing.T) {
	key := testKey(KeySize32)
	var key32 [32]byte
	copy(key32[:], key)

	c, err := New(key, &testIV)
	require.NoError(t, err)
	c.SetCounter(0xFFFFFFFF)

	src := make([]byte, 3*BlockSize)
	got := make([]byte, len(src))
	c.XORKeyStream(got, src)

	var counter [16]byte
	copy(counter[:8], testIV[:])
	binary.LittleEndian.PutUint64(counter[8:], 0xFFFFFFFF)
	want := make([]byte, len(src))
	salsa.XORKeyStream(want, src, &counter, &key32)

	assert.Equal(t, want, got)
	assert.Equal(t, uint64(0x100000002), c.Counter())
	assert.Equal(t, uint32(2), c.state[8])
	assert.Equal(t, uint32(1), c.state[9])
}

func TestPartialBlockDiscardsRemainder(t *testing.T) {
	key := testKey(KeySize16)

	full, err := New(key, &testIV)
	require.NoError(t, err)
	stream := make([]byte, 2*BlockSize)
	full.KeyStream(stream)

	c, err := New(key, &testIV)
	require.NoError(t, err)
	first := make([]byte, 10)
	second := make([]byte, 10)
	c.KeyStream(first)
	c.KeyStream(second)

	assert.Equal(t, stream[:10], first)
	assert.Equal(t, stream[BlockSize:BlockSize+10], second)
	assert.Equal(t, uint64(2), c.Counter())
}

func TestXORKeyStreamIsInvolution(t *testing.T) {
	for _, size := range []int{KeySize16, KeySize32} {
		key := testKey(size)
		for _, n := range []int{1, 17, 64, 129, 4096} {
			plaintext := make([]byte, n)
			for i := range plaintext {
				plaintext[i] = byte(i)
			}
			ciphertext := make([]byte, n)
			require.NoError(t, XORKeyStream(ciphertext, plaintext, key, &testIV))
			if n >= 16 {
				assert.NotEqual(t, plaintext, ciphertext)
			}

			roundTrip := make([]byte, n)
			require.NoError(t, XORKeyStream(roundTrip, ciphertext, key, &testIV))
			assert.Equal(t, plaintext, roundTrip, "key %d length %d", size, n)
		}
	}
}

func TestKeyStreamXORItselfIsZero(t *testing.T) {
	key := testKey(KeySize16)
	a := make([]byte, 300)
	b := make([]byte, 300)

	c1, err := New(key, &testIV)
	require.NoError(t, err)
	c1.KeyStream(a)
	c2, err := New(key, &testIV)
	require.NoError(t, err)
	c2.KeyStream(b)

	assert.Equal(t, a, b)
	for i := range a {
		a[i] ^= b[i]
	}
	assert.Equal(t, make([]byte, 300), a)
}

func TestInPlace(t *testing.T) {
	key := testKey(KeySize16)
	data := bytes.Repeat([]byte("casc"), 50)
	want := make([]byte, len(data))
	require.NoError(t, XORKeyStream(want, data, key, &testIV))

	require.NoError(t, XORKeyStream(data, data, key, &testIV))
	assert.Equal(t, want, data)
}

func TestInvalidKeySize(t *testing.T) {
	for _, n := range []int{0, 8, 15, 17, 24, 31, 33} {
		_, err := New(make([]byte, n), &testIV)
		assert.ErrorIs(t, err, ErrInvalidKeySize, "key size %d", n)
	}
}

func TestShortOutput(t *testing.T) {
	key := testKey(KeySize16)
	err := XORKeyStream(make([]byte, 3), make([]byte, 4), key, &testIV)
	assert.ErrorIs(t, err, ErrShortOutput)

	c, err := New(key, &testIV)
	require.NoError(t, err)
	assert.Panics(t, func() {
		c.XORKeyStream(make([]byte, 3), make([]byte, 4))
	})
}

func TestSalsa20KeyEncrypterDecrypter(t *testing.T) {
	key := &Salsa20Key{Key: testKey(KeySize16), IV: testIV}
	assert.Equal(t, KeySize16, key.Len())
	assert.Equal(t, key.Key, key.Bytes())

	enc, err := key.NewEncrypter()
	require.NoError(t, err)
	dec, err := key.NewDecrypter()
	require.NoError(t, err)

	testCases := []struct {
		name      string
		plaintext []byte
	}{
		{"Empty", []byte{}},
		{"Short", []byte("Hello, CASC!")},
		{"Exact block", bytes.Repeat([]byte("B"), BlockSize)},
		{"Long", bytes.Repeat([]byte("C"), 1000)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ciphertext, err := enc.Encrypt(tc.plaintext)
			require.NoError(t, err)
			assert.Len(t, ciphertext, len(tc.plaintext))

			plaintext, err := dec.Decrypt(ciphertext)
			require.NoError(t, err)
			assert.Equal(t, tc.plaintext, plaintext)
		})
	}
}

func TestSalsa20KeyRejectsBadLength(t *testing.T) {
	key := &Salsa20Key{Key: make([]byte, 20)}
	_, err := key.NewEncrypter()
	assert.ErrorIs(t, err, ErrInvalidKeySize)
	_, err = key.NewDecrypter()
	assert.ErrorIs(t, err, ErrInvalidKeySize)
}

func BenchmarkXORKeyStream16(b *testing.B) {
	key := testKey(KeySize16)
	src := make([]byte, 64*1024)
	dst := make([]byte, len(src))
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = XORKeyStream(dst, src, key, &testIV)
	}
}
