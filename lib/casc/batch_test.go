package casc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecryptFrames(t *testing.T) {
	const start = 100
	plaintexts := make([][]byte, 20)
	frames := make([][]byte, len(plaintexts))
	for i := range plaintexts {
		plaintexts[i] = testPlaintext(10 + i*17)
		frames[i] = buildFrame(t, 0x87AEBBC9C4E6B601, testIV, uint32(start+i), plaintexts[i])
	}

	for _, workers := range []int{0, 1, 4} {
		out, err := DecryptFrames(context.Background(), frames, start, workers)
		require.NoError(t, err, "workers %d", workers)
		assert.Equal(t, plaintexts, out, "workers %d", workers)
	}
}

func TestDecryptFramesFailure(t *testing.T) {
	frames := [][]byte{
		buildFrame(t, 0x87AEBBC9C4E6B601, testIV, 0, []byte("ok")),
		{0},
	}
	out, err := DecryptFrames(context.Background(), frames, 0, 2)
	assert.ErrorIs(t, err, ErrFileCorrupt)
	assert.Equal(t, FileCorrupt, StatusOf(err))
	assert.Nil(t, out)
}

func TestDecryptFramesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames := [][]byte{buildFrame(t, 0x87AEBBC9C4E6B601, testIV, 0, []byte("x"))}
	_, err := DecryptFrames(ctx, frames, 0, 1)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, Unknown, StatusOf(err))
}

func TestDecryptFramesEmpty(t *testing.T) {
	out, err := DecryptFrames(context.Background(), nil, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}
