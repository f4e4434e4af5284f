package casc

import (
	"context"

	"github.com/samber/oops"
	"golang.org/x/sync/errgroup"
)

// DecryptFrames decrypts the frames of one file in parallel. frames[i] is
// decrypted as frame startIndex+i. At most workers frames are processed at
// once; workers <= 0 means no limit. The first failure cancels the frames
// that have not started yet.
func (d *Decryptor) DecryptFrames(ctx context.Context, frames [][]byte, startIndex uint32, workers int) ([][]byte, error) {
	out := make([][]byte, len(frames))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, data := range frames {
		i, data := i, data
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			plain, err := d.Decrypt(make([]byte, 0, len(data)), data, startIndex+uint32(i))
			if err != nil {
				return oops.Wrapf(err, "frame %d", i)
			}
			out[i] = plain
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).WithField("frames", len(frames)).Debug("Batch decryption failed")
		return nil, err
	}
	return out, nil
}

// DecryptFrames decrypts frames with the built-in key table.
func DecryptFrames(ctx context.Context, frames [][]byte, startIndex uint32, workers int) ([][]byte, error) {
	return defaultDecryptor.DecryptFrames(ctx, frames, startIndex, workers)
}
