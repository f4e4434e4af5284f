package frame

// DeriveIV mixes a frame index into the low four bytes of the file IV so
// every frame of a file gets its own keystream.
func DeriveIV(iv [IVSize]byte, frameIndex uint32) [IVSize]byte {
	for i := 0; i < 4; i++ {
		iv[i] ^= byte(frameIndex >> (8 * i))
	}
	return iv
}
