package salsa20

// Salsa20Decrypter implements the Decrypter interface using Salsa20/20
type Salsa20Decrypter struct {
	Key []byte
	IV  [IVSize]byte
}

// Decrypt returns data XORed with the keystream starting at block 0.
func (d *Salsa20Decrypter) Decrypt(data []byte) ([]byte, error) {
	log.WithField("data_length", len(data)).Debug("Decrypting data with Salsa20")

	out := make([]byte, len(data))
	if err := XORKeyStream(out, data, d.Key, &d.IV); err != nil {
		log.WithError(err).Error("Salsa20 decryption failed")
		return nil, err
	}

	log.WithField("plaintext_length", len(out)).Debug("Salsa20 decryption successful")
	return out, nil
}
