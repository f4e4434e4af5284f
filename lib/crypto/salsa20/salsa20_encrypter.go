package salsa20

// Salsa20Encrypter implements the Encrypter interface using Salsa20/20
type Salsa20Encrypter struct {
	Key []byte
	IV  [IVSize]byte
}

// Encrypt returns data XORed with the keystream starting at block 0.
func (e *Salsa20Encrypter) Encrypt(data []byte) ([]byte, error) {
	log.WithField("data_length", len(data)).Debug("Encrypting data with Salsa20")

	out := make([]byte, len(data))
	if err := XORKeyStream(out, data, e.Key, &e.IV); err != nil {
		log.WithError(err).Error("Salsa20 encryption failed")
		return nil, err
	}
	return out, nil
}
