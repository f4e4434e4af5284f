package types

// Encrypter encrypts a buffer in one call.
type Encrypter interface {
	// Encrypt returns the ciphertext for data or nil and an error.
	Encrypt(data []byte) ([]byte, error)
}

// Decrypter decrypts a buffer in one call.
type Decrypter interface {
	// Decrypt returns the plaintext for data or nil and an error.
	Decrypt(data []byte) ([]byte, error)
}

// SymmetricKey is a secret key able to produce both directions of its cipher.
type SymmetricKey interface {
	// Len returns the key length in bytes.
	Len() int
	// Bytes returns the raw key material.
	Bytes() []byte
	NewEncrypter() (Encrypter, error)
	NewDecrypter() (Decrypter, error)
}
