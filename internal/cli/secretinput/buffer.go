package secretinput

import "github.com/awnumar/memguard"

// Buffer wraps a secret payload with secure memory handling.
// Data is stored in mlock'd memory and encrypted at rest.
type Buffer struct {
	enclave *memguard.Enclave
}

// NewBuffer creates a new secure buffer from the given data.
// The input slice is securely zeroed after copying.
func NewBuffer(data []byte) *Buffer {
	if len(data) == 0 {
		return &Buffer{}
	}

	enclave := memguard.NewEnclave(data)

	// Securely zero the original data (prevents compiler optimization from skipping)
	memguard.WipeBytes(data)

	return &Buffer{enclave: enclave}
}

// String returns a copy of the decrypted payload.
func (b *Buffer) String() (string, error) {
	if b.enclave == nil {
		return "", nil
	}

	lb, err := b.enclave.Open()
	if err != nil {
		return "", err
	}

	defer lb.Destroy()

	return string(lb.Bytes()), nil
}

// IsEmpty returns true if the buffer contains no data.
func (b *Buffer) IsEmpty() bool {
	return b.enclave == nil
}
