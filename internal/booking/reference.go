package booking

import "crypto/rand"

// ReferenceLength is the fixed length of a booking reference.
const ReferenceLength = 8

// referenceAlphabet excludes lowercase so references are always uppercase
// and can be compared byte-for-byte.
const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewReference generates a booking reference: ReferenceLength uppercase
// alphanumeric characters drawn from crypto/rand.  Collisions are
// statistically negligible; the database still enforces uniqueness with a
// UNIQUE index, and the caller retries on a duplicate-key error.
func NewReference() (string, error) {
	buf := make([]byte, ReferenceLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return string(buf), nil
}
