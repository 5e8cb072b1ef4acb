package testutil

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Blake2bHex returns the BLAKE2b-512 digest of data as a lowercase hex string.
// Matches the digest format stored in the record table.
func Blake2bHex(data []byte) string {
	h := blake2b.Sum512(data)
	return hex.EncodeToString(h[:])
}
