package importer

import (
	"crypto/sha256"
	"fmt"
)

// Hash fingerprints raw document bytes for duplicate-submission detection.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum)
}
