package play

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// DomainReport prefixes report digests. The version suffix allows the
// digest algorithm to change without colliding with old values.
const DomainReport = "playoracle/report/v1"

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// Digest computes a content hash over results in the given order.
// The digest changes whenever any resolved field or note changes.
func Digest(results []Result) (string, error) {
	list := make([]any, len(results))
	for i, r := range results {
		list[i] = r.CanonicalMap()
	}
	canonical, err := MarshalCanonical(list)
	if err != nil {
		return "", fmt.Errorf("digest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainReport, canonical), nil
}
