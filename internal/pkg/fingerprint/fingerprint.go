package fingerprint

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Digester reduces opaque fingerprint templates from the kiosk sensor to a
// keyed digest. The digest is deterministic so enrolled employees can be
// looked up by an indexed column, and keyed so raw templates never reach the
// database and digests cannot be precomputed without the server key.
type Digester struct {
	key []byte
}

func NewDigester(key string) *Digester {
	return &Digester{key: []byte(key)}
}

// Digest returns the hex-encoded HMAC-SHA256 of the template.
func (d *Digester) Digest(template string) string {
	mac := hmac.New(sha256.New, d.key)
	mac.Write([]byte(template))
	return hex.EncodeToString(mac.Sum(nil))
}

// Match reports whether a scanned template corresponds to a stored digest.
func (d *Digester) Match(template string, storedDigest string) bool {
	return hmac.Equal([]byte(d.Digest(template)), []byte(storedDigest))
}
