package signature

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"

	"github.com/iudanet/routesync/internal/models"
)

// Digest returns the hex encoded BLAKE2b-256 hash of the raw trace. A cached
// signature is reused only while the digest of the source trace is unchanged.
func Digest(points models.Polyline) string {
	buf := make([]byte, 16*len(points))
	for i, p := range points {
		binary.LittleEndian.PutUint64(buf[i*16:], math.Float64bits(p.Lat))
		binary.LittleEndian.PutUint64(buf[i*16+8:], math.Float64bits(p.Lng))
	}
	sum := blake2b.Sum256(buf)
	return hex.EncodeToString(sum[:])
}
