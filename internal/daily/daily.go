// internal/daily/daily.go
//
// Deterministic daily puzzle selection.
// Every player gets the same word subset for a given UTC date; the
// subset is derived from HMAC-SHA256(salt, date) so it cannot be guessed
// without the server's salt.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"strconv"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Pick returns count distinct indices into a pool of size n, chosen
// deterministically for the date. The order is the draw order. If count
// exceeds n, all n indices are returned.
func Pick(date time.Time, salt string, n, count int) []int {
	if n <= 0 || count <= 0 {
		return nil
	}
	count = min(count, n)
	dk := DateKey(date)

	// Partial Fisher-Yates driven by the HMAC stream.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + int(draw(salt, dk, i)%uint64(n-i))
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:count]
}

// draw returns the i-th 64-bit value of the date's HMAC stream.
func draw(salt, dateKey string, i int) uint64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dateKey))
	if i > 0 {
		h.Write([]byte("#" + strconv.Itoa(i)))
	}
	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}
