package checkout

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderID generates an opaque order identifier from the submission
// moment and a 6-character random suffix, both base36, uppercased.
// Uniqueness is probabilistic; collisions are not checked.
func NewOrderID(now time.Time) string {
	timestamp := strconv.FormatInt(now.UnixMilli(), 36)

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = base36Alphabet[rand.Intn(len(base36Alphabet))]
	}

	return strings.ToUpper("ORD-" + timestamp + "-" + string(suffix))
}
