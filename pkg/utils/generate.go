package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateBookingID produces a collision-resistant booking identifier.
// Format: ATK-<millisecond timestamp, base36, uppercase>-<4 random chars>.
// The random suffix comes from a fresh UUID so two bookings in the same
// millisecond still differ.
func GenerateBookingID(now time.Time) string {
	timestamp := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return fmt.Sprintf("ATK-%s-%s", timestamp, randomSuffix(4))
}

func randomSuffix(length int) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	if length > len(raw) {
		length = len(raw)
	}
	return raw[:length]
}
