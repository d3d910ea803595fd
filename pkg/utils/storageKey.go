package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStorageKey = fmt.Errorf("invalid storage key")

// GenerateStorageKey returns "{prefix}-{epochMillis}-{uuid}".
func GenerateStorageKey(prefix string) string {
	return generateStorageKey(prefix, time.Now())
}

func generateStorageKey(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), uuid.NewString())
}

// ParseStorageKey splits a key produced by GenerateStorageKey back into
// its prefix and creation time. The prefix must not contain '-'.
func ParseStorageKey(key string) (string, time.Time, error) {
	parts := strings.SplitN(key, "-", 3)
	if len(parts) != 3 || parts[0] == "" {
		return "", time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStorageKey, key)
	}
	millis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: bad timestamp in %q", ErrInvalidStorageKey, key)
	}
	if _, err := uuid.Parse(parts[2]); err != nil {
		return "", time.Time{}, fmt.Errorf("%w: bad id in %q", ErrInvalidStorageKey, key)
	}
	return parts[0], time.UnixMilli(millis), nil
}
