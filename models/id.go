package models

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// NewID returns a prefixed short identifier, e.g. "order_3f2a91bc".
func NewID(prefix string) string {
	u := uuid.New()
	return prefix + "_" + hex.EncodeToString(u[:])[:8]
}

// ParseTime parses client-supplied ISO-8601 timestamps. A trailing "Z" and an
// explicit "+00:00" offset are both accepted, as are timestamps without an
// offset and bare dates.
func ParseTime(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	var err error
	for _, layout := range layouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
