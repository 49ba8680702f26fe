//go:build time

package libloc

import (
	"time"

	"github.com/ncruces/go-strftime"
)

// CreatedAtTime returns the database's creation time as a time.Time.
// Only built with the `time` tag; libloc itself never needs wall-clock
// arithmetic, this is purely a convenience formatter (SPEC_FULL.md §6).
func (l *Locations) CreatedAtTime() time.Time {
	return time.Unix(int64(l.header.createdAt), 0).UTC()
}

// CreatedAtString formats CreatedAtTime using a strftime layout.
func (l *Locations) CreatedAtString(layout string) string {
	return strftime.Format(layout, l.CreatedAtTime())
}
