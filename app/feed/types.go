package feed

import (
	"time"
)

// Entry is one normalized article from a syndication feed, prior to
// enrichment. Link is the canonical article URL and doubles as the entry's
// identifier. Both representations of the publication time are kept: the
// live API serves PublishedAt, the store persists the feed's raw string.
type Entry struct {
	Title       string
	Summary     string
	Link        string
	PublishedAt time.Time
	Published   string
}
