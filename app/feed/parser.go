package feed

import (
	"bytes"
	"cmp"
	"fmt"

	"github.com/mmcdole/gofeed"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses raw feed data into normalized entries, in feed order. Summary
// text is carried exactly as published, HTML included.
func (p *Parser) Run(data []byte) ([]Entry, error) {
	parsed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		entries = append(entries, p.normalizeItem(item))
	}

	return entries, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item) Entry {
	entry := Entry{
		Title:     item.Title,
		Summary:   item.Description,
		Link:      cmp.Or(item.GUID, item.Link),
		Published: item.Published,
	}

	if item.PublishedParsed != nil {
		entry.PublishedAt = *item.PublishedParsed
	}

	return entry
}
