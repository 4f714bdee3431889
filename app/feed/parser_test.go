package feed

import (
	"strings"
	"testing"
	"time"
)

const bbcStyleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
<channel>
<title>BBC News - England</title>
<link>https://www.bbc.co.uk/news/england</link>
<item>
    <title><![CDATA[Manchester Arena attack: Young survivors lack support, study finds]]></title>
    <description><![CDATA[Some young Manchester Arena attack survivors have not received professional support, research finds.]]></description>
    <link>https://www.bbc.co.uk/news/uk-england-manchester-65644397?at_medium=RSS&amp;at_campaign=KARANGA</link>
    <guid isPermaLink="false">https://www.bbc.co.uk/news/uk-england-manchester-65644397</guid>
    <pubDate>Mon, 22 May 2023 06:04:43 GMT</pubDate>
</item>
<item>
    <title><![CDATA[Laura Nuttall: Bucket list brain cancer fundraiser dies]]></title>
    <description><![CDATA[The 23-year-old was given 12 months to live five years ago and went on to complete a list of ambitions.]]></description>
    <link>https://www.bbc.co.uk/news/uk-england-lancashire-65460230?at_medium=RSS&amp;at_campaign=KARANGA</link>
    <guid isPermaLink="false">https://www.bbc.co.uk/news/uk-england-lancashire-65460230</guid>
    <pubDate>Mon, 22 May 2023 09:34:58 GMT</pubDate>
</item>
</channel>
</rss>`

func TestParseBBCStyleFeed(t *testing.T) {
	parser := NewParser()
	entries, err := parser.Run([]byte(bbcStyleRSS))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got: %d", len(entries))
	}

	first := entries[0]
	if first.Title != "Manchester Arena attack: Young survivors lack support, study finds" {
		t.Errorf("Unexpected title: %s", first.Title)
	}
	// The GUID is the canonical article URL; the <link> carries tracking params.
	if first.Link != "https://www.bbc.co.uk/news/uk-england-manchester-65644397" {
		t.Errorf("Expected guid as canonical link, got: %s", first.Link)
	}
	if first.Summary == "" {
		t.Error("Expected non-empty summary")
	}
	if first.Published != "Mon, 22 May 2023 06:04:43 GMT" {
		t.Errorf("Expected raw published string to be preserved, got: %s", first.Published)
	}

	expectedTime := time.Date(2023, 5, 22, 6, 4, 43, 0, time.UTC)
	if !first.PublishedAt.Equal(expectedTime) {
		t.Errorf("Expected published time %v, got: %v", expectedTime, first.PublishedAt)
	}

	second := entries[1]
	if second.Link != "https://www.bbc.co.uk/news/uk-england-lancashire-65460230" {
		t.Errorf("Expected guid as canonical link, got: %s", second.Link)
	}
}

func TestParsePreservesFeedOrder(t *testing.T) {
	parser := NewParser()
	entries, err := parser.Run([]byte(bbcStyleRSS))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if !strings.HasPrefix(entries[0].Title, "Manchester") {
		t.Errorf("Expected feed order to be preserved, first entry: %s", entries[0].Title)
	}
	if !strings.HasPrefix(entries[1].Title, "Laura") {
		t.Errorf("Expected feed order to be preserved, second entry: %s", entries[1].Title)
	}
}

func TestParseFallsBackToLink(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>No GUID here</title>
      <link>https://example.com/item1</link>
      <description>Description</description>
    </item>
  </channel>
</rss>`

	parser := NewParser()
	entries, err := parser.Run([]byte(rssData))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got: %d", len(entries))
	}
	if entries[0].Link != "https://example.com/item1" {
		t.Errorf("Expected link fallback, got: %s", entries[0].Link)
	}
}

func TestParseKeepsSummaryHTML(t *testing.T) {
	rssData := `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Item</title>
      <link>https://example.com/item1</link>
      <description><![CDATA[Some <b>bold</b> claims were made.]]></description>
    </item>
  </channel>
</rss>`

	parser := NewParser()
	entries, err := parser.Run([]byte(rssData))

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if entries[0].Summary != "Some <b>bold</b> claims were made." {
		t.Errorf("Expected HTML to be kept as published, got: %s", entries[0].Summary)
	}
}

func TestParseInvalidData(t *testing.T) {
	parser := NewParser()
	_, err := parser.Run([]byte("this is not a feed"))

	if err == nil {
		t.Fatal("Expected error for invalid feed data")
	}
}
