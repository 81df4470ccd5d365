// ABOUTME: Structural RSS parser for the podcast feed
// ABOUTME: Tolerant of malformed XML, drops bad items instead of failing the feed

package rss

import (
	"strings"
	"time"

	coreerrors "episodes-app-api/core/errors"
	htmlutil "episodes-app-api/pkg/utils/html"
	"episodes-app-api/pkg/utils/timeutil"
)

// Item is one raw feed entry with fields extracted but not yet mapped to the
// episode domain model.
type Item struct {
	Title        string
	Description  string
	PubDate      string
	PublishedAt  time.Time
	Link         string
	EnclosureURL string
	ImageURL     string
	DurationRaw  string
	GUID         string
}

// Parse extracts the item records from a raw RSS document.
//
// The scan is structural rather than a full XML parse: the feed source is
// known and occasionally serves truncated or loosely-escaped documents, and
// a strict parser would reject the whole feed for one bad entry. A document
// with no recognizable items yields an empty slice, which callers interpret
// as "source unavailable".
//
// Items whose pubDate cannot be parsed are dropped individually; the
// corresponding *errors.ParseError values are returned for logging.
func Parse(raw string) ([]Item, []error) {
	blocks := itemBlocks(raw)
	items := make([]Item, 0, len(blocks))
	var dropped []error

	for _, block := range blocks {
		item := Item{
			Title:        htmlutil.Sanitize(tagContent(block, "title")),
			Description:  htmlutil.Sanitize(tagContent(block, "description")),
			PubDate:      strings.TrimSpace(tagContent(block, "pubDate")),
			Link:         strings.TrimSpace(tagContent(block, "link")),
			EnclosureURL: attrValue(block, "enclosure", "url"),
			ImageURL:     attrValue(block, "itunes:image", "href"),
			DurationRaw:  strings.TrimSpace(tagContent(block, "itunes:duration")),
			GUID:         strings.TrimSpace(htmlutil.StripCDATA(tagContent(block, "guid"))),
		}

		if item.GUID == "" {
			item.GUID = item.Link
		}

		item.PublishedAt = timeutil.ParseFlexibleTime(item.PubDate)
		if item.PublishedAt.IsZero() {
			dropped = append(dropped, &coreerrors.ParseError{
				Field:  "pubDate",
				Reason: "unparseable date " + quote(item.PubDate) + " for item " + quote(item.Title),
			})
			continue
		}

		items = append(items, item)
	}

	return items, dropped
}

// itemBlocks returns the inner content of every <item>...</item> block.
func itemBlocks(raw string) []string {
	var blocks []string
	rest := raw

	for {
		start := indexOpenTag(rest, "item")
		if start < 0 {
			break
		}
		rest = rest[start:]

		end := strings.Index(rest, "</item>")
		if end < 0 {
			// Truncated document; ignore the partial trailing block
			break
		}

		blocks = append(blocks, rest[:end])
		rest = rest[end+len("</item>"):]
	}

	return blocks
}

// indexOpenTag finds an opening tag and returns the offset just past its '>'.
// Matches both <tag> and <tag attr="...">, but not prefixes like <itemX>.
func indexOpenTag(s, tag string) int {
	offset := 0
	for {
		idx := strings.Index(s[offset:], "<"+tag)
		if idx < 0 {
			return -1
		}
		idx += offset

		after := idx + len(tag) + 1
		if after >= len(s) {
			return -1
		}

		switch s[after] {
		case '>':
			return after + 1
		case ' ', '\t', '\n', '\r':
			if gt := strings.Index(s[after:], ">"); gt >= 0 {
				return after + gt + 1
			}
			return -1
		}

		offset = idx + 1
	}
}

// tagContent extracts the inner text of the first occurrence of tag in block.
func tagContent(block, tag string) string {
	start := indexOpenTag(block, tag)
	if start < 0 {
		return ""
	}

	end := strings.Index(block[start:], "</"+tag+">")
	if end < 0 {
		return ""
	}

	return block[start : start+end]
}

// attrValue extracts a quoted attribute value from the first occurrence of
// tag in block. Works for self-closing tags like <enclosure url="..."/>.
func attrValue(block, tag, attr string) string {
	idx := strings.Index(block, "<"+tag)
	if idx < 0 {
		return ""
	}

	tagEnd := strings.Index(block[idx:], ">")
	if tagEnd < 0 {
		return ""
	}
	tagText := block[idx : idx+tagEnd]

	attrIdx := strings.Index(tagText, attr+"=\"")
	if attrIdx < 0 {
		return ""
	}

	valueStart := attrIdx + len(attr) + 2
	valueEnd := strings.Index(tagText[valueStart:], "\"")
	if valueEnd < 0 {
		return ""
	}

	return tagText[valueStart : valueStart+valueEnd]
}

func quote(s string) string {
	return "\"" + s + "\""
}
