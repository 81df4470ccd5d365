// ABOUTME: HTML utilities for stripping tags, CDATA wrappers and entities
// ABOUTME: Used to sanitize titles and descriptions coming out of feed XML

package html

import (
	"strings"
)

// StripCDATA removes a surrounding <![CDATA[...]]> wrapper if present.
func StripCDATA(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "<![CDATA[") && strings.HasSuffix(trimmed, "]]>") {
		return trimmed[len("<![CDATA[") : len(trimmed)-len("]]>")]
	}
	return trimmed
}

// StripHTML removes HTML tags and decodes common entities from a string.
// A structural scan rather than a full HTML parser; feed titles and
// descriptions only carry simple inline markup.
func StripHTML(html string) string {
	text := html

	// Remove script and style content
	text = strings.ReplaceAll(text, "<script>", "<script><!--")
	text = strings.ReplaceAll(text, "</script>", "--></script>")
	text = strings.ReplaceAll(text, "<style>", "<style><!--")
	text = strings.ReplaceAll(text, "</style>", "--></style>")

	// Remove HTML tags
	for strings.Contains(text, "<") && strings.Contains(text, ">") {
		start := strings.Index(text, "<")
		end := strings.Index(text, ">")
		if start < end && start >= 0 && end >= 0 {
			text = text[:start] + " " + text[end+1:]
		} else {
			break
		}
	}

	text = DecodeEntities(text)
	text = strings.TrimSpace(text)

	// Replace multiple spaces with single space
	for strings.Contains(text, "  ") {
		text = strings.ReplaceAll(text, "  ", " ")
	}

	return text
}

// Sanitize strips CDATA wrappers, HTML tags and entities in one pass.
func Sanitize(text string) string {
	return StripHTML(StripCDATA(text))
}

// DecodeEntities decodes common HTML entities
func DecodeEntities(text string) string {
	replacements := map[string]string{
		"&nbsp;":   " ",
		"&amp;":    "&",
		"&lt;":     "<",
		"&gt;":     ">",
		"&quot;":   "\"",
		"&#39;":    "'",
		"&apos;":   "'",
		"&#8230;":  "...",
		"&#8217;":  "'",
		"&#8220;":  "\"",
		"&#8221;":  "\"",
		"&ldquo;":  "\"",
		"&rdquo;":  "\"",
		"&lsquo;":  "'",
		"&rsquo;":  "'",
		"&mdash;":  "-",
		"&ndash;":  "-",
		"&hellip;": "...",
	}

	result := text
	for entity, replacement := range replacements {
		result = strings.ReplaceAll(result, entity, replacement)
	}

	return result
}
