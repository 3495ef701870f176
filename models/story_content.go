// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"unicode/utf8"
)

const (
	// StoryContentDelimiter separates the title from the body inside a
	// story description.
	StoryContentDelimiter = "\n\n"

	// UntitledStory is the title shown for an empty description.
	UntitledStory = "Untitled"

	derivedTitleRunes = 50
	excerptRunes      = 150
)

// StoryContent is the decoded form of a story description.
//
// The wire format is "<title>\n\n<body>". The body may contain blank lines
// because decoding splits on the first delimiter only. The title is escaped
// on encode ("\" as "\\", newline as "\n") so a title can never contain the
// delimiter and a round trip is lossless.
type StoryContent struct {
	Title string
	Body  string
}

// Encode renders c in the wire format.
func (c StoryContent) Encode() string {
	return escapeTitle(c.Title) + StoryContentDelimiter + c.Body
}

// Excerpt returns the first 150 runes of the body followed by "..." when
// it was truncated.
func (c StoryContent) Excerpt() string {
	return truncateRunes(c.Body, excerptRunes)
}

// DecodeStoryContent splits a description into title and body.
//
// Descriptions without a delimiter, such as ones written by other clients,
// get a title derived from the first 50 runes and keep the whole text as
// body. An empty description decodes to [UntitledStory] with an empty body.
func DecodeStoryContent(description string) StoryContent {
	if description == "" {
		return StoryContent{Title: UntitledStory}
	}

	title, body, found := strings.Cut(description, StoryContentDelimiter)
	if !found {
		return StoryContent{
			Title: truncateRunes(description, derivedTitleRunes),
			Body:  description,
		}
	}

	return StoryContent{Title: unescapeTitle(title), Body: body}
}

func escapeTitle(title string) string {
	var sb strings.Builder
	sb.Grow(len(title))
	for _, r := range title {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// unescapeTitle reverses escapeTitle. Unknown escape sequences are kept
// verbatim so titles written by other clients still display.
func unescapeTitle(title string) string {
	if !strings.Contains(title, `\`) {
		return title
	}

	var sb strings.Builder
	sb.Grow(len(title))
	for i := 0; i < len(title); i++ {
		if title[i] != '\\' || i+1 == len(title) {
			sb.WriteByte(title[i])
			continue
		}
		switch title[i+1] {
		case '\\':
			sb.WriteByte('\\')
			i++
		case 'n':
			sb.WriteByte('\n')
			i++
		default:
			sb.WriteByte(title[i])
		}
	}
	return sb.String()
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
