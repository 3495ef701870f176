// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Story is a single user-authored post returned by the remote story API.
//
// CreatedAt is kept in its wire form (ISO-8601) so that records copied into
// the local store round-trip byte-for-byte; use [Story.CreatedTime] when a
// parsed value is needed.
type Story struct {
	// ID is the server-assigned identifier (e.g. "story-FvU4u0Vp2S3PMsFg").
	ID string `json:"id"`

	// Name is the author's display name.
	Name string `json:"name"`

	// Description holds the encoded title and body, see [StoryContent].
	Description string `json:"description"`

	// PhotoURL is an absolute URL of the attached photo.
	PhotoURL string `json:"photoUrl"`

	// CreatedAt is the ISO-8601 creation timestamp.
	CreatedAt string `json:"createdAt"`

	// Lat and Lon are optional coordinates; nil means the story has no location.
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// HasLocation reports whether both coordinates are present.
func (s Story) HasLocation() bool {
	return s.Lat != nil && s.Lon != nil
}

// CreatedTime parses CreatedAt. RFC 3339 with or without fractional seconds
// is accepted.
func (s Story) CreatedTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s.CreatedAt)
	if err != nil {
		return time.Time{}, fmt.Errorf("error parsing story created_at %q: %w", s.CreatedAt, err)
	}
	return t, nil
}

// Content decodes Description into its title and body.
func (s Story) Content() StoryContent {
	return DecodeStoryContent(s.Description)
}

// NewStory is the payload of a story submission.
type NewStory struct {
	// Title and Body are joined into the wire description by [StoryContent.Encode].
	Title string
	Body  string

	// Photo is the raw image; PhotoName and PhotoContentType describe it.
	Photo            []byte
	PhotoName        string
	PhotoContentType string

	Lat *float64
	Lon *float64
}

// Description returns the encoded wire description of the submission.
func (n NewStory) Description() string {
	return StoryContent{Title: n.Title, Body: n.Body}.Encode()
}

// StoryListQuery holds the paging parameters of GET /stories.
type StoryListQuery struct {
	Page         int
	Size         int
	WithLocation bool
}
