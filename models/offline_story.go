// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OfflineStory is a story submission queued locally because it could not be
// sent. TempID is assigned by the store and is unique for the lifetime of
// the database; ids are never reused after deletion.
type OfflineStory struct {
	TempID int64

	Description      string
	Photo            []byte
	PhotoName        string
	PhotoContentType string
	Lat              *float64
	Lon              *float64

	// Timestamp is the client capture time in milliseconds since epoch.
	Timestamp int64

	// Synced is false for every record written by the client.
	Synced bool
}

// ToNewStory turns a queued record back into a submission payload.
// Descriptions produced by [OfflineStoryFromNew] encode back to the same
// text.
func (o OfflineStory) ToNewStory() NewStory {
	content := DecodeStoryContent(o.Description)
	return NewStory{
		Title:            content.Title,
		Body:             content.Body,
		Photo:            o.Photo,
		PhotoName:        o.PhotoName,
		PhotoContentType: o.PhotoContentType,
		Lat:              o.Lat,
		Lon:              o.Lon,
	}
}

// OfflineStoryFromNew captures a submission for the offline queue.
func OfflineStoryFromNew(n NewStory) OfflineStory {
	return OfflineStory{
		Description:      n.Description(),
		Photo:            n.Photo,
		PhotoName:        n.PhotoName,
		PhotoContentType: n.PhotoContentType,
		Lat:              n.Lat,
		Lon:              n.Lon,
	}
}
