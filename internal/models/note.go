package models

import "time"

// Note represents a personal note. OwnerID is set at creation and never
// reassigned, not even through a full replace.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteWithOwner projects a note joined with limited owner fields for the
// list-with-owner endpoint.
type NoteWithOwner struct {
	Title      string    `json:"title"`
	OwnerID    string    `json:"ownerId"`
	CreatedAt  time.Time `json:"createdAt"`
	OwnerEmail string    `json:"ownerEmail"`
}

// NoteAggregate is the grouped join projection returned by the aggregate
// endpoint. The raw note id is deliberately omitted.
type NoteAggregate struct {
	OwnerID    string    `json:"ownerId"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"createdAt"`
	OwnerName  string    `json:"ownerName"`
	OwnerEmail string    `json:"ownerEmail"`
}

// NotePage bundles one page of notes with pagination metadata.
type NotePage struct {
	Notes      []Note `json:"notes"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	TotalNotes int    `json:"totalNotes"`
}
