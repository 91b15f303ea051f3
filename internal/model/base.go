package model

import (
	"time"
)

type (
	// A Model defines an object that can be stored in database.
	Model interface {
		// GetID returns the model's ID.
		GetID() string
		// SetID defines the model's ID.
		SetID(string)
		// SetCreatedAt defines the model's creation date.
		SetCreatedAt(time.Time)
		// SetUpdatedAt defines the model's last update date.
		SetUpdatedAt(time.Time)
	}

	// A Base contains the default model fields. The timestamps are local
	// bookkeeping and never rendered on the wire, the spreadsheet-style API
	// only exposes the named item columns.
	Base struct {
		ID        string     `json:"uuid" msgpack:"id"         storm:"id"`
		CreatedAt *time.Time `json:"-"    msgpack:"created_at" storm:"index"`
		UpdatedAt *time.Time `json:"-"    msgpack:"updated_at" storm:"index"`
	}
)

// GetID returns the model's ID.
func (m *Base) GetID() string {
	return m.ID
}

// SetID defines the model's ID.
func (m *Base) SetID(id string) {
	m.ID = id
}

// SetCreatedAt defines the model's creation date.
func (m *Base) SetCreatedAt(t time.Time) {
	m.CreatedAt = &t
}

// SetUpdatedAt defines the model's last update date.
func (m *Base) SetUpdatedAt(t time.Time) {
	m.UpdatedAt = &t
}
