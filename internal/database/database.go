package database

import (
	"github.com/gudangapp/gudang/internal/model"
)

type (
	// A Client can interacts with the database.
	Client interface {
		// Save inserts or updates the entry in database with the given model.
		Save(m model.Model) error
		// Delete deletes the entry in database with the given model.
		Delete(m model.Model) error
		// Close the database.
		Close() error
		// IsNotFound returns true if err is a not found error.
		IsNotFound(err error) bool

		ItemInteraction
	}

	// An ItemInteraction defines all the methods used to interact with item record(s).
	ItemInteraction interface {
		// FindItem returns the item for the given id (UUID).
		FindItem(id string) (*model.Item, error)
		// AllItems returns every item, oldest first.
		AllItems() ([]*model.Item, error)
		// FindItemByImageURL returns the item holding the given image URL in
		// one of its slots.
		FindItemByImageURL(url string) (*model.Item, error)
	}
)
