package database

import (
	"time"

	"github.com/asdine/storm/v3"
	"github.com/asdine/storm/v3/codec/msgpack"
	"github.com/asdine/storm/v3/q"
	"github.com/gofrs/uuid"
	"github.com/gudangapp/gudang/internal/model"
	"github.com/gudangapp/gudang/pkg/stormcodec"
	"github.com/pkg/errors"
)

type strm struct {
	db *storm.DB
}

// StormCodec returns the storm option for the given codec name.
// Records are stored as msgpack unless configured otherwise.
func StormCodec(name string) (func(*storm.Options) error, error) {
	switch name {
	case "", "msgpack":
		return storm.Codec(msgpack.Codec), nil
	case "cbor":
		return storm.Codec(stormcodec.CBOR), nil
	case "binc":
		return storm.Codec(stormcodec.Binc), nil
	}
	return nil, errors.Errorf("unsupported database codec: %s", name)
}

// StormInit initializes Storm database.
func StormInit(database string, codec func(*storm.Options) error) error {
	db, err := storm.Open(database, codec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	err = db.Init(&model.Item{})
	return errors.Wrap(err, "could not init item index")
}

// StormReIndex reindex Storm database.
func StormReIndex(database string, codec func(*storm.Options) error) error {
	db, err := storm.Open(database, codec)
	if err != nil {
		return errors.Wrap(err, "could not get database connection")
	}
	defer db.Close()

	err = db.ReIndex(&model.Item{})
	return errors.Wrap(err, "could not ReIndex items")
}

// StormOpen returns a new Storm database connection.
func StormOpen(database string, codec func(*storm.Options) error) (Client, error) {
	db, err := storm.Open(database, codec)
	if err != nil {
		return nil, errors.Wrap(err, "could not get database connection")
	}

	return &strm{
		db: db,
	}, nil
}

// Save inserts or updates the entry in database with the given model.
func (c *strm) Save(m model.Model) error {
	t := time.Now().UTC()
	m.SetUpdatedAt(t)

	if m.GetID() == "" {
		m.SetID(uuid.Must(uuid.NewV4()).String())
		m.SetCreatedAt(t)
	}

	return errors.Wrap(c.db.Save(m), "could not save the model")
}

// Delete deletes the entry in database with the given model.
func (c *strm) Delete(m model.Model) error {
	return errors.Wrap(c.db.DeleteStruct(m), "could not delete the model")
}

// Close the database.
func (c *strm) Close() error {
	return c.db.Close()
}

// IsNotFound returns true if err is a not found error.
func (c *strm) IsNotFound(err error) bool {
	return errors.Cause(err) == storm.ErrNotFound
}

// FindItem returns the item for the given id (UUID).
func (c *strm) FindItem(id string) (*model.Item, error) {
	var item model.Item
	if err := c.db.One("ID", id, &item); err != nil {
		return nil, errors.Wrap(err, "find item by id")
	}
	return &item, nil
}

// AllItems returns every item, oldest first.
func (c *strm) AllItems() ([]*model.Item, error) {
	var items []*model.Item
	err := c.db.AllByIndex("CreatedAt", &items)
	if c.IsNotFound(err) {
		return items, nil
	}
	return items, errors.Wrap(err, "find all items")
}

// FindItemByImageURL returns the item holding the given image URL in one of
// its slots.
func (c *strm) FindItemByImageURL(url string) (*model.Item, error) {
	var item model.Item
	err := c.db.Select(q.Or(
		q.Eq("ImgURL1", url),
		q.Eq("ImgURL2", url),
		q.Eq("ImgURL3", url),
	)).First(&item)
	if err != nil {
		return nil, errors.Wrap(err, "find item by image url")
	}
	return &item, nil
}
