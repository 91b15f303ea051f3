package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/asdine/storm/v3"
	"github.com/gudangapp/gudang/internal/database"
	"github.com/gudangapp/gudang/internal/model"
	"github.com/gudangapp/gudang/pkg/stormsql"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// go run tools/console/main.go gudang.db " SELECT count(*) FROM items WHERE CurrentLocation = 'Office' AND UpdatedAt > '2026-02-16 20:52:55';  "

var codec string

func main() {
	c := &cobra.Command{
		Use:   "console DATABASE QUERY",
		Short: "SQL console for the gudang database",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			//
			//
			sq, err := stormsql.ParseSelect(args[1])
			if err != nil {
				return err
			}

			//
			//
			option, err := database.StormCodec(codec)
			if err != nil {
				return err
			}

			fmt.Println("Opening", args[0])
			db, err := storm.Open(args[0], option)
			if err != nil {
				return errors.Wrap(err, "could not open database")
			}
			defer db.Close()

			//
			// Prepare request
			//

			query := db.Select(sq.Matcher)
			if sq.Skip > 0 {
				query.Skip(sq.Skip)
			}
			if sq.Limit > 0 {
				query.Limit(sq.Limit)
			}
			if len(sq.OrderBy) > 0 {
				query.OrderBy(sq.OrderBy...)
				if sq.Reversed {
					query.Reverse()
				}
			}

			// Execute

			if sq.Count {
				return count(sq, query)
			}

			return list(sq, query)
		},
	}
	c.Flags().StringVar(&codec, "codec", "msgpack", "Serialization codec of the database (msgpack, cbor, binc)")

	if err := c.Execute(); err != nil {
		log.Fatalf("%+v", err)
	}
}

func count(sq *stormsql.SelectQuery, query storm.Query) error {
	if sq.Table != "items" {
		return errors.Errorf("unknown tablename: %s", sq.Table)
	}

	n, err := query.Count(&model.Item{})
	if err != nil {
		return errors.Wrap(err, "could not perform query")
	}

	fmt.Println("Count:", n)

	return nil
}

func list(sq *stormsql.SelectQuery, query storm.Query) error {
	if sq.Table != "items" {
		return errors.Errorf("unknown tablename: %s", sq.Table)
	}

	var records []*model.Item
	err := query.Find(&records)
	if err == storm.ErrNotFound {
		fmt.Println("[]")
		return nil
	}

	if err != nil {
		return errors.Wrap(err, "could not perform query")
	}

	jsondump(records)

	return nil
}

func jsondump(v any) {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	fmt.Println(string(d))
}
