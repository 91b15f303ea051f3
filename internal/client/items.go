package client

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gudangapp/gudang/pkg/libgudang"
	"github.com/pkg/errors"
)

// List prints the inventory, narrowed down by query when given. With export
// set, the result is written to an xlsx file instead of the terminal.
func List(query, export string) error {
	cfg, err := Load()
	if err != nil {
		return errors.Wrap(err, "could not load config")
	}

	client, err := libgudang.NewDefaultClient(cfg.Endpoint)
	if err != nil {
		return errors.Wrap(err, "could not reach Gudang endpoint")
	}

	items, err := client.Items()
	if err != nil {
		return errors.Wrap(err, "could not get items")
	}
	items = libgudang.ApplyFilter(items, query)

	if export != "" {
		if err := exportItems(items, export); err != nil {
			return err
		}
		fmt.Printf("%d item(s) written to %s\n", len(items), export)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "UUID\tTAGGING\tDESC\tORIGINAL\tCURRENT\tIMAGES")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
			item.UUID,
			item.Tagging,
			oneline(item.Desc),
			item.OriginalLocation,
			item.CurrentLocation,
			len(item.Images),
		)
	}
	return errors.Wrap(w.Flush(), "could not render items")
}

// Add creates a new item from the given field values.
func Add(tagging, desc, original, current string) error {
	if strings.TrimSpace(tagging) == "" {
		return errors.New("tagging is required")
	}

	cfg, err := Load()
	if err != nil {
		return errors.Wrap(err, "could not load config")
	}

	client, err := libgudang.NewDefaultClient(cfg.Endpoint)
	if err != nil {
		return errors.Wrap(err, "could not reach Gudang endpoint")
	}

	notify := NewConsoleNotifier()
	res, err := client.Add(libgudang.AddItem{
		Tagging:          tagging,
		Desc:             desc,
		OriginalLocation: original,
		CurrentLocation:  current,
	})
	if err != nil {
		return errors.Wrap(err, "could not add item")
	}
	if !res.Success {
		notify.Failf("add rejected: %s", res.Message)
		return nil
	}

	notify.Successf("item added")
	return nil
}

// oneline flattens a multi-line description for the table rendering.
func oneline(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
