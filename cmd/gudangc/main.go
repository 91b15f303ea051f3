package main

import (
	"fmt"
	"os"

	"github.com/gudangapp/gudang/internal/client"
	"github.com/gudangapp/gudang/pkg/libgudang"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	revision = "none"
	date     = "unknown"
)

func main() {
	c := &cobra.Command{
		Use:     "gudangc",
		Short:   "Gudang inventory client",
		Version: fmt.Sprintf("%s - build %.7s @ %s", version, revision, date),
		Args:    cobra.NoArgs,
	}
	c.AddCommand(configCmd)
	c.AddCommand(listCmd)
	c.AddCommand(addCmd)
	c.AddCommand(editCmd)
	c.AddCommand(imageCmd())

	if err := c.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Configure the Gudang endpoint",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return client.Configure()
		},
	}

	listCmd = &cobra.Command{
		Use:   "list [QUERY]",
		Short: "List the inventory, narrowed down by QUERY when given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var query string
			if len(args) > 0 {
				query = args[0]
			}
			export, err := cmd.Flags().GetString("export")
			if err != nil {
				return err
			}
			return client.List(query, export)
		},
	}

	addCmd = &cobra.Command{
		Use:   "add TAGGING",
		Short: "Add a new item to the inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, _ := cmd.Flags().GetString("desc")
			original, _ := cmd.Flags().GetString("original-location")
			current, _ := cmd.Flags().GetString("current-location")
			return client.Add(args[0], desc, original, current)
		},
	}

	editCmd = &cobra.Command{
		Use:   "edit UUID",
		Short: "Edit an item, only submitting what actually changed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]string{}
			for field, flag := range map[string]string{
				libgudang.FieldTagging:          "tagging",
				libgudang.FieldDesc:             "desc",
				libgudang.FieldOriginalLocation: "original-location",
				libgudang.FieldCurrentLocation:  "current-location",
			} {
				if cmd.Flags().Changed(flag) {
					value, _ := cmd.Flags().GetString(flag)
					overrides[field] = value
				}
			}
			images, _ := cmd.Flags().GetStringArray("image")
			return client.Edit(args[0], overrides, images)
		},
	}
)

func imageCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "image",
		Short: "Manage an item's image slots",
		Args:  cobra.NoArgs,
	}

	c.AddCommand(&cobra.Command{
		Use:   "upload UUID FILE...",
		Short: "Store local files into the item's free image slots",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return client.UploadImages(args[0], args[1:])
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "replace UUID URL FILE",
		Short: "Swap the image stored at URL, keeping its slot position",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			return client.ReplaceImage(args[0], args[1], args[2])
		},
	})

	c.AddCommand(&cobra.Command{
		Use:   "delete UUID URL",
		Short: "Clear the image slot holding URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return client.DeleteImage(args[0], args[1])
		},
	})

	return c
}

func init() {
	listCmd.Flags().StringP("export", "e", "", "Write the result as an xlsx workbook instead of printing it")

	addCmd.Flags().String("desc", "", "Item description")
	addCmd.Flags().String("original-location", "", "Where the item comes from")
	addCmd.Flags().String("current-location", "", "Where the item currently is")

	editCmd.Flags().String("tagging", "", "New tagging")
	editCmd.Flags().String("desc", "", "New description")
	editCmd.Flags().String("original-location", "", "New original location")
	editCmd.Flags().String("current-location", "", "New current location")
	editCmd.Flags().StringArray("image", nil, "Local image file to append (repeatable)")
}
