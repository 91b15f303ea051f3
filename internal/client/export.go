package client

import (
	"github.com/gudangapp/gudang/pkg/libgudang"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const sheet = "Items"

// exportItems writes the items to an xlsx workbook, one row per item with
// the same columns the remote store exposes.
func exportItems(items []*libgudang.Item, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return errors.Wrap(err, "could not name sheet")
	}

	headers := []string{"uuid", "tagging", "desc", "original_location", "current_location", "img_url1", "img_url2", "img_url3"}
	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.Wrap(err, "could not locate header cell")
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return errors.Wrap(err, "could not write header")
		}
	}

	for n, item := range items {
		urls := make([]string, libgudang.MaxImages)
		for _, img := range item.Images {
			urls[img.Index-1] = img.URL
		}

		values := []string{
			item.UUID,
			item.Tagging,
			item.Desc,
			item.OriginalLocation,
			item.CurrentLocation,
			urls[0],
			urls[1],
			urls[2],
		}
		for i, value := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, n+2)
			if err != nil {
				return errors.Wrap(err, "could not locate cell")
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return errors.Wrapf(err, "could not write item %s", item.UUID)
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "H", 24); err != nil {
		return errors.Wrap(err, "could not size columns")
	}

	return errors.Wrap(f.SaveAs(filename), "could not save workbook")
}
