//
// libgudang is a client for the Gudang inventory API: a single HTTP endpoint
// where listing is a bare GET and every mutation is a POST selected by an
// action field. It also holds the pure decision logic used around the API
// calls: field diffing, image-change detection and the inventory filter.
//

// Create client
//
//	client, err := libgudang.NewDefaultClient("https://inventory.nas.lan")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// List and search
//
//	items, err := client.Items()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, item := range libgudang.ApplyFilter(items, "warehouse 1") {
//		fmt.Println(item.Tagging, item.CurrentLocation)
//	}
//
// Edit an item, only when something actually changed
//
//	item := items[0]
//	edited := item.Record()
//	edited["current_location"] = "Office"
//
//	diff := libgudang.IsItemUpdated(item.Record(), edited)
//	if diff.Updated {
//		_, err = client.Edit(libgudang.EditItem{
//			UUID:             item.UUID,
//			Tagging:          item.Tagging,
//			Desc:             item.Desc,
//			OriginalLocation: item.OriginalLocation,
//			CurrentLocation:  "Office",
//		})
//		if err != nil {
//			log.Fatal(err)
//		}
//	}
//
// Upload a freshly picked photo
//
//	picked := libgudang.NewPickedFile("/tmp/photo.jpg")
//
//	change := libgudang.HasImageChanged([]any{picked}, item.ImageURLs())
//	if change.Changed {
//		b64, err := picked.Base64()
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		_, err = client.UploadImage(item.UUID, []libgudang.Base64File{b64})
//		if err != nil {
//			log.Fatal(err)
//		}
//	}
package libgudang
