package store

import (
	"context"
	"errors"
	"testing"

	"github.com/erazemk/trgovina/internal/db"
	"github.com/erazemk/trgovina/internal/model"
)

func TestCreateAndListItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, err := CreateItem(ctx, database, model.TableProducts, "Shoe Polish", "Black tin", 9.99, 3, nil, "")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.ID == 0 {
		t.Error("expected assigned id")
	}
	if item.Price != 9.99 || item.Quantity != 3 {
		t.Errorf("unexpected row: %+v", item)
	}
	if item.HasImage() {
		t.Error("expected no image on plain create")
	}

	items, err := ListItems(ctx, database, model.TableProducts)
	if err != nil {
		t.Fatalf("ListItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	got := items[0]
	if got.Name != "Shoe Polish" || got.Description != "Black tin" || got.Price != 9.99 || got.Quantity != 3 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestTablesAreIndependent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateItem(ctx, database, model.TableProducts, "Polish", "", 1, 1, nil, "")
	CreateItem(ctx, database, model.TableShoes, "Runner", "", 2, 1, nil, "")

	products, _ := ListItems(ctx, database, model.TableProducts)
	shoes, _ := ListItems(ctx, database, model.TableShoes)
	if len(products) != 1 || len(shoes) != 1 {
		t.Errorf("expected 1 row per table, got %d products and %d shoes", len(products), len(shoes))
	}
	if products[0].Name != "Polish" || shoes[0].Name != "Runner" {
		t.Errorf("rows leaked between tables: %+v / %+v", products[0], shoes[0])
	}
}

func TestItemImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	imageData := []byte("fake image data")
	item, err := CreateItem(ctx, database, model.TableProducts, "Photo Item", "", 5, 1, imageData, "image/png")
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Mimetype != "image/png" {
		t.Errorf("expected mimetype 'image/png', got %q", item.Mimetype)
	}

	data, mime, err := GetItemImage(ctx, database, model.TableProducts, item.ID)
	if err != nil {
		t.Fatalf("GetItemImage: %v", err)
	}
	if string(data) != "fake image data" {
		t.Errorf("expected image data, got %q", string(data))
	}
	if mime != "image/png" {
		t.Errorf("expected mime 'image/png', got %q", mime)
	}
}

func TestGetItemImageNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Missing row.
	if _, _, err := GetItemImage(ctx, database, model.TableProducts, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing row, got %v", err)
	}

	// Row without an image.
	item, _ := CreateItem(ctx, database, model.TableProducts, "No Image", "", 1, 1, nil, "")
	if _, _, err := GetItemImage(ctx, database, model.TableProducts, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for row without image, got %v", err)
	}
}

func TestUpdateItemMergesFields(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, model.TableShoes, "Runner", "Trail shoe", 49.99, 5, []byte("img"), "image/jpeg")

	quantity := int64(0)
	updated, err := UpdateItem(ctx, database, model.TableShoes, item.ID, ItemPatch{Quantity: &quantity})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", updated.Quantity)
	}
	if updated.Name != "Runner" || updated.Description != "Trail shoe" || updated.Price != 49.99 {
		t.Errorf("omitted fields changed: %+v", updated)
	}

	// The stored image survives a metadata-only update.
	data, mime, err := GetItemImage(ctx, database, model.TableShoes, item.ID)
	if err != nil {
		t.Fatalf("GetItemImage after update: %v", err)
	}
	if string(data) != "img" || mime != "image/jpeg" {
		t.Errorf("image changed by metadata update: %q %q", data, mime)
	}
}

func TestUpdateItemReplacesImage(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, model.TableShoes, "Runner", "", 10, 1, []byte("old"), "image/png")

	mime := "image/webp"
	updated, err := UpdateItem(ctx, database, model.TableShoes, item.ID, ItemPatch{
		Image:    []byte("new"),
		Mimetype: &mime,
	})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if updated.Name != "Runner" {
		t.Errorf("name changed by image update: %q", updated.Name)
	}

	data, storedMime, _ := GetItemImage(ctx, database, model.TableShoes, item.ID)
	if string(data) != "new" || storedMime != "image/webp" {
		t.Errorf("expected replaced image, got %q %q", data, storedMime)
	}
}

func TestUpdateItemNotFound(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	name := "Ghost"
	_, err := UpdateItem(ctx, database, model.TableProducts, 42, ItemPatch{Name: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteItemIdempotence(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	item, _ := CreateItem(ctx, database, model.TableShoes, "Delete Me", "", 1, 1, nil, "")

	if err := DeleteItem(ctx, database, model.TableShoes, item.ID); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if err := DeleteItem(ctx, database, model.TableShoes, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}

	items, _ := ListItems(ctx, database, model.TableShoes)
	if len(items) != 0 {
		t.Errorf("expected 0 items after delete, got %d", len(items))
	}
}
