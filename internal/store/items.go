package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/trgovina/internal/model"
)

// ErrNotFound reports that no row matched the given id. Handlers map it
// to 404, distinct from store connectivity failures which become 500.
var ErrNotFound = errors.New("not found")

// ItemPatch holds the fields of a partial update. Nil fields are left
// unchanged in the database (COALESCE semantics); a non-nil field
// replaces the stored value. Image and Mimetype are set together or not
// at all, which the upload pathway guarantees.
type ItemPatch struct {
	Name        *string
	Description *string
	Price       *float64
	Quantity    *int64
	Image       []byte
	Mimetype    *string
}

// The table name is always a validated model.Table enum value, never raw
// request input, so formatting it into the query text is safe.

// CreateItem inserts a new row and returns it with its assigned id.
// Image and mimetype may be nil/empty for an item without an image.
func CreateItem(ctx context.Context, db *sql.DB, table model.Table, name, description string, price float64, quantity int64, image []byte, mimetype string) (*model.Item, error) {
	var mime any
	if mimetype != "" {
		mime = mimetype
	}

	item := &model.Item{}
	var desc, storedMime sql.NullString
	err := db.QueryRowContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (name, description, price, quantity, image, mimetype)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, name, description, price, quantity, mimetype`, table),
		name, description, price, quantity, image, mime,
	).Scan(&item.ID, &item.Name, &desc, &item.Price, &item.Quantity, &storedMime)
	if err != nil {
		return nil, fmt.Errorf("creating %s row: %w", table, err)
	}
	item.Description = desc.String
	item.Mimetype = storedMime.String
	return item, nil
}

// ListItems returns every row in the table with image bytes stripped.
// No ORDER BY: ordering is store-defined and callers must not rely on it.
func ListItems(ctx context.Context, db *sql.DB, table model.Table) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx, fmt.Sprintf(
		`SELECT id, name, description, price, quantity, mimetype FROM %s`, table))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var item model.Item
		var desc, mime sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &desc, &item.Price, &item.Quantity, &mime); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", table, err)
		}
		item.Description = desc.String
		item.Mimetype = mime.String
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetItemImage returns a row's image bytes and mimetype. ErrNotFound is
// returned both when the row is missing and when it has no stored image.
func GetItemImage(ctx context.Context, db *sql.DB, table model.Table, id int64) ([]byte, string, error) {
	var image []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT image, mimetype FROM %s WHERE id = $1`, table), id,
	).Scan(&image, &mime)
	if err == sql.ErrNoRows {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting %s image: %w", table, err)
	}
	if len(image) == 0 {
		return nil, "", ErrNotFound
	}
	return image, mime.String, nil
}

// UpdateItem merge-updates a row: each column is set to the patch value
// when present, otherwise kept. Returns the updated row without image
// bytes, or ErrNotFound if the id does not exist.
func UpdateItem(ctx context.Context, db *sql.DB, table model.Table, id int64, patch ItemPatch) (*model.Item, error) {
	item := &model.Item{}
	var desc, storedMime sql.NullString
	err := db.QueryRowContext(ctx, fmt.Sprintf(
		`UPDATE %s
		 SET name = COALESCE($1, name),
		     description = COALESCE($2, description),
		     price = COALESCE($3, price),
		     quantity = COALESCE($4, quantity),
		     image = COALESCE($5, image),
		     mimetype = COALESCE($6, mimetype)
		 WHERE id = $7
		 RETURNING id, name, description, price, quantity, mimetype`, table),
		patch.Name, patch.Description, patch.Price, patch.Quantity, patch.Image, patch.Mimetype, id,
	).Scan(&item.ID, &item.Name, &desc, &item.Price, &item.Quantity, &storedMime)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating %s row: %w", table, err)
	}
	item.Description = desc.String
	item.Mimetype = storedMime.String
	return item, nil
}

// DeleteItem removes a row permanently. ErrNotFound if no row matched,
// so repeating a delete reports not-found rather than a second success.
func DeleteItem(ctx context.Context, db *sql.DB, table model.Table, id int64) error {
	var deleted int64
	err := db.QueryRowContext(ctx, fmt.Sprintf(
		`DELETE FROM %s WHERE id = $1 RETURNING id`, table), id,
	).Scan(&deleted)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting %s row: %w", table, err)
	}
	return nil
}
