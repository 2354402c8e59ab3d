package api

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/trgovina/internal/config"
	"github.com/erazemk/trgovina/internal/imaging"
	"github.com/erazemk/trgovina/internal/model"
	"github.com/erazemk/trgovina/internal/store"
)

// ItemsHandler serves the CRUD endpoints for one resource table. The
// same handler logic covers both tables; only the Table value differs.
type ItemsHandler struct {
	DB    *sql.DB
	Cfg   config.Config
	Table model.Table
}

// Create handles POST /{table}.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, model.MaxImageSize)
	if err := r.ParseMultipartForm(model.MaxImageSize); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	description := r.FormValue("description")

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid price")
		return
	}
	quantity, err := strconv.ParseInt(r.FormValue("quantity"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid quantity")
		return
	}

	// Upload validation happens before any store access.
	image, mimetype, err := formImage(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, h.Table, name, description, price, quantity, image, mimetype)
	if err != nil {
		h.storeError(w, err, "create "+h.Table.String())
		return
	}

	jsonResponse(w, http.StatusCreated, h.withImageURL(r, item))
}

// List handles GET /{table}. Image bytes are never selected; rows with a
// stored image get a derived imageUrl instead.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListItems(r.Context(), h.DB, h.Table)
	if err != nil {
		h.storeError(w, err, "fetch "+h.Table.String())
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	for i := range items {
		h.withImageURL(r, &items[i])
	}
	jsonResponse(w, http.StatusOK, items)
}

// GetImage handles GET /{table}/{id}/image, the one endpoint with a
// binary response body.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	data, mimetype, err := store.GetItemImage(r.Context(), h.DB, h.Table, id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, "Image not found")
		return
	}
	if err != nil {
		h.storeError(w, err, "fetch image")
		return
	}

	// Images are immutable enough to cache aggressively in production.
	if h.Cfg.Production() {
		w.Header().Set("Cache-Control", "public, max-age=31557600")
		w.Header().Set("ETag", fmt.Sprintf("%q", strconv.FormatInt(id, 10)))
	}

	w.Header().Set("Content-Type", mimetype)
	w.Write(data)
}

// Update handles PATCH /{table}/{id}. Merge semantics: only supplied
// fields change, anything omitted keeps its stored value.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, model.MaxImageSize)
	if err := r.ParseMultipartForm(model.MaxImageSize); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	var patch store.ItemPatch
	if v, ok := formField(r, "name"); ok {
		patch.Name = &v
	}
	if v, ok := formField(r, "description"); ok {
		patch.Description = &v
	}
	if v, ok := formField(r, "price"); ok {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid price")
			return
		}
		patch.Price = &price
	}
	if v, ok := formField(r, "quantity"); ok {
		quantity, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			jsonError(w, http.StatusBadRequest, "invalid quantity")
			return
		}
		patch.Quantity = &quantity
	}

	image, mimetype, err := formImage(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if image != nil {
		patch.Image = image
		patch.Mimetype = &mimetype
	}

	item, err := store.UpdateItem(r.Context(), h.DB, h.Table, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, h.Table.String()+" not found")
		return
	}
	if err != nil {
		h.storeError(w, err, "update "+h.Table.String())
		return
	}

	jsonResponse(w, http.StatusOK, h.withImageURL(r, item))
}

// Delete handles DELETE /{table}/{id}. A repeated delete of the same id
// reports not-found, not a second success.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	err = store.DeleteItem(r.Context(), h.DB, h.Table, id)
	if errors.Is(err, store.ErrNotFound) {
		jsonError(w, http.StatusNotFound, h.Table.String()+" not found")
		return
	}
	if err != nil {
		h.storeError(w, err, "delete "+h.Table.String())
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{
		"message": h.Table.String() + " deleted successfully",
	})
}

// withImageURL fills in the derived imageUrl for rows that have a stored
// image. Pure function of request context, table, and id.
func (h *ItemsHandler) withImageURL(r *http.Request, item *model.Item) *model.Item {
	if !item.HasImage() {
		return item
	}
	base := h.Cfg.BaseURL
	if !h.Cfg.Production() || base == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		base = scheme + "://" + r.Host
	}
	url := fmt.Sprintf("%s/%s/%d/image", base, h.Table, item.ID)
	item.ImageURL = &url
	return item
}

// storeError logs a store failure and writes the 500 envelope. The
// underlying error only reaches the client in development mode.
func (h *ItemsHandler) storeError(w http.ResponseWriter, err error, operation string) {
	slog.Error("store error", "operation", operation, "error", err)
	jsonErrorDetails(w, http.StatusInternalServerError,
		"Failed to "+operation, err.Error(), !h.Cfg.Production())
}

// formField returns a multipart form value and whether the field was
// present at all. Presence, not emptiness, decides whether a PATCH
// touches the column.
func formField(r *http.Request, name string) (string, bool) {
	if r.MultipartForm == nil {
		return "", false
	}
	vals, ok := r.MultipartForm.Value[name]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// formImage reads and validates the optional uploaded file. Returns nil
// bytes when no file was attached.
func formImage(r *http.Request) ([]byte, string, error) {
	file, _, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading image file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", fmt.Errorf("reading image file: %w", err)
	}

	mimetype, err := imaging.Validate(data)
	if err != nil {
		return nil, "", err
	}
	return data, mimetype, nil
}
