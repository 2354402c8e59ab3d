package model

// Item is one row in a resource table. Image bytes are never carried on
// the struct; JSON responses expose a derived ImageURL instead, and the
// raw blob is only served by the image endpoint.
type Item struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	Mimetype    string  `json:"mimetype,omitempty"`
	ImageURL    *string `json:"imageUrl"`
}

// HasImage reports whether the row has a stored image. Image and mimetype
// are always written together, so the mimetype column doubles as the
// has-image signal without pulling blobs into list queries.
func (i *Item) HasImage() bool {
	return i.Mimetype != ""
}

// AllowedMimetypes is the fixed set of accepted upload image types.
var AllowedMimetypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// MaxImageSize is the upload size cap in bytes (5 MiB).
const MaxImageSize = 5 << 20
