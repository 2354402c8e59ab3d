package api

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/erazemk/trgovina/internal/config"
	"github.com/erazemk/trgovina/internal/model"
)

// NewRouter creates the router with the five CRUD endpoints registered
// for every resource table.
func NewRouter(db *sql.DB, cfg config.Config) http.Handler {
	mux := http.NewServeMux()

	for _, table := range model.Tables {
		h := &ItemsHandler{DB: db, Cfg: cfg, Table: table}

		mux.HandleFunc(fmt.Sprintf("POST /%s", table), h.Create)
		mux.HandleFunc(fmt.Sprintf("GET /%s", table), h.List)
		mux.HandleFunc(fmt.Sprintf("GET /%s/{id}/image", table), h.GetImage)
		mux.HandleFunc(fmt.Sprintf("PATCH /%s/{id}", table), h.Update)
		mux.HandleFunc(fmt.Sprintf("DELETE /%s/{id}", table), h.Delete)
	}

	var handler http.Handler = mux
	handler = CORSMiddleware(handler)
	handler = LoggingMiddleware(handler)
	handler = RecoverMiddleware(handler)
	return handler
}
