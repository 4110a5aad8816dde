package handlers

import (
	"net/http"
)

func Custom404Handler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: "not found", Path: r.URL.Path})
}
