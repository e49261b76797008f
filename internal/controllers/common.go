// Package controllers implements the HTTP surface over the repositories:
// CRUD forms for categories and exhibits, the per-category exhibit viewer,
// description assistance and image uploads.
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"exhibition-catalog/internal/forms"
)

var errCategoryNotFound = errors.New("category not found")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// storageError answers a failed load or save distinctly from validation so
// the client can offer a retry instead of dropping the edit.
func storageError(w http.ResponseWriter, err error) {
	http.Error(w, "save failed, please retry: "+err.Error(), http.StatusBadGateway)
}

// badRequest maps validation errors to 400 with the field list; anything
// else (malformed JSON and the like) gets the raw message.
func badRequest(w http.ResponseWriter, err error) {
	var ve *forms.ValidationError
	if errors.As(err, &ve) {
		http.Error(w, ve.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// errorStatus routes an error to the right writer for the status decided by
// the caller.
func errorStatus(w http.ResponseWriter, status int, err error) {
	switch status {
	case http.StatusBadGateway:
		storageError(w, err)
	case http.StatusNotFound:
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		badRequest(w, err)
	}
}

// confirmed reports whether the request carries the affirmative
// confirmation required before any delete executes.
func confirmed(r *http.Request) bool {
	v := r.URL.Query().Get("confirm")
	return v == "1" || v == "true"
}
