package controllers

import (
	"net/http"

	"exhibition-catalog/internal/imagedata"
)

// maxUploadBytes bounds a single image upload.
const maxUploadBytes = 10 << 20

type UploadController struct{}

// Image converts a selected image file into a data URI for the form's
// image field. Conversion failures are reported to the caller and leave
// the draft untouched on their side.
func (UploadController) Image(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()
	uri, err := imagedata.FromReader(file, header.Header.Get("Content-Type"))
	if err != nil {
		http.Error(w, "could not read file: "+err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"dataUri": uri})
}
