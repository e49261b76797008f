package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"exhibition-catalog/internal/gemini"
)

type DescribeController struct {
	Gemini *gemini.Service
}

// Describe drafts an exhibit introduction. The response is always 200 with
// usable text; service failures surface only as fallback wording.
func (c DescribeController) Describe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var body struct {
		Name          string `json:"name"`
		CategoryTitle string `json:"categoryTitle"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(body.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	text := c.Gemini.GenerateDescription(r.Context(), body.Name, body.CategoryTitle)
	writeJSON(w, http.StatusOK, map[string]string{"description": text})
}
