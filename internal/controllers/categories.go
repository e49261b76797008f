package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"exhibition-catalog/internal/forms"
	"exhibition-catalog/internal/repository"
	"exhibition-catalog/models"
)

type CategoryController struct {
	Repo     *repository.Categories
	Exhibits *repository.Exhibits
	// Cascade removes a deleted category's exhibits as well. Off by
	// default: the stock policy leaves them orphaned in storage.
	Cascade bool
	Log     *zap.Logger
}

func (c CategoryController) CreateOrList(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var draft forms.CategoryDraft
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&draft); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		draft.ID = "" // ids are assigned here, never by the client
		rec, err := draft.Create()
		if err != nil {
			badRequest(w, err)
			return
		}
		list, err := c.Repo.List(r.Context())
		if err != nil {
			storageError(w, err)
			return
		}
		list = append(list, rec)
		if err := c.Repo.ReplaceAll(r.Context(), list); err != nil {
			storageError(w, err)
			return
		}
		c.Log.Info("category created", zap.String("id", rec.ID), zap.String("code", rec.Code))
		writeJSON(w, http.StatusCreated, rec)
	case http.MethodGet:
		list, err := c.Repo.List(r.Context())
		if err != nil {
			storageError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (c CategoryController) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/categories/")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var draft forms.CategoryDraft
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := draft.Validate(); err != nil {
		badRequest(w, err)
		return
	}
	list, err := c.Repo.List(r.Context())
	if err != nil {
		storageError(w, err)
		return
	}
	var updated models.Category
	found := false
	for i, cat := range list {
		if cat.ID == id {
			merged, err := draft.Update(cat)
			if err != nil {
				badRequest(w, err)
				return
			}
			list[i] = merged
			updated = merged
			found = true
			break
		}
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err := c.Repo.ReplaceAll(r.Context(), list); err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (c CategoryController) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/categories/")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if !confirmed(r) {
		http.Error(w, "confirm=1 is required to delete", http.StatusBadRequest)
		return
	}
	list, err := c.Repo.List(r.Context())
	if err != nil {
		storageError(w, err)
		return
	}
	kept := make([]models.Category, 0, len(list))
	for _, cat := range list {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	if len(kept) == len(list) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err := c.Repo.ReplaceAll(r.Context(), kept); err != nil {
		storageError(w, err)
		return
	}
	if c.Cascade {
		if err := c.cascadeExhibits(r, id); err != nil {
			storageError(w, err)
			return
		}
	}
	c.Log.Info("category deleted", zap.String("id", id), zap.Bool("cascade", c.Cascade))
	w.WriteHeader(http.StatusNoContent)
}

func (c CategoryController) cascadeExhibits(r *http.Request, categoryID string) error {
	all, err := c.Exhibits.List(r.Context())
	if err != nil {
		return err
	}
	kept := make([]models.Exhibit, 0, len(all))
	for _, e := range all {
		if e.CategoryID != categoryID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(all) {
		return nil
	}
	return c.Exhibits.ReplaceAll(r.Context(), kept)
}
