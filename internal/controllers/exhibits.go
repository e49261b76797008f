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

type ExhibitController struct {
	Repo       *repository.Exhibits
	Categories *repository.Categories
	Log        *zap.Logger
}

func (c ExhibitController) CreateOrList(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var draft forms.ExhibitDraft
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&draft); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(draft.CategoryID) == "" {
			http.Error(w, "categoryId is required", http.StatusBadRequest)
			return
		}
		rec, status, err := c.create(r, draft, draft.CategoryID)
		if err != nil {
			errorStatus(w, status, err)
			return
		}
		writeJSON(w, http.StatusCreated, rec)
	case http.MethodGet:
		var (
			list []models.Exhibit
			err  error
		)
		if categoryID := r.URL.Query().Get("categoryId"); categoryID != "" {
			list, err = c.Repo.ListByCategory(r.Context(), categoryID)
		} else {
			list, err = c.Repo.List(r.Context())
		}
		if err != nil {
			storageError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, list)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// create validates the draft, verifies the target category and appends the
// new record to the global collection. Validation runs first: a rejected
// submit must not touch the store, and the category lookup seeds a cold one.
// The returned status only matters when err is non-nil.
func (c ExhibitController) create(r *http.Request, draft forms.ExhibitDraft, categoryID string) (models.Exhibit, int, error) {
	if err := draft.Validate(); err != nil {
		return models.Exhibit{}, http.StatusBadRequest, err
	}
	if _, ok, err := c.Categories.Find(r.Context(), categoryID); err != nil {
		return models.Exhibit{}, http.StatusBadGateway, err
	} else if !ok {
		return models.Exhibit{}, http.StatusNotFound, errCategoryNotFound
	}
	rec, err := draft.Create(categoryID)
	if err != nil {
		return models.Exhibit{}, http.StatusBadRequest, err
	}
	all, err := c.Repo.List(r.Context())
	if err != nil {
		return models.Exhibit{}, http.StatusBadGateway, err
	}
	all = append(all, rec)
	if err := c.Repo.ReplaceAll(r.Context(), all); err != nil {
		return models.Exhibit{}, http.StatusBadGateway, err
	}
	c.Log.Info("exhibit created", zap.String("id", rec.ID), zap.String("categoryId", categoryID))
	return rec, 0, nil
}

func (c ExhibitController) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/exhibits/")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var draft forms.ExhibitDraft
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
	all, err := c.Repo.List(r.Context())
	if err != nil {
		storageError(w, err)
		return
	}
	var updated models.Exhibit
	found := false
	for i, e := range all {
		if e.ID == id {
			merged, err := draft.Update(e)
			if err != nil {
				badRequest(w, err)
				return
			}
			all[i] = merged
			updated = merged
			found = true
			break
		}
	}
	if !found {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err := c.Repo.ReplaceAll(r.Context(), all); err != nil {
		storageError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (c ExhibitController) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/exhibits/")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if !confirmed(r) {
		http.Error(w, "confirm=1 is required to delete", http.StatusBadRequest)
		return
	}
	all, err := c.Repo.List(r.Context())
	if err != nil {
		storageError(w, err)
		return
	}
	kept := make([]models.Exhibit, 0, len(all))
	for _, e := range all {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(all) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err := c.Repo.ReplaceAll(r.Context(), kept); err != nil {
		storageError(w, err)
		return
	}
	c.Log.Info("exhibit deleted", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
