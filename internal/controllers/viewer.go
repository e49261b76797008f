package controllers

import (
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"exhibition-catalog/internal/catalog"
	"exhibition-catalog/internal/forms"
	"exhibition-catalog/internal/repository"
	"exhibition-catalog/models"
)

// ViewerController serves the per-category exhibit browser. It holds the
// selection index for the single logical user; the index is re-clamped
// against the freshly filtered list on every request, so deletions made
// through the exhibit CRUD surface are picked up here too.
type ViewerController struct {
	Categories *repository.Categories
	Exhibits   *repository.Exhibits
	Log        *zap.Logger

	mu         sync.Mutex
	selections map[string]*catalog.Selection
}

func NewViewerController(categories *repository.Categories, exhibits *repository.Exhibits, log *zap.Logger) *ViewerController {
	return &ViewerController{
		Categories: categories,
		Exhibits:   exhibits,
		Log:        log,
		selections: make(map[string]*catalog.Selection),
	}
}

type viewerState struct {
	Category      models.Category  `json:"category"`
	Exhibits      []models.Exhibit `json:"exhibits"`
	SelectedIndex int              `json:"selectedIndex"`
	Selected      *models.Exhibit  `json:"selected,omitempty"`
}

// viewerPath splits "/viewer/<categoryId>[/<action>]".
func viewerPath(p string) (categoryID, action string) {
	rest := strings.TrimPrefix(p, "/viewer/")
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		return rest[:i], rest[i+1:]
	}
	return rest, ""
}

// load resolves the category and its filtered exhibit list, answering 404
// or 502 itself when that fails.
func (c *ViewerController) load(w http.ResponseWriter, r *http.Request, categoryID string) (models.Category, []models.Exhibit, bool) {
	cat, ok, err := c.Categories.Find(r.Context(), categoryID)
	if err != nil {
		storageError(w, err)
		return models.Category{}, nil, false
	}
	if !ok {
		http.Error(w, errCategoryNotFound.Error(), http.StatusNotFound)
		return models.Category{}, nil, false
	}
	list, err := c.Exhibits.ListByCategory(r.Context(), categoryID)
	if err != nil {
		storageError(w, err)
		return models.Category{}, nil, false
	}
	return cat, list, true
}

// apply runs fn on the category's selection under the controller lock,
// after resizing it to the current filtered length, and returns the
// resulting index. With reset set, the selection starts over at index 0.
// Holding the lock across the mutation keeps concurrent viewer requests
// from racing on the shared selection.
func (c *ViewerController) apply(categoryID string, length int, reset bool, fn func(*catalog.Selection) error) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	sel, ok := c.selections[categoryID]
	if !ok || reset {
		sel = catalog.NewSelection(length)
		c.selections[categoryID] = sel
	} else {
		sel.Resize(length)
	}
	var err error
	if fn != nil {
		err = fn(sel)
	}
	return sel.Index(), err
}

func (c *ViewerController) respond(w http.ResponseWriter, status int, cat models.Category, list []models.Exhibit, index int) {
	state := viewerState{Category: cat, Exhibits: list, SelectedIndex: index}
	if index >= 0 && index < len(list) {
		e := list[index]
		state.Selected = &e
	}
	writeJSON(w, status, state)
}

// View enters the category: the selection is reset to the first exhibit.
func (c *ViewerController) View(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	categoryID, _ := viewerPath(r.URL.Path)
	cat, list, ok := c.load(w, r, categoryID)
	if !ok {
		return
	}
	idx, _ := c.apply(categoryID, len(list), true, nil)
	c.respond(w, http.StatusOK, cat, list, idx)
}

func (c *ViewerController) Next(w http.ResponseWriter, r *http.Request) {
	c.step(w, r, func(sel *catalog.Selection) { sel.Next() })
}

func (c *ViewerController) Previous(w http.ResponseWriter, r *http.Request) {
	c.step(w, r, func(sel *catalog.Selection) { sel.Previous() })
}

func (c *ViewerController) step(w http.ResponseWriter, r *http.Request, move func(*catalog.Selection)) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	categoryID, _ := viewerPath(r.URL.Path)
	cat, list, ok := c.load(w, r, categoryID)
	if !ok {
		return
	}
	idx, _ := c.apply(categoryID, len(list), false, func(sel *catalog.Selection) error {
		move(sel)
		return nil
	})
	c.respond(w, http.StatusOK, cat, list, idx)
}

// Select jumps directly to a position within the filtered list.
func (c *ViewerController) Select(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	categoryID, _ := viewerPath(r.URL.Path)
	var body struct {
		Index int `json:"index"`
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cat, list, ok := c.load(w, r, categoryID)
	if !ok {
		return
	}
	idx, err := c.apply(categoryID, len(list), false, func(sel *catalog.Selection) error {
		return sel.SelectAt(body.Index)
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c.respond(w, http.StatusOK, cat, list, idx)
}

// CreateExhibit creates an exhibit in the viewed category and moves the
// selection onto it. The position is recomputed from the fresh filtered
// list by id rather than assumed to be the end.
func (c *ViewerController) CreateExhibit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	categoryID, _ := viewerPath(r.URL.Path)
	var draft forms.ExhibitDraft
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ex := ExhibitController{Repo: c.Exhibits, Categories: c.Categories, Log: c.Log}
	rec, status, err := ex.create(r, draft, categoryID)
	if err != nil {
		errorStatus(w, status, err)
		return
	}
	cat, list, ok := c.load(w, r, categoryID)
	if !ok {
		return
	}
	idx, err := c.apply(categoryID, len(list), false, func(sel *catalog.Selection) error {
		for i, e := range list {
			if e.ID == rec.ID {
				return sel.SelectAt(i)
			}
		}
		return nil
	})
	if err != nil {
		c.Log.Warn("created exhibit missing from filtered list", zap.String("id", rec.ID), zap.Error(err))
	}
	c.respond(w, http.StatusCreated, cat, list, idx)
}
