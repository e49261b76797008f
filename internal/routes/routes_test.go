package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"exhibition-catalog/internal/config"
	"exhibition-catalog/internal/gemini"
	"exhibition-catalog/internal/repository"
	"exhibition-catalog/internal/store"
	"exhibition-catalog/models"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

// countingStore records writes so tests can assert that rejected submits
// never reach the store.
type countingStore struct {
	store.Store
	puts int
}

func (c *countingStore) Put(ctx context.Context, key string, value []byte) error {
	c.puts++
	return c.Store.Put(ctx, key, value)
}

func newServer(t *testing.T, cascade bool) (*gin.Engine, *countingStore) {
	t.Helper()
	st := &countingStore{Store: store.NewMemory()}
	log := zap.NewNop()
	cfg := config.New()
	cfg.CascadeDelete = cascade
	engine := Register(Deps{
		Categories: repository.NewCategories(st, log),
		Exhibits:   repository.NewExhibits(st, log),
		Gemini:     gemini.New(context.Background(), "", "", log),
		Cfg:        cfg,
		Log:        log,
	})
	return engine, st
}

func do(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

func TestListCategoriesSeedsDefaults(t *testing.T) {
	engine, _ := newServer(t, false)

	w := do(t, engine, http.MethodGet, "/api/v1/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Category](t, w)
	require.Len(t, list, 3)
	require.Equal(t, "C001", list[0].Code)
	require.Equal(t, "主要战役", list[0].Title)
	require.Equal(t, "C003", list[2].Code)
}

func TestAddCategoryAppendsWithDefaults(t *testing.T) {
	engine, _ := newServer(t, false)

	w := do(t, engine, http.MethodPost, "/api/v1/categories", map[string]string{"code": "C004", "title": "测试"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Category](t, w)
	require.NotEmpty(t, created.ID)
	require.Equal(t, models.DefaultCategoryIcon, created.Icon)

	w = do(t, engine, http.MethodGet, "/api/v1/categories", nil)
	list := decode[[]models.Category](t, w)
	require.Len(t, list, 4)
	require.Equal(t, "C004", list[3].Code)
	require.Equal(t, "测试", list[3].Title)
	require.Equal(t, models.DefaultCategoryIcon, list[3].Icon)
}

func TestCategoryValidationGate(t *testing.T) {
	engine, st := newServer(t, false)

	// Prime the store so the only possible write would be the rejected one.
	do(t, engine, http.MethodGet, "/api/v1/categories", nil)
	writes := st.puts

	w := do(t, engine, http.MethodPost, "/api/v1/categories", map[string]string{"code": "", "title": "有标题"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "code is required")
	require.Equal(t, writes, st.puts)

	w = do(t, engine, http.MethodGet, "/api/v1/categories", nil)
	require.Len(t, decode[[]models.Category](t, w), 3)
}

func TestExhibitValidationGate(t *testing.T) {
	engine, st := newServer(t, false)

	do(t, engine, http.MethodGet, "/api/v1/exhibits", nil)
	writes := st.puts

	w := do(t, engine, http.MethodPost, "/api/v1/exhibits", map[string]string{"categoryId": "1", "code": "E009", "name": "   "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "name is required")
	require.Equal(t, writes, st.puts)
}

func TestExhibitValidationGateColdStore(t *testing.T) {
	// A rejected submit against a never-read store must not write anything,
	// not even the first-load seed the category lookup would produce.
	engine, st := newServer(t, false)

	w := do(t, engine, http.MethodPost, "/api/v1/exhibits", map[string]string{"categoryId": "1", "code": "E009", "name": "   "})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "name is required")
	require.Equal(t, 0, st.puts)
}

func TestDeleteCategoryRequiresConfirmation(t *testing.T) {
	engine, _ := newServer(t, false)
	do(t, engine, http.MethodGet, "/api/v1/categories", nil)

	w := do(t, engine, http.MethodDelete, "/api/v1/categories/1", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Cancelled delete leaves the collection untouched.
	w = do(t, engine, http.MethodGet, "/api/v1/categories", nil)
	require.Len(t, decode[[]models.Category](t, w), 3)
}

func TestDeleteCategoryKeepsOrphanedExhibits(t *testing.T) {
	engine, _ := newServer(t, false)
	do(t, engine, http.MethodGet, "/api/v1/categories", nil)
	do(t, engine, http.MethodGet, "/api/v1/exhibits", nil)

	w := do(t, engine, http.MethodDelete, "/api/v1/categories/1?confirm=1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, engine, http.MethodGet, "/api/v1/categories", nil)
	require.Len(t, decode[[]models.Category](t, w), 2)

	// The exhibits of category "1" stay in storage, orphaned.
	w = do(t, engine, http.MethodGet, "/api/v1/exhibits", nil)
	all := decode[[]models.Exhibit](t, w)
	require.Len(t, all, 2)
	require.Equal(t, "1", all[0].CategoryID)
}

func TestDeleteCategoryCascadeOption(t *testing.T) {
	engine, _ := newServer(t, true)
	do(t, engine, http.MethodGet, "/api/v1/categories", nil)
	do(t, engine, http.MethodGet, "/api/v1/exhibits", nil)

	w := do(t, engine, http.MethodDelete, "/api/v1/categories/1?confirm=1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, engine, http.MethodGet, "/api/v1/exhibits", nil)
	require.Empty(t, decode[[]models.Exhibit](t, w))
}

func TestDeleteUnknownCategory(t *testing.T) {
	engine, _ := newServer(t, false)
	w := do(t, engine, http.MethodDelete, "/api/v1/categories/999?confirm=1", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestExhibitsByCategoryFilter(t *testing.T) {
	engine, _ := newServer(t, false)

	w := do(t, engine, http.MethodGet, "/api/v1/exhibits?categoryId=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Exhibit](t, w)
	require.Len(t, list, 2)
	require.Equal(t, "E001", list[0].Code)
	require.Equal(t, "E002", list[1].Code)

	w = do(t, engine, http.MethodGet, "/api/v1/exhibits?categoryId=3", nil)
	require.Empty(t, decode[[]models.Exhibit](t, w))
}

func TestCreateExhibitUnknownCategory(t *testing.T) {
	engine, _ := newServer(t, false)
	w := do(t, engine, http.MethodPost, "/api/v1/exhibits", map[string]string{"categoryId": "999", "code": "E009", "name": "未知"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateExhibitKeepsCategory(t *testing.T) {
	engine, _ := newServer(t, false)
	do(t, engine, http.MethodGet, "/api/v1/exhibits", nil)

	w := do(t, engine, http.MethodPut, "/api/v1/exhibits/101", map[string]string{
		"code": "E001", "name": "改名后的展品", "categoryId": "2",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.Exhibit](t, w)
	require.Equal(t, "101", updated.ID)
	require.Equal(t, "改名后的展品", updated.Name)
	require.Equal(t, "1", updated.CategoryID)

	// Records of other categories are untouched.
	w = do(t, engine, http.MethodGet, "/api/v1/exhibits", nil)
	all := decode[[]models.Exhibit](t, w)
	require.Len(t, all, 2)
	require.Equal(t, "百团大战", all[1].Name)
}

func TestUpdateUnknownExhibit(t *testing.T) {
	engine, _ := newServer(t, false)
	w := do(t, engine, http.MethodPut, "/api/v1/exhibits/999", map[string]string{"code": "E9", "name": "无"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

type viewerState struct {
	Category      models.Category  `json:"category"`
	Exhibits      []models.Exhibit `json:"exhibits"`
	SelectedIndex int              `json:"selectedIndex"`
	Selected      *models.Exhibit  `json:"selected"`
}

func TestViewerUnknownCategory(t *testing.T) {
	engine, _ := newServer(t, false)
	w := do(t, engine, http.MethodGet, "/api/v1/viewer/999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewerNavigationBounds(t *testing.T) {
	engine, _ := newServer(t, false)

	w := do(t, engine, http.MethodGet, "/api/v1/viewer/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := decode[viewerState](t, w)
	require.Equal(t, 0, state.SelectedIndex)
	require.Len(t, state.Exhibits, 2)
	require.Equal(t, "E001", state.Selected.Code)

	// previous at index 0 is a no-op
	state = decode[viewerState](t, do(t, engine, http.MethodPost, "/api/v1/viewer/1/previous", nil))
	require.Equal(t, 0, state.SelectedIndex)

	state = decode[viewerState](t, do(t, engine, http.MethodPost, "/api/v1/viewer/1/next", nil))
	require.Equal(t, 1, state.SelectedIndex)
	require.Equal(t, "E002", state.Selected.Code)

	// next at the last index is a no-op
	state = decode[viewerState](t, do(t, engine, http.MethodPost, "/api/v1/viewer/1/next", nil))
	require.Equal(t, 1, state.SelectedIndex)
}

func TestViewerSelectAt(t *testing.T) {
	engine, _ := newServer(t, false)
	do(t, engine, http.MethodGet, "/api/v1/viewer/1", nil)

	state := decode[viewerState](t, do(t, engine, http.MethodPost, "/api/v1/viewer/1/select", map[string]int{"index": 1}))
	require.Equal(t, 1, state.SelectedIndex)

	w := do(t, engine, http.MethodPost, "/api/v1/viewer/1/select", map[string]int{"index": 5})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestViewerCreateSelectsNewExhibit(t *testing.T) {
	engine, _ := newServer(t, false)
	do(t, engine, http.MethodGet, "/api/v1/viewer/1", nil)

	w := do(t, engine, http.MethodPost, "/api/v1/viewer/1/exhibits", map[string]string{"code": "E003", "name": "平型关大捷"})
	require.Equal(t, http.StatusCreated, w.Code)
	state := decode[viewerState](t, w)
	require.Len(t, state.Exhibits, 3)
	require.Equal(t, 2, state.SelectedIndex)
	require.Equal(t, "平型关大捷", state.Selected.Name)
	require.Equal(t, models.DefaultExhibitImage, state.Selected.Image)
}

func TestViewerConcurrentNavigation(t *testing.T) {
	engine, _ := newServer(t, false)
	do(t, engine, http.MethodGet, "/api/v1/viewer/1", nil)

	// Hammer the shared selection from both directions at once; the
	// interesting failures here surface under the race detector.
	var wg sync.WaitGroup
	codes := make(chan int, 32)
	for i := 0; i < 32; i++ {
		path := "/api/v1/viewer/1/next"
		if i%2 == 1 {
			path = "/api/v1/viewer/1/previous"
		}
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(nil))
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			codes <- w.Code
		}(path)
	}
	wg.Wait()
	close(codes)
	for code := range codes {
		require.Equal(t, http.StatusOK, code)
	}

	state := decode[viewerState](t, do(t, engine, http.MethodGet, "/api/v1/viewer/1", nil))
	require.Equal(t, 0, state.SelectedIndex)
	require.Len(t, state.Exhibits, 2)
}

func TestViewerClampsAfterDeletion(t *testing.T) {
	engine, _ := newServer(t, false)

	do(t, engine, http.MethodGet, "/api/v1/viewer/1", nil)
	state := decode[viewerState](t, do(t, engine, http.MethodPost, "/api/v1/viewer/1/next", nil))
	require.Equal(t, 1, state.SelectedIndex)

	w := do(t, engine, http.MethodDelete, "/api/v1/exhibits/"+state.Selected.ID+"?confirm=1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// The selection re-clamps against the shrunken filtered list.
	state = decode[viewerState](t, do(t, engine, http.MethodPost, "/api/v1/viewer/1/next", nil))
	require.Len(t, state.Exhibits, 1)
	require.Equal(t, 0, state.SelectedIndex)
	require.Equal(t, "E001", state.Selected.Code)
}

func TestDescribeFallbackWhenUnconfigured(t *testing.T) {
	engine, _ := newServer(t, false)

	w := do(t, engine, http.MethodPost, "/api/v1/describe", map[string]string{"name": "百团大战", "categoryTitle": "主要战役"})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]string](t, w)
	require.Equal(t, "请配置 API KEY 以使用 AI 生成功能。", resp["description"])
}

func TestDescribeRequiresName(t *testing.T) {
	engine, _ := newServer(t, false)
	w := do(t, engine, http.MethodPost, "/api/v1/describe", map[string]string{"name": "  "})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadImageReturnsDataURI(t *testing.T) {
	engine, _ := newServer(t, false)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "icon.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a})
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[map[string]string](t, w)
	require.True(t, strings.HasPrefix(resp["dataUri"], "data:image/png;base64,"), resp["dataUri"])
}

func TestUploadImageRequiresFile(t *testing.T) {
	engine, _ := newServer(t, false)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("other", "x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/uploads/image", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	engine, _ := newServer(t, false)
	do(t, engine, http.MethodGet, "/api/v1/categories", nil)

	w := do(t, engine, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "catalog_store_reads_total")
}

func TestCollectionRoundTripThroughAPI(t *testing.T) {
	engine, _ := newServer(t, false)
	do(t, engine, http.MethodGet, "/api/v1/categories", nil)

	for i := 0; i < 3; i++ {
		w := do(t, engine, http.MethodPost, "/api/v1/categories", map[string]string{
			"code":  fmt.Sprintf("C%03d", 10+i),
			"title": fmt.Sprintf("新分类%d", i),
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := do(t, engine, http.MethodGet, "/api/v1/categories", nil)
	list := decode[[]models.Category](t, w)
	require.Len(t, list, 6)
	// Appends preserve order.
	require.Equal(t, "C010", list[3].Code)
	require.Equal(t, "C012", list[5].Code)
}
