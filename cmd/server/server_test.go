package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/printquote/internal/budget"
	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/pricing"
	"github.com/Simplici0/printquote/internal/storage"
)

type memoryPersister struct {
	mu    sync.Mutex
	saves int
	last  budget.State
}

func (p *memoryPersister) SaveState(_ context.Context, state budget.State) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves++
	p.last = state
	return nil
}

type MockQuotes struct {
	mock.Mock
}

func (m *MockQuotes) SaveQuote(ctx context.Context, title, notes string, state budget.State) (int64, error) {
	args := m.Called(ctx, title, notes, state)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuotes) ListQuotes(ctx context.Context, query string) ([]storage.QuoteSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.QuoteSummary), args.Error(1)
}

func (m *MockQuotes) GetQuote(ctx context.Context, id int64) (storage.QuoteDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(storage.QuoteDetail), args.Error(1)
}

type testServer struct {
	handler   http.Handler
	persister *memoryPersister
	quotes    *MockQuotes
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	persister := &memoryPersister{}
	quotes := new(MockQuotes)
	srv := newServer(budget.NewStore(budget.DefaultState(), persister, log), quotes, log)

	return &testServer{
		handler:   srv.routes([]string{"http://localhost:5173"}),
		persister: persister,
		quotes:    quotes,
	}
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (ts *testServer) addItem(t *testing.T, kind string) string {
	t.Helper()

	rec := ts.do(t, http.MethodPost, "/api/items/"+kind, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	item := decodeBody[struct {
		ID string `json:"id"`
	}](t, rec)
	require.NotEmpty(t, item.ID)
	return item.ID
}

func TestEndToEndOffsetBudget(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPut, "/api/info", `{"totalQuantity": 10, "technology": "OFFSET"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	paperID := ts.addItem(t, "papers")
	rec = ts.do(t, http.MethodPatch, "/api/items/papers/"+paperID, `{"paperIndex": 9, "sizeTag": "A4", "quantity": 100}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	laborID := ts.addItem(t, "labor")
	rec = ts.do(t, http.MethodPatch, "/api/items/labor/"+laborID, `{"roleIndex": "4", "minutes": 60}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	edited := decodeBody[struct {
		Item   pricing.LaborItem `json:"item"`
		Totals pricing.Totals    `json:"totals"`
	}](t, rec)
	assert.InDelta(t, 0.6, edited.Item.PerMinuteRate, 1e-9)
	assert.InDelta(t, 46.2, edited.Totals.GrandTotal, 1e-9)

	rec = ts.do(t, http.MethodGet, "/api/totals", "")
	require.Equal(t, http.StatusOK, rec.Code)
	totals := decodeBody[pricing.Totals](t, rec)
	assert.InDelta(t, 6.0, totals.PaperSubtotal, 1e-9)
	assert.InDelta(t, 36.0, totals.LaborSubtotal, 1e-9)
	assert.InDelta(t, 42.0, totals.Subtotal, 1e-9)
	assert.InDelta(t, 4.2, totals.Surcharge, 1e-9)
	assert.InDelta(t, 4.62, totals.UnitPrice, 1e-9)

	assert.Equal(t, 5, ts.persister.saves)
}

func TestPatchMaterialCascadeAndOrdering(t *testing.T) {
	ts := newTestServer(t)
	id := ts.addItem(t, "materials")

	rec := ts.do(t, http.MethodPatch, "/api/items/materials/"+id, `{"materialIndex": 0, "variantIndex": 1, "quantity": 2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decodeBody[struct {
		Item pricing.MaterialItem `json:"item"`
	}](t, rec)
	assert.Equal(t, 1.9, first.Item.UnitPrice)
	assert.True(t, first.Item.VariantIndex.IsSet())

	rec = ts.do(t, http.MethodPatch, "/api/items/materials/"+id, `{"materialIndex": 2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	second := decodeBody[struct {
		Item pricing.MaterialItem `json:"item"`
	}](t, rec)
	assert.False(t, second.Item.VariantIndex.IsSet())
	assert.Zero(t, second.Item.UnitPrice)
	assert.Equal(t, 2.0, second.Item.Quantity)
}

func TestPatchNullClearsSelection(t *testing.T) {
	ts := newTestServer(t)
	id := ts.addItem(t, "papers")

	rec := ts.do(t, http.MethodPatch, "/api/items/papers/"+id, `{"paperIndex": 9, "sizeTag": "A4"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPatch, "/api/items/papers/"+id, `{"paperIndex": null}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody[struct {
		Item pricing.PaperItem `json:"item"`
	}](t, rec)
	assert.False(t, resp.Item.PaperIndex.IsSet())
	assert.Equal(t, catalog.SizeA4, resp.Item.SizeTag)
	assert.Equal(t, 0.06, resp.Item.UnitPrice)
}

func TestPatchPrintSelection(t *testing.T) {
	ts := newTestServer(t)
	id := ts.addItem(t, "prints")

	rec := ts.do(t, http.MethodPatch, "/api/items/prints/"+id, `{"type": "PRETO (1 lado)", "format": "A4", "quantity": 100}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeBody[struct {
		Item   pricing.PrintItem `json:"item"`
		Totals pricing.Totals    `json:"totals"`
	}](t, rec)
	assert.Equal(t, 0.03, resp.Item.UnitPrice)
	assert.InDelta(t, 3.0, resp.Totals.PrintSubtotal, 1e-9)
}

func TestItemErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{name: "unknown kind", method: http.MethodPost, path: "/api/items/inks", status: http.StatusNotFound},
		{name: "unknown id", method: http.MethodPatch, path: "/api/items/labor/nope", body: `{"minutes": 5}`, status: http.StatusNotFound},
		{name: "remove unknown id", method: http.MethodDelete, path: "/api/items/papers/nope", status: http.StatusNotFound},
		{name: "bad index", method: http.MethodPatch, path: "/api/items/papers/nope", body: `{"paperIndex": "x"}`, status: http.StatusBadRequest},
		{name: "bad technology", method: http.MethodPut, path: "/api/info", body: `{"technology": "LASER"}`, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.NotEmpty(t, decodeBody[errorResponse](t, rec).Error)
		})
	}

	assert.Zero(t, ts.persister.saves)
}

func TestRemoveItem(t *testing.T) {
	ts := newTestServer(t)
	keep := ts.addItem(t, "prints")
	drop := ts.addItem(t, "prints")

	rec := ts.do(t, http.MethodDelete, "/api/items/prints/"+drop, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/state", "")
	state := decodeBody[stateResponse](t, rec)
	require.Len(t, state.State.Items.Prints, 1)
	assert.Equal(t, keep, state.State.Items.Prints[0].ID)
}

func TestStateReportsStaleItems(t *testing.T) {
	ts := newTestServer(t)
	id := ts.addItem(t, "labor")

	rec := ts.do(t, http.MethodPatch, "/api/items/labor/"+id, `{"roleIndex": 10, "minutes": 30}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodPut, "/api/catalog", `{"maoObra": [{"profissional": "ARTE FINALISTA", "hora": 60}]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/state", "")
	state := decodeBody[stateResponse](t, rec)
	assert.Equal(t, []pricing.StaleItem{{Kind: pricing.KindLabor, ID: id}}, state.Stale)
	assert.NotZero(t, state.Totals.LaborSubtotal)
}

func TestImportCatalog(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/catalog/import", `{"foo": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "formato de JSON inválido", decodeBody[errorResponse](t, rec).Error)

	rec = ts.do(t, http.MethodPost, "/api/catalog/import", `{"papeis": [`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "erro ao ler o arquivo JSON", decodeBody[errorResponse](t, rec).Error)
	assert.Zero(t, ts.persister.saves)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "valores-base.json")
	require.NoError(t, err)
	_, err = part.Write([]byte(`{"impressoes": [{"tipo": "COLOR", "formato": "A3", "valor": 1.5}]}`))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/catalog/prints/types", "")
	assert.Equal(t, []string{"COLOR"}, decodeBody[[]string](t, rec))

	rec = ts.do(t, http.MethodGet, "/api/catalog/prints/formats?type=COLOR", "")
	assert.Equal(t, []string{"A3"}, decodeBody[[]string](t, rec))

	rec = ts.do(t, http.MethodGet, "/api/catalog", "")
	cat := decodeBody[catalog.Catalog](t, rec)
	assert.Empty(t, cat.Papers)
	assert.NotNil(t, cat.Papers)
}

func TestExportCatalog(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/catalog/export", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="valores-base.json"`, rec.Header().Get("Content-Disposition"))

	cat, err := catalog.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default(), cat)

	rec = ts.do(t, http.MethodGet, "/api/catalog/export.xlsx", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestImages(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/images", `{"dataUrl": "https://example.com/a.png"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/images", `{"dataUrl": "data:image/png;base64,AAA"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 0, decodeBody[imageResponse](t, rec).Index)

	rec = ts.do(t, http.MethodDelete, "/api/images/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/images/0", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBudgetText(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPut, "/api/info", `{"totalQuantity": 2, "technology": "DIGITAL", "description": "Panfleto"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/budget/text", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Descrição: Panfleto")
	assert.Contains(t, rec.Body.String(), "TOTAL GERAL: R$ 0,00")

	rec = ts.do(t, http.MethodGet, "/api/budget/export.xlsx", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="orcamento.xlsx"`, rec.Header().Get("Content-Disposition"))
}

func TestSaveQuote(t *testing.T) {
	ts := newTestServer(t)
	ts.quotes.On("SaveQuote", mock.Anything, "Convite", "cliente novo", mock.AnythingOfType("budget.State")).Return(int64(7), nil)

	rec := ts.do(t, http.MethodPost, "/api/quotes", `{"title": " Convite ", "notes": "cliente novo"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, int64(7), decodeBody[saveQuoteResponse](t, rec).ID)

	rec = ts.do(t, http.MethodPost, "/api/quotes", `{"title": "  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.quotes.AssertNumberOfCalls(t, "SaveQuote", 1)
}

func TestListAndGetQuotes(t *testing.T) {
	ts := newTestServer(t)
	summaries := []storage.QuoteSummary{{ID: 2, Title: "Panfleto", Total: 46.2}}
	ts.quotes.On("ListQuotes", mock.Anything, "panf").Return(summaries, nil)
	ts.quotes.On("GetQuote", mock.Anything, int64(2)).Return(storage.QuoteDetail{QuoteSummary: summaries[0]}, nil)
	ts.quotes.On("GetQuote", mock.Anything, int64(3)).Return(storage.QuoteDetail{}, storage.ErrQuoteNotFound)

	rec := ts.do(t, http.MethodGet, "/api/quotes?q=panf", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, summaries, decodeBody[[]storage.QuoteSummary](t, rec))

	rec = ts.do(t, http.MethodGet, "/api/quotes/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Panfleto", decodeBody[storage.QuoteDetail](t, rec).Title)

	rec = ts.do(t, http.MethodGet, "/api/quotes/3", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/quotes/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.quotes.AssertExpectations(t)
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/items/papers/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}
