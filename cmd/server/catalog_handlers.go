package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/render"

	"github.com/Simplici0/printquote/internal/catalog"
	"github.com/Simplici0/printquote/internal/report"
)

const (
	catalogFilename = "valores-base.json"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	maxUploadSize   = 10 << 20
)

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.store.Snapshot().Catalog)
}

// handleReplaceCatalog commits a catalog edited as a working copy.
func (s *server) handleReplaceCatalog(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleReplaceCatalog"

	cat, err := catalog.Decode(http.MaxBytesReader(w, r.Body, maxUploadSize))
	if err != nil {
		s.failDocument(w, r, op, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	if err := s.store.ReplaceCatalog(ctx, cat); err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to save catalog", err)
		return
	}

	render.JSON(w, r, s.store.Snapshot().Catalog)
}

// handleImportCatalog accepts a price list either as a multipart "file" upload
// or as the raw request body.
func (s *server) handleImportCatalog(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleImportCatalog"

	body, err := uploadedDocument(w, r)
	if err != nil {
		s.fail(w, r, op, http.StatusBadRequest, catalog.ErrMalformedDocument.Error(), err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	cat, err := s.store.ImportCatalog(ctx, body)
	if err != nil {
		s.failDocument(w, r, op, err)
		return
	}

	s.log.Info("catalog imported",
		"papers", len(cat.Papers),
		"materials", len(cat.Materials),
		"prints", len(cat.Prints),
		"labor", len(cat.Labor),
	)
	render.JSON(w, r, cat)
}

func uploadedDocument(w http.ResponseWriter, r *http.Request) (io.Reader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return r.Body, nil
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

func (s *server) failDocument(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, catalog.ErrInvalidDocument):
		s.fail(w, r, op, http.StatusBadRequest, catalog.ErrInvalidDocument.Error(), err)
	case errors.Is(err, catalog.ErrMalformedDocument):
		s.fail(w, r, op, http.StatusBadRequest, catalog.ErrMalformedDocument.Error(), err)
	default:
		s.fail(w, r, op, http.StatusInternalServerError, "failed to import catalog", err)
	}
}

func (s *server) handleExportCatalog(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleExportCatalog"

	var buf bytes.Buffer
	if err := s.store.ExportCatalog(&buf); err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to export catalog", err)
		return
	}

	writeAttachment(w, "application/json", catalogFilename, buf.Bytes())
}

func (s *server) handleExportCatalogWorkbook(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.handleExportCatalogWorkbook"

	data, err := report.CatalogWorkbook(s.store.Snapshot().Catalog)
	if err != nil {
		s.fail(w, r, op, http.StatusInternalServerError, "failed to build workbook", err)
		return
	}

	writeAttachment(w, xlsxContentType, "valores-base.xlsx", data)
}

func (s *server) handlePrintTypes(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, s.store.Snapshot().Catalog.PrintTypes())
}

func (s *server) handlePrintFormats(w http.ResponseWriter, r *http.Request) {
	printType := r.URL.Query().Get("type")
	render.JSON(w, r, s.store.Snapshot().Catalog.PrintFormats(printType))
}
