package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ukaji3/scorelens/internal/logging"
	"github.com/ukaji3/scorelens/pkg/scorelens"
	"github.com/ukaji3/scorelens/pkg/scorelens/chart"
	"github.com/ukaji3/scorelens/pkg/scorelens/models"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// sessionView is the JSON representation of a session returned to clients.
type sessionView struct {
	SessionID     string              `json:"session_id"`
	BaseName      string              `json:"base_name"`
	Demo          bool                `json:"demo"`
	Table         models.Table        `json:"table"`
	Columns       []models.ColumnInfo `json:"columns"`
	DefaultColumn string              `json:"default_column"`
}

func viewOf(s *session) sessionView {
	t, cols, def := s.Snapshot()
	return sessionView{
		SessionID:     s.ID,
		BaseName:      s.BaseName,
		Demo:          s.Original == nil,
		Table:         t,
		Columns:       cols,
		DefaultColumn: def,
	}
}

// handleIndex serves the embedded single-page UI.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page, err := staticFiles.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

// handleUpload reads an uploaded workbook, loads it into a table, classifies
// its columns, and opens an edit session holding the original bytes.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Upload.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "bad_request", "file too large or invalid form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "bad_request", "no file provided")
		return
	}
	defer file.Close()

	// Uploads are size-capped, so buffering the whole workbook is fine;
	// the original bytes must be retained anyway for later exports.
	data, err := io.ReadAll(file)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "bad_request", "failed to read file")
		return
	}

	t, err := scorelens.Load(bytes.NewReader(data))
	if err != nil {
		respondError(w, r, err)
		return
	}
	cols := scorelens.Classify(t)
	defaultColumn, err := scorelens.DefaultColumn(t)
	if err != nil {
		respondError(w, r, err)
		return
	}

	base := strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	sess := s.store.Create(base, data, t, cols, defaultColumn)

	logging.FromContext(r.Context()).Info("workbook uploaded",
		"session_id", sess.ID,
		"file", header.Filename,
		"rows", len(t.Rows),
		"columns", len(t.Columns),
	)
	writeJSON(w, r, viewOf(sess))
}

// handleDemo opens a session seeded with generated demo data. Demo sessions
// have no original workbook, so export builds a plain one.
func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	t := scorelens.Demo(time.Now().UnixNano())
	cols := scorelens.Classify(t)
	defaultColumn, err := scorelens.DefaultColumn(t)
	if err != nil {
		respondError(w, r, err)
		return
	}
	sess := s.store.Create("演示数据", nil, t, cols, defaultColumn)
	writeJSON(w, r, viewOf(sess))
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*session, bool) {
	id := chi.URLParam(r, "sessionID")
	sess, ok := s.store.Get(id)
	if !ok {
		writeErrorJSON(w, http.StatusNotFound, "not_found", "unknown session")
		return nil, false
	}
	return sess, true
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, r, viewOf(sess))
}

// handleReplaceTable swaps in the edited table. Column identity and order
// must not change; rows may be edited, added, or removed.
func (s *Server) handleReplaceTable(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}

	var edited models.Table
	if err := json.NewDecoder(r.Body).Decode(&edited); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "bad_request", "invalid table JSON")
		return
	}
	if i, aligned := edited.Aligned(); !aligned {
		respondError(w, r, &scorelens.ShapeError{Row: i, Got: len(edited.Rows[i]), Want: len(edited.Columns)})
		return
	}

	current, _, _ := sess.Snapshot()
	if !slices.Equal(current.Columns, edited.Columns) {
		respondError(w, r, fmt.Errorf("%w: session has %v, edit has %v",
			scorelens.ErrHeaderMismatch, current.Columns, edited.Columns))
		return
	}

	cols := scorelens.Classify(edited)
	defaultColumn, err := scorelens.DefaultColumn(edited)
	if err != nil {
		// Edits removed every numeric column; keep the session editable
		// but with no analyzable column selected.
		defaultColumn = ""
	}
	sess.SetTable(edited, cols, defaultColumn)
	writeJSON(w, r, viewOf(sess))
}

// selectedColumn resolves the column query parameter, falling back to the
// session default.
func selectedColumn(r *http.Request, defaultColumn string) (string, error) {
	if c := r.URL.Query().Get("column"); c != "" {
		return c, nil
	}
	if defaultColumn == "" {
		return "", scorelens.ErrNoNumericColumn
	}
	return defaultColumn, nil
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	t, _, def := sess.Snapshot()

	column, err := selectedColumn(r, def)
	if err != nil {
		respondError(w, r, err)
		return
	}
	sum, _, err := scorelens.Summarize(t, column)
	if err != nil {
		respondError(w, r, err)
		return
	}
	writeJSON(w, r, sum)
}

// handleChart renders the distribution chart fresh for every request; it
// is never cached or persisted.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	t, _, def := sess.Snapshot()

	column, err := selectedColumn(r, def)
	if err != nil {
		respondError(w, r, err)
		return
	}
	sum, xs, err := scorelens.Summarize(t, column)
	if err != nil {
		respondError(w, r, err)
		return
	}
	png, err := chart.Render(sum, xs, chart.DefaultTheme())
	if err != nil {
		respondError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// handleExport serializes the session's table to a workbook: a fresh plain
// one for demo sessions, a format-preserving update of the uploaded
// original otherwise.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.session(w, r)
	if !ok {
		return
	}
	t, _, _ := sess.Snapshot()

	var out []byte
	var err error
	if sess.Original == nil {
		out, err = scorelens.ExportPlain(t)
	} else {
		out, err = scorelens.Update(sess.Original, t, scorelens.DefaultUpdateOptions())
	}
	if err != nil {
		respondError(w, r, err)
		return
	}

	filename := sess.BaseName + "_updated.xlsx"
	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	w.Write(out)
}
