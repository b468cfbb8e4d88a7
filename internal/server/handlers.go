package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"flightsite/internal/logger"
	"flightsite/internal/stats"
	"flightsite/internal/storage"
	"flightsite/internal/web"
)

// maxImportBytes caps accepted TSV upload size
const maxImportBytes = 32 << 20

// HandleHealth provides the health check endpoint
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"airports":  s.Index.Len(),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(health)
}

// HandleImport accepts a LogTen TSV export (raw body or multipart "file"
// field), replaces the pilot's logbook, and recomputes the stats bundle.
func (s *Server) HandleImport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	handle := strings.TrimSpace(r.URL.Query().Get("handle"))
	if handle == "" {
		http.Error(w, "handle query parameter required", http.StatusBadRequest)
		return
	}
	if handle == DemoHandle {
		http.Error(w, "demo profile cannot be imported over", http.StatusForbidden)
		return
	}

	text, err := readImportBody(r)
	if err != nil {
		s.log.Warn("import body rejected", logger.Fields{"handle": handle, "error": err.Error()})
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := s.newParser().Parse(text)
	if err != nil {
		http.Error(w, "Import failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	pilot, err := s.Store.UpsertPilot(ctx, handle, r.URL.Query().Get("name"), "")
	if err != nil {
		s.log.Error("pilot upsert failed", err, logger.Fields{"handle": handle})
		http.Error(w, "Import failed", http.StatusInternalServerError)
		return
	}
	if err := s.Store.ReplaceFlights(ctx, pilot.ID, result.Flights); err != nil {
		s.log.Error("flight replace failed", err, logger.Fields{"handle": handle})
		http.Error(w, "Import failed", http.StatusInternalServerError)
		return
	}

	bundle := stats.BuildStatsBundle(result.Flights, time.Now().UTC())
	if err := s.Store.SaveBundle(ctx, pilot.ID, bundle); err != nil {
		s.log.Error("bundle save failed", err, logger.Fields{"handle": handle})
		http.Error(w, "Import failed", http.StatusInternalServerError)
		return
	}

	s.log.Info("import finished", logger.Fields{
		"handle":   handle,
		"imported": len(result.Flights),
		"skipped":  result.Skipped,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"imported": len(result.Flights),
		"skipped":  result.Skipped,
	})
}

// readImportBody extracts TSV text from a raw or multipart request body
func readImportBody(r *http.Request) (string, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxImportBytes)

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxImportBytes); err != nil {
			return "", fmt.Errorf("invalid multipart body: %w", err)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return "", fmt.Errorf("multipart upload missing file field: %w", err)
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("failed to read upload: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read request body: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty request body")
	}
	return string(data), nil
}

// HandleProfile serves the pilot profile page at /p/{handle}
func (s *Server) HandleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	handle := strings.Trim(strings.TrimPrefix(r.URL.Path, "/p/"), "/")
	if handle == "" || strings.Contains(handle, "/") {
		http.Error(w, "Pilot not found", http.StatusNotFound)
		return
	}

	profile, status, err := s.loadProfile(r, handle)
	if err != nil {
		if status == http.StatusNotFound {
			http.Error(w, "Pilot not found", http.StatusNotFound)
		} else {
			s.log.Error("profile load failed", err, logger.Fields{"handle": handle})
			http.Error(w, "Profile unavailable", http.StatusInternalServerError)
		}
		return
	}

	page, err := s.Profiles.BuildPage(profile)
	if err != nil {
		s.log.Error("profile render failed", err, logger.Fields{"handle": handle})
		http.Error(w, "Profile unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(page))
}

// HandlePilotAPI routes /api/pilots/{handle}/stats and
// /api/pilots/{handle}/publish
func (s *Server) HandlePilotAPI(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/pilots/")
	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) != 2 || parts[0] == "" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	handle, action := parts[0], parts[1]

	switch action {
	case "stats":
		s.handleStats(w, r, handle)
	case "publish":
		s.handlePublish(w, r, handle)
	case "snapshots":
		s.handleSnapshots(w, r, handle)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

// handleStats serves the raw stats bundle as JSON
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request, handle string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	profile, status, err := s.loadProfile(r, handle)
	if err != nil {
		if status == http.StatusNotFound {
			http.Error(w, "Pilot not found", http.StatusNotFound)
		} else {
			s.log.Error("stats load failed", err, logger.Fields{"handle": handle})
			http.Error(w, "Stats unavailable", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(profile.Bundle)
}

// handlePublish renders the profile and stores it as a snapshot
func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request, handle string) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ctx := r.Context()

	profile, status, err := s.loadProfile(r, handle)
	if err != nil {
		if status == http.StatusNotFound {
			http.Error(w, "Pilot not found", http.StatusNotFound)
		} else {
			s.log.Error("publish load failed", err, logger.Fields{"handle": handle})
			http.Error(w, "Publish failed", http.StatusInternalServerError)
		}
		return
	}

	files, err := s.Profiles.BuildSnapshotFiles(profile)
	if err != nil {
		s.log.Error("snapshot render failed", err, logger.Fields{"handle": handle})
		http.Error(w, "Publish failed", http.StatusInternalServerError)
		return
	}

	publishedAt := time.Now().UTC()
	for filename, data := range files {
		if err := s.Storage.StoreFile(ctx, data, handle, filename, publishedAt); err != nil {
			s.log.Error("snapshot store failed", err, logger.Fields{
				"handle": handle,
				"file":   filename,
			})
			http.Error(w, "Publish failed", http.StatusInternalServerError)
			return
		}
	}

	folder := storage.SnapshotFolderPath(handle, publishedAt)
	s.log.Info("snapshot published", logger.Fields{"handle": handle, "folder": folder})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"folder":       folder,
		"files":        len(files),
		"published_at": publishedAt.Format(time.RFC3339),
	})
}

// handleSnapshots lists published snapshot pages for a pilot, newest first
func (s *Server) handleSnapshots(w http.ResponseWriter, r *http.Request, handle string) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 {
			limit = parsed
		}
		if limit > 100 {
			limit = 100
		}
	}

	snapshots, err := s.Storage.ListSnapshots(r.Context(), handle, limit)
	if err != nil {
		s.log.Error("snapshot list failed", err, logger.Fields{"handle": handle})
		http.Error(w, "Failed to list snapshots", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"snapshots": snapshots,
		"count":     len(snapshots),
	})
}

// HandleFileProxy serves published snapshot files
func (s *Server) HandleFileProxy(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filePath := strings.TrimPrefix(r.URL.Path, "/files/")
	if filePath == "" {
		http.Error(w, "File path required", http.StatusBadRequest)
		return
	}
	if strings.Contains(filePath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	data, err := s.Storage.GetFile(r.Context(), filePath)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", storage.GetContentType(filePath))
	w.Write(data)
}

// loadProfile assembles a pilot profile from the store. Returns the HTTP
// status to use on error.
func (s *Server) loadProfile(r *http.Request, handle string) (*web.Profile, int, error) {
	ctx := r.Context()

	pilot, err := s.Store.GetPilot(ctx, handle)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if pilot == nil {
		return nil, http.StatusNotFound, fmt.Errorf("pilot %q not found", handle)
	}

	bundle, err := s.Store.LoadBundle(ctx, pilot.ID)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	if bundle == nil {
		// Imported pilots always have a bundle; recompute covers older rows
		flights, err := s.Store.LoadFlights(ctx, pilot.ID)
		if err != nil {
			return nil, http.StatusInternalServerError, err
		}
		bundle = stats.BuildStatsBundle(flights, time.Now().UTC())
		if err := s.Store.SaveBundle(ctx, pilot.ID, bundle); err != nil {
			return nil, http.StatusInternalServerError, err
		}
	}

	return &web.Profile{
		Handle: pilot.Handle,
		Name:   pilot.Name,
		Bio:    pilot.Bio,
		Bundle: bundle,
	}, http.StatusOK, nil
}
