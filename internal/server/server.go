package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"flightsite/internal/airports"
	"flightsite/internal/config"
	"flightsite/internal/demo"
	"flightsite/internal/importer"
	"flightsite/internal/logger"
	"flightsite/internal/stats"
	"flightsite/internal/storage"
	"flightsite/internal/store"
	"flightsite/internal/web"
)

// DemoHandle is the reserved handle for the built-in demo profile
const DemoHandle = "demo"

// Server wires the logbook pipeline behind the HTTP surface
type Server struct {
	Config   *config.Config
	Store    *store.Store
	Index    *airports.Index
	Profiles *web.ProfileBuilder
	Storage  storage.Client

	log *logger.Logger
}

// NewServer creates a server instance with its snapshot storage backend
func NewServer(ctx context.Context, cfg *config.Config, st *store.Store, index *airports.Index) (*Server, error) {
	mode := storage.ModeFromConfig(cfg)
	client, err := storage.NewClient(ctx, mode, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot storage: %w", err)
	}

	log := logger.WithComponent("server")
	log.Info("snapshot storage initialized", logger.Fields{"mode": string(mode)})

	return &Server{
		Config:   cfg,
		Store:    st,
		Index:    index,
		Profiles: web.NewProfileBuilder(),
		Storage:  client,
		log:      log,
	}, nil
}

// SetupRoutes configures HTTP routes for the server
func (s *Server) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", s.HandleHealth)
	mux.HandleFunc("/api/import", s.HandleImport)
	mux.HandleFunc("/api/pilots/", s.HandlePilotAPI)
	mux.HandleFunc("/p/", s.HandleProfile)
	mux.HandleFunc("/files/", s.HandleFileProxy)

	return mux
}

// EnsureDemoProfile seeds the demo pilot when its logbook is missing
func (s *Server) EnsureDemoProfile(ctx context.Context) error {
	pilot, err := s.Store.GetPilot(ctx, DemoHandle)
	if err != nil {
		return err
	}
	if pilot != nil {
		if bundle, err := s.Store.LoadBundle(ctx, pilot.ID); err == nil && bundle != nil {
			return nil
		}
	}

	s.log.Info("seeding demo profile", logger.Fields{"seed": s.Config.DemoSeed})

	pilot, err = s.Store.UpsertPilot(ctx, DemoHandle, "Demo Pilot",
		"Fictional airline pilot flying a hub-and-spoke schedule out of **KSLC**.")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	flights := demo.NewGenerator(s.Config.DemoSeed).Generate(now, demo.DefaultTargetFlights)
	if err := s.Store.ReplaceFlights(ctx, pilot.ID, flights); err != nil {
		return err
	}
	return s.Store.SaveBundle(ctx, pilot.ID, stats.BuildStatsBundle(flights, now))
}

// newParser builds an import parser bound to the loaded airport index
func (s *Server) newParser() *importer.Parser {
	return importer.NewParser(s.Index)
}

// Close cleans up server resources
func (s *Server) Close() error {
	if s.Storage != nil {
		return s.Storage.Close()
	}
	return nil
}
