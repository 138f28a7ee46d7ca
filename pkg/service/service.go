// Package service is the orchestration layer over the document model: it
// owns the live project, runs every mutator, and invokes the injected
// persistence hook after each mutation (write-through autosave). The model
// packages themselves stay free of I/O.
package service

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/golker16/pizarra/pkg/assets"
	"github.com/golker16/pizarra/pkg/history"
	"github.com/golker16/pizarra/pkg/models"
	"github.com/golker16/pizarra/pkg/search"
	"github.com/golker16/pizarra/pkg/subtree"
)

// SaveFunc persists the project. It runs synchronously after every
// mutating operation; a failure is reported through Status but never rolls
// back the mutation; the in-memory project stays authoritative for the
// running session.
type SaveFunc func(p *models.Project) error

// Options configures a Service.
type Options struct {
	Project     *models.Project
	Assets      *assets.Store
	History     *history.History
	Index       *search.Index // optional
	Save        SaveFunc
	SessionPath string // optional; "" disables session persistence
	Policy      subtree.Policy
	Log         *logrus.Logger
}

// Service drives the whiteboard core on behalf of a presentation layer.
// It assumes a single active session: no two operations may interleave on
// the shared project.
type Service struct {
	project     *models.Project
	store       *assets.Store
	engine      *subtree.Engine
	hist        *history.History
	index       *search.Index
	save        SaveFunc
	sessionPath string
	log         *logrus.Logger
	status      string
}

// New builds a service. Project, Assets and Save are required.
func New(opts Options) (*Service, error) {
	if opts.Project == nil {
		return nil, fmt.Errorf("service: nil project")
	}
	if opts.Assets == nil {
		return nil, fmt.Errorf("service: nil asset store")
	}
	if opts.Save == nil {
		return nil, fmt.Errorf("service: nil save hook")
	}
	// Zero-value policy fields fall back to the stock constants
	// individually, so a partially configured policy keeps its set fields.
	def := subtree.DefaultPolicy()
	if opts.Policy.NestThreshold <= 0 {
		opts.Policy.NestThreshold = def.NestThreshold
	}
	if opts.Policy.PastePos == ([2]float64{}) {
		opts.Policy.PastePos = def.PastePos
	}
	if opts.Policy.NestPos == ([2]float64{}) {
		opts.Policy.NestPos = def.NestPos
	}
	if opts.History == nil {
		opts.History = history.New(opts.Project.RootBoardID, history.DefaultCapacity)
	}
	if opts.Log == nil {
		opts.Log = logrus.New()
		opts.Log.SetOutput(io.Discard)
	}
	return &Service{
		project:     opts.Project,
		store:       opts.Assets,
		engine:      subtree.NewEngine(opts.Assets, opts.Policy),
		hist:        opts.History,
		index:       opts.Index,
		save:        opts.Save,
		sessionPath: opts.SessionPath,
		log:         opts.Log,
	}, nil
}

// Project exposes the live document. Callers must not mutate it outside
// the service's operations.
func (s *Service) Project() *models.Project {
	return s.project
}

// AssetStore exposes the attachment store.
func (s *Service) AssetStore() *assets.Store {
	return s.store
}

// History exposes the navigation history.
func (s *Service) History() *history.History {
	return s.hist
}

// Status returns the transient feedback string from the last operation
// ("saved", "save failed: …").
func (s *Service) Status() string {
	return s.status
}

// Close flushes the session file and releases the search index.
func (s *Service) Close() error {
	var firstErr error
	if s.sessionPath != "" {
		if err := SaveSession(s.sessionPath, s.hist); err != nil {
			s.log.WithError(err).Warn("save session")
			firstErr = err
		}
	}
	if s.index != nil {
		if err := s.index.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// writeThrough persists the project after a mutation. Failures downgrade
// to a status report; interaction never blocks on a broken disk.
func (s *Service) writeThrough(op string) {
	if err := s.save(s.project); err != nil {
		s.status = fmt.Sprintf("save failed: %v", err)
		s.log.WithError(err).WithField("op", op).Warn("write-through save failed")
		return
	}
	s.status = "saved"
}
