package service

import (
	"fmt"

	"github.com/golker16/pizarra/pkg/search"
)

// Reindex rebuilds the search index from the live project.
func (s *Service) Reindex() error {
	if s.index == nil {
		return fmt.Errorf("search index not configured")
	}
	return s.index.Rebuild(s.project)
}

// Search rebuilds the index and queries it. The index is derived state, so
// rebuilding before querying keeps results honest without any incremental
// bookkeeping.
func (s *Service) Search(query string, limit int) ([]*search.Result, error) {
	if err := s.Reindex(); err != nil {
		return nil, err
	}
	return s.index.Search(query, limit)
}
