package sheetstore

import (
	"context"

	"github.com/NotMomex/my-store-crm/internal/error/apperror"
	Logger "github.com/NotMomex/my-store-crm/pkg/logger"
)

// Collection describes a sheet and the header row it must carry
type Collection struct {
	Name    string
	Headers []string
}

// EnsureHeaders creates the sheet if it is missing and rewrites its header
// row when it differs from headers. It reports whether anything changed.
// Data rows are never touched.
func (s *Store) EnsureHeaders(ctx context.Context, collection string, headers []string) (bool, error) {
	titles, err := s.client.SheetTitles(ctx)
	if err != nil {
		return false, apperror.Store(err, "failed to list sheets")
	}

	exists := false
	for _, t := range titles {
		if t == collection {
			exists = true
			break
		}
	}
	if !exists {
		Logger.Info("creating sheet %s", collection)
		if err := s.client.AddSheet(ctx, collection); err != nil {
			return false, apperror.Store(err, "failed to create sheet %s", collection)
		}
	}

	rows, err := s.client.ReadRange(ctx, headerRange(collection))
	if err != nil {
		return false, apperror.Store(err, "failed to read headers of %s", collection)
	}
	var current []string
	if len(rows) > 0 {
		current = rows[0]
	}
	if exists && equalHeaders(current, headers) {
		return false, nil
	}

	Logger.Info("writing headers of %s: %v", collection, headers)
	// stale trailing header cells are blanked
	values := make([]string, len(headers))
	copy(values, headers)
	for len(values) < len(current) {
		values = append(values, "")
	}
	rng := A1Range{Sheet: collection, StartCol: 1, StartRow: 1, EndCol: len(values), EndRow: 1}.String()
	if err := s.client.UpdateRange(ctx, rng, values); err != nil {
		return false, apperror.Store(err, "failed to write headers of %s", collection)
	}
	return true, nil
}

// EnsureCollections reconciles the headers of every given collection
func (s *Store) EnsureCollections(ctx context.Context, collections []Collection) error {
	for _, c := range collections {
		changed, err := s.EnsureHeaders(ctx, c.Name, c.Headers)
		if err != nil {
			return err
		}
		if !changed {
			Logger.Info("sheet %s already up to date", c.Name)
		}
	}
	return nil
}

func equalHeaders(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
