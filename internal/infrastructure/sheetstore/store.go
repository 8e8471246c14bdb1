package sheetstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/NotMomex/my-store-crm/internal/error/apperror"
	Logger "github.com/NotMomex/my-store-crm/pkg/logger"
)

// maxColumns is the fixed A:Z column span every collection is read through
const maxColumns = 26

// IDField is the header every collection is keyed by
const IDField = "ID"

// Record is one data row keyed by header name
type Record map[string]string

// Store maps header-first sheets to record CRUD.
//
// Row positions are computed from a fresh list on every mutation and are not
// reserved: two writers racing on one collection can overwrite or delete the
// wrong row if a deletion shifts positions between lookup and write.
type Store struct {
	client Client
}

// NewStore creates a store on top of a remote sheet client
func NewStore(client Client) *Store {
	return &Store{client: client}
}

// 1 ListRows returns every data row of a collection in sheet order
func (s *Store) ListRows(ctx context.Context, collection string) ([]Record, error) {
	rows, err := s.client.ReadRange(ctx, columnsRange(collection))
	if err != nil {
		Logger.Error("read rows from %s failed: %v", collection, err)
		return nil, apperror.Store(err, "failed to read rows from %s", collection)
	}
	if len(rows) <= 1 {
		return []Record{}, nil
	}

	headers := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(headers))
		for i, h := range headers {
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// 2 FindRow returns the row whose ID equals id
func (s *Store) FindRow(ctx context.Context, collection, id string) (Record, error) {
	rows, err := s.ListRows(ctx, collection)
	if err != nil {
		return nil, err
	}
	pos := positionOf(rows, id)
	if pos < 0 {
		return nil, apperror.NotFound("row with ID %s not found in %s", id, collection)
	}
	return rows[pos], nil
}

// 3 AppendRow appends a record projected onto the header order. Fields the
// header does not name are dropped.
func (s *Store) AppendRow(ctx context.Context, collection string, rec Record) error {
	headers, err := s.Headers(ctx, collection)
	if err != nil {
		return err
	}
	if err := s.client.AppendRow(ctx, columnsRange(collection), project(headers, rec)); err != nil {
		Logger.Error("append row to %s failed: %v", collection, err)
		return apperror.Store(err, "failed to append row to %s", collection)
	}
	return nil
}

// 4 ReplaceRow overwrites the whole row with the given ID. Columns missing
// from rec are written as empty strings.
func (s *Store) ReplaceRow(ctx context.Context, collection, id string, rec Record) error {
	rows, err := s.ListRows(ctx, collection)
	if err != nil {
		return err
	}
	pos := positionOf(rows, id)
	if pos < 0 {
		return apperror.NotFound("row with ID %s not found in %s", id, collection)
	}
	return s.writeRow(ctx, collection, pos, rec)
}

// 5 PatchRow overwrites only the given fields of the row with the given ID
func (s *Store) PatchRow(ctx context.Context, collection, id string, fields Record) error {
	rows, err := s.ListRows(ctx, collection)
	if err != nil {
		return err
	}
	pos := positionOf(rows, id)
	if pos < 0 {
		return apperror.NotFound("row with ID %s not found in %s", id, collection)
	}
	merged := make(Record, len(rows[pos])+len(fields))
	for k, v := range rows[pos] {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return s.writeRow(ctx, collection, pos, merged)
}

// 6 DeleteRow removes the row with the given ID; later rows shift up
func (s *Store) DeleteRow(ctx context.Context, collection, id string) error {
	rows, err := s.ListRows(ctx, collection)
	if err != nil {
		return err
	}
	pos := positionOf(rows, id)
	if pos < 0 {
		return apperror.NotFound("row with ID %s not found in %s", id, collection)
	}
	// grid row index: +1 skips the header
	if err := s.client.DeleteRow(ctx, collection, pos+1); err != nil {
		Logger.Error("delete row %s from %s failed: %v", id, collection, err)
		return apperror.Store(err, "failed to delete row from %s", collection)
	}
	return nil
}

// Headers returns the header row of a collection
func (s *Store) Headers(ctx context.Context, collection string) ([]string, error) {
	rows, err := s.client.ReadRange(ctx, headerRange(collection))
	if err != nil {
		Logger.Error("read headers of %s failed: %v", collection, err)
		return nil, apperror.Store(err, "failed to read headers of %s", collection)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, apperror.Store(nil, "collection %s has no header row", collection)
	}
	return rows[0], nil
}

func (s *Store) writeRow(ctx context.Context, collection string, pos int, rec Record) error {
	headers, err := s.Headers(ctx, collection)
	if err != nil {
		return err
	}
	rng := rowRange(collection, pos, len(headers))
	if err := s.client.UpdateRange(ctx, rng, project(headers, rec)); err != nil {
		Logger.Error("update %s failed: %v", rng, err)
		return apperror.Store(err, "failed to update row in %s", collection)
	}
	return nil
}

func positionOf(rows []Record, id string) int {
	if id == "" {
		return -1
	}
	for i, r := range rows {
		if r[IDField] == id {
			return i
		}
	}
	return -1
}

func project(headers []string, rec Record) []string {
	values := make([]string, len(headers))
	for i, h := range headers {
		values[i] = rec[h]
	}
	return values
}

// GenerateID returns 16 lowercase hex characters from 8 random bytes. There
// is no collision check against existing rows.
func GenerateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("generate random id failed")
	}
	return hex.EncodeToString(b)
}
