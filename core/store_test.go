package core

import (
	"context"
	"fmt"
	"maps"

	basestore "github.com/syduc993/hr-management-system-sub000/basestore/v1"
)

// fakeStore is an in-memory RecordStore for service tests. Errors can be
// injected per table to exercise the degraded read paths.
type fakeStore struct {
	tables map[string][]basestore.Record
	errs   map[string]error
	nextID int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tables: make(map[string][]basestore.Record),
		errs:   make(map[string]error),
	}
}

func (f *fakeStore) seed(table string, fields map[string]any) string {
	f.nextID++
	id := fmt.Sprintf("rec%03d", f.nextID)
	f.tables[table] = append(f.tables[table], basestore.Record{ID: id, Fields: fields})
	return id
}

func (f *fakeStore) ListAll(_ context.Context, table string, _ map[string]string) ([]basestore.Record, error) {
	if err := f.errs[table]; err != nil {
		return nil, err
	}
	return f.tables[table], nil
}

func (f *fakeStore) Insert(_ context.Context, table string, fields map[string]any) (*basestore.Record, error) {
	if err := f.errs[table]; err != nil {
		return nil, err
	}
	id := f.seed(table, maps.Clone(fields))
	return &basestore.Record{ID: id, Fields: fields}, nil
}

func (f *fakeStore) UpdateByID(_ context.Context, table, id string, fields map[string]any) (*basestore.Record, error) {
	if err := f.errs[table]; err != nil {
		return nil, err
	}
	for i, rec := range f.tables[table] {
		if rec.ID == id {
			f.tables[table][i].Fields = maps.Clone(fields)
			return &f.tables[table][i], nil
		}
	}
	return nil, &basestore.StoreError{Code: basestore.CodeRecordNotFound, Message: "record not found", Op: "update"}
}

func (f *fakeStore) DeleteByID(_ context.Context, table, id string) error {
	if err := f.errs[table]; err != nil {
		return err
	}
	for i, rec := range f.tables[table] {
		if rec.ID == id {
			f.tables[table] = append(f.tables[table][:i], f.tables[table][i+1:]...)
			return nil
		}
	}
	return &basestore.StoreError{Code: basestore.CodeRecordNotFound, Message: "record not found", Op: "delete"}
}
