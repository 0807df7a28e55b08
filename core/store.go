package core

import (
	"context"

	basestore "github.com/syduc993/hr-management-system-sub000/basestore/v1"
)

// RecordStore is the slice of the record-store client the services need.
// Satisfied by *basestore.TableEndpoint; tests substitute a fake.
type RecordStore interface {
	ListAll(ctx context.Context, table string, filter map[string]string) ([]basestore.Record, error)
	Insert(ctx context.Context, table string, fields map[string]any) (*basestore.Record, error)
	UpdateByID(ctx context.Context, table, id string, fields map[string]any) (*basestore.Record, error)
	DeleteByID(ctx context.Context, table, id string) error
}
