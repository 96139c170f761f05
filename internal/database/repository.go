package database

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Repository provides generic row-level operations over the Supabase
// REST API. Entity-specific repositories compose these helpers.
type Repository struct {
	client *Client
}

// NewRepository creates a repository backed by the given client.
func NewRepository(client *Client) *Repository {
	return &Repository{client: client}
}

// GenericCreate inserts a row and, thanks to return=representation,
// passes the stored rows to assign so callers see store-populated
// columns (defaults, timestamps).
func GenericCreate[T any](r *Repository, ctx context.Context, table string, row any, assign func(rows []T)) error {
	data, err := r.client.request(ctx, http.MethodPost, table, row, "")
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrDatabaseError, table, err)
	}

	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("%w: unmarshal %s: %v", ErrDatabaseError, table, err)
	}
	if assign != nil {
		assign(rows)
	}
	return nil
}

// GenericGetByField fetches a single row matching field=value. A nil row
// with nil error means no match.
func GenericGetByField[T any](r *Repository, ctx context.Context, table, field, value string) (*T, error) {
	query := NewQuery().Eq(field, value).Build()
	data, err := r.client.request(ctx, http.MethodGet, table, nil, query)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrDatabaseError, table, err)
	}

	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: unmarshal %s: %v", ErrDatabaseError, table, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// GenericUpdate patches rows matching keyColumn=key and returns the
// updated representations.
func GenericUpdate[T any](r *Repository, ctx context.Context, table, keyColumn, key string, patch any) ([]T, error) {
	query := NewQuery().Eq(keyColumn, key).Build()
	data, err := r.client.request(ctx, http.MethodPatch, table, patch, query)
	if err != nil {
		return nil, fmt.Errorf("%w: update %s: %v", ErrDatabaseError, table, err)
	}

	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: unmarshal %s: %v", ErrDatabaseError, table, err)
	}
	return rows, nil
}

// GenericListWithQuery lists rows matching a prebuilt query.
func GenericListWithQuery[T any](r *Repository, ctx context.Context, table, query string) ([]T, error) {
	data, err := r.client.request(ctx, http.MethodGet, table, nil, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s: %v", ErrDatabaseError, table, err)
	}

	var rows []T
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: unmarshal %s: %v", ErrDatabaseError, table, err)
	}
	return rows, nil
}
