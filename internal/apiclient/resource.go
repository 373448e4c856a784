package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"healthcare-admin/internal/crud"
)

// Resource is a typed REST resource implementing crud.Operations: list and
// get on the collection and id endpoints, create via POST, update via PUT,
// delete via DELETE.
type Resource[T crud.Record, P any] struct {
	client *Client
	path   string
}

func NewResource[T crud.Record, P any](client *Client, path string) *Resource[T, P] {
	return &Resource[T, P]{client: client, path: path}
}

func (r *Resource[T, P]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T, P]) Get(ctx context.Context, id int) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodGet, r.itemPath(id), nil, nil, &out)
	return out, err
}

func (r *Resource[T, P]) Create(ctx context.Context, input P) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodPost, r.path, nil, input, &out)
	return out, err
}

func (r *Resource[T, P]) Update(ctx context.Context, id int, input P) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodPut, r.itemPath(id), nil, input, &out)
	return out, err
}

func (r *Resource[T, P]) Delete(ctx context.Context, id int) error {
	return r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
}

func (r *Resource[T, P]) itemPath(id int) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}
