// Package crud implements a generic tabular CRUD engine: listing with
// display-side pagination, and create/edit/delete orchestration through
// injected operations. The engine knows nothing about concrete record
// types; everything entity-specific arrives as declarative configuration.
package crud

// Record is any value the engine can manage: uniquely identified by a
// positive integer id assigned by the backing store.
type Record interface {
	GetID() int
}
