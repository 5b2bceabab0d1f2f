// Package storage adapts key-value and SQL backends to the post table.
//
// Every backend keeps one record per post keyed by id with the attributes
// title, content and created_at. Each operation is a single round trip;
// nothing is retried and concurrent puts to the same id resolve as last
// write wins.
package storage

import (
	"context"

	"github.com/cppla/miniblog/models"
)

// PostStore is the storage surface the web layer depends on.
type PostStore interface {
	// ScanAll returns every post in store order.
	ScanAll(ctx context.Context) ([]models.Post, error)
	// Get returns nil and no error when id is unknown.
	Get(ctx context.Context, id string) (*models.Post, error)
	// Put creates or fully overwrites the post keyed by post.ID.
	Put(ctx context.Context, post models.Post) error
	// Delete succeeds when id is unknown.
	Delete(ctx context.Context, id string) error
}
