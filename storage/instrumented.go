package storage

import (
	"context"
	"time"

	"github.com/cppla/miniblog/metrics"
	"github.com/cppla/miniblog/models"
)

type instrumented struct {
	next   PostStore
	driver string
}

// Instrument wraps store so every operation is counted and timed under driver.
func Instrument(store PostStore, driver string) PostStore {
	return &instrumented{next: store, driver: driver}
}

func (s *instrumented) observe(op string, start time.Time, err error) {
	metrics.ObserveStore(s.driver, op, time.Since(start), err)
}

func (s *instrumented) ScanAll(ctx context.Context) (posts []models.Post, err error) {
	defer func(start time.Time) { s.observe("scan", start, err) }(time.Now())
	return s.next.ScanAll(ctx)
}

func (s *instrumented) Get(ctx context.Context, id string) (post *models.Post, err error) {
	defer func(start time.Time) { s.observe("get", start, err) }(time.Now())
	return s.next.Get(ctx, id)
}

func (s *instrumented) Put(ctx context.Context, post models.Post) (err error) {
	defer func(start time.Time) { s.observe("put", start, err) }(time.Now())
	return s.next.Put(ctx, post)
}

func (s *instrumented) Delete(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { s.observe("delete", start, err) }(time.Now())
	return s.next.Delete(ctx, id)
}
