package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cppla/miniblog/models"
)

func ids(posts []models.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}

func TestSortNewestFirst(t *testing.T) {
	posts := []models.Post{
		{ID: "a", ModifiedAt: "0190a1b2-0000-7000-8000-000000000001"},
		{ID: "legacy", ModifiedAt: ""},
		{ID: "c", ModifiedAt: "0190a1b2-0000-7000-8000-000000000003"},
		{ID: "b", ModifiedAt: "0190a1b2-0000-7000-8000-000000000002"},
	}
	SortNewestFirst(posts)
	assert.Equal(t, []string{"c", "b", "a", "legacy"}, ids(posts))
}

func TestSortNewestFirstIsStable(t *testing.T) {
	posts := []models.Post{
		{ID: "x1", ModifiedAt: "s"},
		{ID: "y", ModifiedAt: "t"},
		{ID: "x2", ModifiedAt: "s"},
		{ID: "n1"},
		{ID: "n2"},
	}
	SortNewestFirst(posts)
	assert.Equal(t, []string{"y", "x1", "x2", "n1", "n2"}, ids(posts))
}

func TestSortNewestFirstEmpty(t *testing.T) {
	var posts []models.Post
	assert.NotPanics(t, func() { SortNewestFirst(posts) })
}
