package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cppla/miniblog/models"
)

// GormStore keeps posts in a SQL table through GORM; used with the MySQL driver.
type GormStore struct {
	db    *gorm.DB
	table string
}

func NewGormStore(db *gorm.DB, table string) *GormStore {
	return &GormStore{db: db, table: table}
}

func (s *GormStore) tx(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Table(s.table)
}

func (s *GormStore) ScanAll(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	if err := s.tx(ctx).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("sql scan %s: %w", s.table, err)
	}
	return posts, nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*models.Post, error) {
	var posts []models.Post
	if err := s.tx(ctx).Where("id = ?", id).Limit(1).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("sql get %s/%s: %w", s.table, id, err)
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}

// Put is an upsert (INSERT ... ON DUPLICATE KEY UPDATE on MySQL).
func (s *GormStore) Put(ctx context.Context, post models.Post) error {
	err := s.tx(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "content", "created_at"}),
	}).Create(&post).Error
	if err != nil {
		return fmt.Errorf("sql put %s/%s: %w", s.table, post.ID, err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	if err := s.tx(ctx).Where("id = ?", id).Delete(&models.Post{}).Error; err != nil {
		return fmt.Errorf("sql delete %s/%s: %w", s.table, id, err)
	}
	return nil
}
