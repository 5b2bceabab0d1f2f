package models

// Post is a single blog entry. ModifiedAt is a sortable token re-minted on
// every write; it is persisted under the created_at attribute.
type Post struct {
	ID         string `gorm:"primaryKey;column:id;size:64" json:"id" dynamodbav:"id" redis:"id"`
	Title      string `gorm:"column:title;type:text" json:"title" dynamodbav:"title" redis:"title"`
	Content    string `gorm:"column:content;type:text" json:"content" dynamodbav:"content" redis:"content"`
	ModifiedAt string `gorm:"column:created_at;size:64" json:"created_at" dynamodbav:"created_at" redis:"created_at"`
}

// Complete reports whether both user supplied fields are non-empty.
func (p Post) Complete() bool {
	return p.Title != "" && p.Content != ""
}
