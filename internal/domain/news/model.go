package news

import "time"

// Article is one newsapi.org "everything" result.
type Article struct {
	Source      Source     `json:"source"`
	Author      *string    `json:"author"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	URL         string     `json:"url"`
	URLToImage  *string    `json:"urlToImage"`
	PublishedAt *time.Time `json:"publishedAt"`
	Content     *string    `json:"content"`
}

type Source struct {
	ID   *string `json:"id"`
	Name string  `json:"name"`
}

const (
	DefaultTopic    = "soccer"
	DefaultPageSize = 5
	MaxPageSize     = 100
)

// Query is a news search; zero fields fall back to the defaults.
type Query struct {
	Topic    string
	PageSize int
}

// Normalize fills defaults and caps PageSize at what the upstream accepts.
func (q Query) Normalize() Query {
	if q.Topic == "" {
		q.Topic = DefaultTopic
	}
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}
