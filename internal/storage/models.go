package storage

import "time"

// Publication represents an indexed publication record.
//
// Embedding and Summary are lazily computed cache fields: a nil/empty
// embedding or an empty summary means "not yet computed", never
// "computation failed permanently". They are populated in place by the
// backfill and summarization paths and persisted as soon as computed.
type Publication struct {
	ID        string    // UUID
	Title     string    // Publication title (embedded text)
	Link      string    // Source article URL, natural dedup key
	Year      int       // Publication year, 0 if unknown
	UserID    string    // Owning user ID, empty if none
	Summary   string    // Cached summary, empty if not yet computed
	Embedding []float64 // Cached title embedding, nil if not yet computed
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasEmbedding reports whether the publication has a cached embedding.
func (p *Publication) HasEmbedding() bool {
	return len(p.Embedding) > 0
}

// Filter selects publications by simple equality predicates.
// Zero values mean "no constraint".
type Filter struct {
	Year   int
	UserID string
}
