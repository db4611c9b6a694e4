package domain

import (
	"time"

	"github.com/google/uuid"
)

// Article is the administrative row of a piece of content. The content
// itself lives in the external content store.
type Article struct {
	ID        uuid.UUID
	Title     string
	OwnerID   uuid.UUID
	Status    ArticleStatus
	LockedBy  *uuid.UUID // exclusive editing lock held by an administrator
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDeleted reports whether the article has been soft-deleted.
func (a Article) IsDeleted() bool {
	return a.DeletedAt != nil
}

// LockedByOther reports whether someone other than actor holds the lock.
func (a Article) LockedByOther(actor uuid.UUID) bool {
	return a.LockedBy != nil && *a.LockedBy != actor
}

// ArticleVersion is an immutable content snapshot.
type ArticleVersion struct {
	ArticleID        uuid.UUID
	VersionNumber    int
	Content          []byte
	CreatedBy        uuid.UUID
	CreatedAt        time.Time
	StatusAtSnapshot ArticleStatus
	ChangeSummary    string
	RestoredFrom     *int
}

// ExportDocument is one exported article as written to an export sink.
type ExportDocument struct {
	ArticleID  uuid.UUID     `json:"article_id"`
	Title      string        `json:"title"`
	Status     ArticleStatus `json:"status"`
	OwnerID    uuid.UUID     `json:"owner_id"`
	Content    string        `json:"content"`
	ExportedAt time.Time     `json:"exported_at"`
}
