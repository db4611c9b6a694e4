// Package export writes newline-delimited JSON streams of exported articles
// and audit records.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// Writer serialises values as one JSON document per line. It is safe for
// concurrent use; lines are never interleaved.
type Writer struct {
	mu    sync.Mutex
	enc   *json.Encoder
	count int
}

// NewWriter creates a Writer on w.
func NewWriter(w io.Writer) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{enc: enc}
}

// Write appends one exported article.
func (w *Writer) Write(ctx context.Context, doc domain.ExportDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return w.encode(doc)
}

// WriteRecord appends one audit record.
func (w *Writer) WriteRecord(rec domain.ActionRecord) error {
	line, err := FromRecord(rec)
	if err != nil {
		return err
	}
	return w.encode(line)
}

// Count returns the number of lines written so far.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

func (w *Writer) encode(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.enc.Encode(v); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	w.count++
	return nil
}

// Owner is the JSON form of an owner snapshot.
type Owner struct {
	UserID      uuid.UUID `json:"user_id"`
	DisplayName string    `json:"display_name,omitempty"`
}

// Record is the JSON form of an action record, shared by the API and
// the CLI export.
type Record struct {
	ID               uuid.UUID         `json:"id"`
	Seq              int64             `json:"seq"`
	ActorID          uuid.UUID         `json:"actor_id"`
	ActorDisplayName string            `json:"actor_display_name,omitempty"`
	TargetKind       domain.TargetKind `json:"target_kind"`
	TargetID         *uuid.UUID        `json:"target_id,omitempty"`
	TargetOwner      *Owner            `json:"target_owner,omitempty"`
	ActionKind       domain.ActionKind `json:"action_kind"`
	OccurredAt       time.Time         `json:"occurred_at"`
	Notes            string            `json:"notes,omitempty"`
	Metadata         json.RawMessage   `json:"metadata"`
}

// FromRecord converts rec to its JSON form.
func FromRecord(rec domain.ActionRecord) (Record, error) {
	meta, err := domain.EncodeMetadata(rec.Metadata)
	if err != nil {
		return Record{}, fmt.Errorf("export: record %s: %w", rec.ID, err)
	}

	out := Record{
		ID:               rec.ID,
		Seq:              rec.Seq,
		ActorID:          rec.ActorID,
		ActorDisplayName: rec.ActorDisplayName,
		TargetKind:       rec.TargetKind,
		TargetID:         rec.TargetID,
		ActionKind:       rec.Kind,
		OccurredAt:       rec.OccurredAt.UTC(),
		Notes:            rec.Notes,
		Metadata:         meta,
	}
	if !rec.TargetOwner.IsZero() {
		out.TargetOwner = &Owner{UserID: rec.TargetOwner.UserID, DisplayName: rec.TargetOwner.DisplayName}
	}
	return out, nil
}
