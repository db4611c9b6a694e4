package audit

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/pkg/ctxutil"
)

// Append validates the draft, assigns the record id and timestamp, and writes
// it to the store. When called inside a transaction the write joins it.
func (s *Service) Append(ctx context.Context, draft domain.ActionDraft) (domain.ActionRecord, error) {
	if err := draft.Validate(); err != nil {
		return domain.ActionRecord{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.ActionRecord{}, fmt.Errorf("generate record id: %w", err)
	}

	rec := domain.ActionRecord{
		ID:               id,
		ActorID:          draft.ActorID,
		ActorDisplayName: s.actorName(ctx, draft),
		TargetKind:       draft.TargetKind,
		TargetID:         draft.TargetID,
		TargetOwner:      s.ownerSnapshot(ctx, draft.TargetOwner),
		Kind:             draft.Kind,
		OccurredAt:       s.clock().UTC(),
		Notes:            s.sanitizeNotes(draft.Notes),
		Metadata:         draft.Metadata,
	}

	saved, err := s.store.Append(ctx, rec)
	if err != nil {
		return domain.ActionRecord{}, fmt.Errorf("append action record: %w", err)
	}

	s.log.DebugContext(ctx, "action recorded",
		slog.String("record_id", saved.ID.String()),
		slog.String("action_kind", saved.Kind.String()),
		slog.String("actor_id", saved.ActorID.String()),
	)

	return saved, nil
}

// sanitizeNotes reduces free text to plain text and caps its length in runes.
func (s *Service) sanitizeNotes(notes string) string {
	plain := strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(notes)))
	if s.cfg.NotesMaxLen > 0 && utf8.RuneCountInString(plain) > s.cfg.NotesMaxLen {
		plain = string([]rune(plain)[:s.cfg.NotesMaxLen])
	}
	return plain
}

func (s *Service) actorName(ctx context.Context, draft domain.ActionDraft) string {
	if draft.ActorDisplayName != "" {
		return draft.ActorDisplayName
	}
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok && id == draft.ActorID {
		if name := ctxutil.UserNameFromCtx(ctx); name != "" {
			return name
		}
	}
	return s.resolveName(ctx, draft.ActorID)
}

// ownerSnapshot fills in the owner's display name when the caller only knew
// the id. A failed lookup leaves the name empty rather than failing the write.
func (s *Service) ownerSnapshot(ctx context.Context, owner domain.OwnerSnapshot) domain.OwnerSnapshot {
	if owner.IsZero() || owner.DisplayName != "" {
		return owner
	}
	owner.DisplayName = s.resolveName(ctx, owner.UserID)
	return owner
}

func (s *Service) resolveName(ctx context.Context, userID uuid.UUID) string {
	if s.identities == nil || userID == uuid.Nil {
		return ""
	}
	ident, err := s.identities.Resolve(ctx, userID)
	if err != nil {
		s.log.WarnContext(ctx, "resolve display name",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return ""
	}
	return ident.DisplayName
}
