package ownership

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/pkg/ctxutil"
)

const maxReasonLen = 1000

// Transfer moves an article from its current owner to the proposed owner.
//
// The owner change and its audit record are written in one transaction; the
// change only applies if the stored owner still equals CurrentOwnerID and no
// other editor holds the article's exclusive lock.
func (s *Service) Transfer(ctx context.Context, req domain.OwnershipTransferRequest) (*domain.TransferOutcome, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	next, err := s.identities.Resolve(ctx, req.ProposedOwnerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("proposed_owner_id", "unknown user")
		}
		return nil, fmt.Errorf("resolve proposed owner: %w", err)
	}
	previous := s.previousOwner(ctx, req.CurrentOwnerID)

	op := domain.TransferOwnership(req.ProposedOwnerID)
	if err := s.confirm.Verify(ctx, req.ConfirmationToken, op, []uuid.UUID{req.ArticleID}); err != nil {
		return nil, err
	}

	reason := strings.TrimSpace(req.Reason)
	var rec domain.ActionRecord
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := s.articles.GetForUpdate(txCtx, req.ArticleID)
		if err != nil {
			return fmt.Errorf("load article: %w", err)
		}
		if a.IsDeleted() {
			return fmt.Errorf("article %s: %w", a.ID, domain.ErrNotFound)
		}
		if a.LockedByOther(actorID) {
			return fmt.Errorf("article %s is locked by %s: %w", a.ID, a.LockedBy, domain.ErrForbidden)
		}
		if _, err := s.articles.SwapOwner(txCtx, req.ArticleID, req.CurrentOwnerID, req.ProposedOwnerID); err != nil {
			return fmt.Errorf("swap owner: %w", err)
		}

		var auditErr error
		rec, auditErr = s.audit.Append(txCtx, domain.ActionDraft{
			ActorID:          actorID,
			ActorDisplayName: ctxutil.UserNameFromCtx(ctx),
			TargetKind:       domain.TargetArticle,
			TargetID:         &req.ArticleID,
			TargetOwner:      previous.Snapshot(),
			Kind:             domain.ActionOwnershipTransfer,
			Notes:            reason,
			Metadata: domain.OwnershipTransferMetadata{
				PreviousOwnerID: req.CurrentOwnerID,
				NewOwnerID:      req.ProposedOwnerID,
				Reason:          reason,
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "ownership transferred",
		slog.String("article_id", req.ArticleID.String()),
		slog.String("from", req.CurrentOwnerID.String()),
		slog.String("to", req.ProposedOwnerID.String()),
		slog.String("record_id", rec.ID.String()),
	)

	return &domain.TransferOutcome{
		ArticleID:     req.ArticleID,
		PreviousOwner: previous,
		NewOwner:      next,
		Record:        rec,
		TransferredAt: rec.OccurredAt,
	}, nil
}

// previousOwner resolves the outgoing owner. The account may be gone; the
// transfer proceeds with the id alone.
func (s *Service) previousOwner(ctx context.Context, id uuid.UUID) domain.Identity {
	ident, err := s.identities.Resolve(ctx, id)
	if err != nil {
		s.log.WarnContext(ctx, "resolve current owner",
			slog.String("user_id", id.String()),
			slog.String("error", err.Error()),
		)
		return domain.Identity{UserID: id}
	}
	return ident
}

func validateRequest(req domain.OwnershipTransferRequest) error {
	var errs []domain.FieldError

	if req.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	if req.CurrentOwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "current_owner_id", Message: "required"})
	}
	if req.ProposedOwnerID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "proposed_owner_id", Message: "required"})
	}
	if req.CurrentOwnerID != uuid.Nil && req.CurrentOwnerID == req.ProposedOwnerID {
		errs = append(errs, domain.FieldError{Field: "proposed_owner_id", Message: "must differ from current owner"})
	}
	if utf8.RuneCountInString(req.Reason) > maxReasonLen {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "max 1000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
