package article

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/heartmarshall/editorial-admin/internal/domain"
)

// Prepare checks an operation once before it is applied to any item.
// For ownership transfers the proposed owner must be known.
func (s *Service) Prepare(ctx context.Context, op domain.Operation) error {
	if errs := op.Validate(); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	if op.Kind == domain.OperationTransferOwnership {
		if _, err := s.identities.Resolve(ctx, op.NewOwnerID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.NewValidationError("operation.new_owner_id", "unknown user")
			}
			return fmt.Errorf("resolve new owner: %w", err)
		}
	}
	return nil
}

// Apply performs op on a single article.
func (s *Service) Apply(ctx context.Context, actor domain.Actor, id uuid.UUID, op domain.Operation) error {
	switch op.Kind {
	case domain.OperationExport:
		return s.export(ctx, actor, id, op)
	case domain.OperationSetStatus, domain.OperationDelete, domain.OperationTransferOwnership:
		return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			a, err := s.articles.GetForUpdate(txCtx, id)
			if err != nil {
				return fmt.Errorf("load article: %w", err)
			}
			if err := s.checkAccess(txCtx, actor, a, op.Kind.ActionKind()); err != nil {
				return err
			}
			return s.mutate(txCtx, a, op)
		})
	default:
		return domain.NewValidationError("operation.kind", "invalid value")
	}
}

func (s *Service) mutate(ctx context.Context, a domain.Article, op domain.Operation) error {
	var err error
	switch op.Kind {
	case domain.OperationSetStatus:
		if a.Status == op.NewStatus {
			return nil
		}
		_, err = s.articles.SwapStatus(ctx, a.ID, a.Status, op.NewStatus)
	case domain.OperationDelete:
		_, err = s.articles.SoftDelete(ctx, a.ID)
	case domain.OperationTransferOwnership:
		if a.OwnerID == op.NewOwnerID {
			return domain.NewValidationError("operation.new_owner_id", "already the owner")
		}
		_, err = s.articles.SwapOwner(ctx, a.ID, a.OwnerID, op.NewOwnerID)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op.Kind, err)
	}
	return nil
}

func (s *Service) export(ctx context.Context, actor domain.Actor, id uuid.UUID, op domain.Operation) error {
	a, err := s.articles.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load article: %w", err)
	}
	if err := s.checkAccess(ctx, actor, a, op.Kind.ActionKind()); err != nil {
		return err
	}

	content, err := s.content.Read(ctx, id)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}

	err = s.sink.Write(ctx, domain.ExportDocument{
		ArticleID:  a.ID,
		Title:      a.Title,
		Status:     a.Status,
		OwnerID:    a.OwnerID,
		Content:    string(content),
		ExportedAt: s.clock().UTC(),
	})
	if err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// checkAccess rejects deleted articles, articles locked by another
// administrator, and anything the authorizer denies.
func (s *Service) checkAccess(ctx context.Context, actor domain.Actor, a domain.Article, action domain.ActionKind) error {
	if a.IsDeleted() {
		return fmt.Errorf("article %s: %w", a.ID, domain.ErrNotFound)
	}
	if a.LockedByOther(actor.ID) {
		return fmt.Errorf("article %s is locked by %s: %w", a.ID, a.LockedBy, domain.ErrForbidden)
	}
	if err := s.authorizer.Authorize(ctx, actor, action, a); err != nil {
		return fmt.Errorf("authorize %s: %w", action, err)
	}
	return nil
}
