package version

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/pkg/ctxutil"
)

// Restore makes an earlier version current again by appending a copy of it as
// a new version. Nothing is removed from the history.
//
// The new version, its restore record and the content write-back happen in
// one transaction; the content store is written last so that a failure there
// rolls back both database writes. A commit that fails after the write leaves
// the content ahead of the history; that case is logged at error level with
// the version it came from so it can be reconciled.
func (s *Service) Restore(ctx context.Context, input RestoreInput) (domain.ArticleVersion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ArticleVersion{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.ArticleVersion{}, err
	}

	owner, err := s.currentOwner(ctx, input.ArticleID)
	if err != nil {
		return domain.ArticleVersion{}, err
	}

	var (
		restored       domain.ArticleVersion
		contentWritten bool
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := loadLive(s.articles.GetForUpdate(txCtx, input.ArticleID))
		if err != nil {
			return fmt.Errorf("load article: %w", err)
		}
		if err := ownerUnchanged(a, owner); err != nil {
			return err
		}

		target, err := s.versions.Get(txCtx, a.ID, input.TargetVersion)
		if err != nil {
			return fmt.Errorf("get version %d: %w", input.TargetVersion, err)
		}

		from := target.VersionNumber
		restored, err = s.versions.Append(txCtx, domain.ArticleVersion{
			ArticleID:        a.ID,
			Content:          target.Content,
			CreatedBy:        userID,
			CreatedAt:        s.clock().UTC(),
			StatusAtSnapshot: a.Status,
			ChangeSummary:    fmt.Sprintf("restored from version %d", from),
			RestoredFrom:     &from,
		})
		if err != nil {
			return fmt.Errorf("append version: %w", err)
		}

		_, err = s.audit.Append(txCtx, domain.ActionDraft{
			ActorID:     userID,
			TargetKind:  domain.TargetArticle,
			TargetID:    &a.ID,
			TargetOwner: owner,
			Kind:        domain.ActionRestore,
			Metadata: domain.RestoreMetadata{
				RestoredFromVersion: from,
				NewVersion:          restored.VersionNumber,
			},
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}

		if err := s.content.Write(txCtx, a.ID, target.Content); err != nil {
			return fmt.Errorf("write content: %w", err)
		}
		contentWritten = true
		return nil
	})
	if err != nil {
		if contentWritten {
			s.log.ErrorContext(ctx, "content restored but version not committed",
				slog.String("article_id", input.ArticleID.String()),
				slog.Int("from", input.TargetVersion),
				slog.String("error", err.Error()),
			)
		}
		return domain.ArticleVersion{}, err
	}

	s.log.InfoContext(ctx, "version restored",
		slog.String("article_id", restored.ArticleID.String()),
		slog.Int("from", input.TargetVersion),
		slog.Int("version", restored.VersionNumber),
	)

	return restored, nil
}
