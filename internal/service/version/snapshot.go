package version

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/pkg/ctxutil"
)

// Snapshot appends a new version of an article. Manual snapshots are also
// recorded as an edit action in the same transaction; autosaves are not.
func (s *Service) Snapshot(ctx context.Context, input SnapshotInput) (domain.ArticleVersion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ArticleVersion{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.ArticleVersion{}, err
	}

	var owner domain.OwnerSnapshot
	if !input.AutoSave {
		var err error
		if owner, err = s.currentOwner(ctx, input.ArticleID); err != nil {
			return domain.ArticleVersion{}, err
		}
	}

	var created domain.ArticleVersion
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		a, err := loadLive(s.articles.GetForUpdate(txCtx, input.ArticleID))
		if err != nil {
			return fmt.Errorf("load article: %w", err)
		}

		created, err = s.versions.Append(txCtx, domain.ArticleVersion{
			ArticleID:        a.ID,
			Content:          input.Content,
			CreatedBy:        userID,
			CreatedAt:        s.clock().UTC(),
			StatusAtSnapshot: a.Status,
			ChangeSummary:    input.Summary,
		})
		if err != nil {
			return fmt.Errorf("append version: %w", err)
		}

		if input.AutoSave {
			return nil
		}
		if err := ownerUnchanged(a, owner); err != nil {
			return err
		}

		_, err = s.audit.Append(txCtx, domain.ActionDraft{
			ActorID:     userID,
			TargetKind:  domain.TargetArticle,
			TargetID:    &a.ID,
			TargetOwner: owner,
			Kind:        domain.ActionEdit,
			Notes:       input.Summary,
			Metadata:    domain.EditMetadata{VersionNumber: created.VersionNumber},
		})
		if err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return domain.ArticleVersion{}, err
	}

	s.log.InfoContext(ctx, "version created",
		slog.String("article_id", created.ArticleID.String()),
		slog.Int("version", created.VersionNumber),
		slog.Bool("autosave", input.AutoSave),
	)

	return created, nil
}
