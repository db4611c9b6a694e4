package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/editorial-admin/internal/adapter/export"
	"github.com/heartmarshall/editorial-admin/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/editorial-admin/internal/adapter/postgres/audit"
	"github.com/heartmarshall/editorial-admin/internal/app"
	"github.com/heartmarshall/editorial-admin/internal/config"
	"github.com/heartmarshall/editorial-admin/internal/domain"
	"github.com/heartmarshall/editorial-admin/internal/service/audit"
)

type exportFlags struct {
	since  string
	until  string
	kind   string
	actor  string
	target string
	text   string
	output string
}

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Work with the administrative audit log",
	}
	cmd.AddCommand(newAuditExportCmd())
	return cmd
}

func newAuditExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export matching audit records as NDJSON, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := flags.filter()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if flags.output != "" && flags.output != "-" {
				f, err := os.Create(flags.output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			n, err := runExport(cmd.Context(), filter, out)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d audit records\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.since, "since", "", "only records at or after this time (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.until, "until", "", "only records before this time; a bare date includes that day (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.kind, "kind", "", "only records of this action kind")
	cmd.Flags().StringVar(&flags.actor, "actor", "", "only records performed by this user ID")
	cmd.Flags().StringVar(&flags.target, "target", "", "only records targeting this item ID")
	cmd.Flags().StringVarP(&flags.text, "query", "q", "", "case-insensitive text match against summary and notes")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "-", "output file path (- for stdout)")
	return cmd
}

func runExport(ctx context.Context, filter domain.AuditFilter, out io.Writer) (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return 0, fmt.Errorf("load config: %w", err)
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return 0, fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := audit.NewService(logger, auditrepo.New(pool), nil, cfg.Audit)
	w := export.NewWriter(out)
	if err := svc.Export(ctx, filter, w.WriteRecord); err != nil {
		return w.Count(), fmt.Errorf("export audit records: %w", err)
	}
	return w.Count(), nil
}

func (f exportFlags) filter() (domain.AuditFilter, error) {
	var filter domain.AuditFilter

	if f.since != "" {
		t, err := parseTimeFlag(f.since, false)
		if err != nil {
			return filter, fmt.Errorf("--since: %w", err)
		}
		filter.OccurredAfter = &t
	}
	if f.until != "" {
		t, err := parseTimeFlag(f.until, true)
		if err != nil {
			return filter, fmt.Errorf("--until: %w", err)
		}
		filter.OccurredBefore = &t
	}
	if f.kind != "" {
		kind := domain.ActionKind(f.kind)
		if !kind.IsValid() {
			return filter, fmt.Errorf("--kind: unknown action kind %q", f.kind)
		}
		filter.Kind = &kind
	}
	if f.actor != "" {
		id, err := uuid.Parse(f.actor)
		if err != nil {
			return filter, fmt.Errorf("--actor: %w", err)
		}
		filter.ActorID = &id
	}
	if f.target != "" {
		id, err := uuid.Parse(f.target)
		if err != nil {
			return filter, fmt.Errorf("--target: %w", err)
		}
		filter.TargetID = &id
	}
	filter.TextQuery = f.text
	return filter, nil
}

// parseTimeFlag accepts RFC3339 or a bare date. The upper bound is exclusive,
// so a bare date used as one is moved to the start of the next day.
func parseTimeFlag(raw string, upper bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want RFC3339 or YYYY-MM-DD", raw)
	}
	if upper {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}
