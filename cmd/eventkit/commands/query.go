// Copyright 2025 Vulntor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vulntor/eventkit/cmd/eventkit/internal/format"
	"github.com/vulntor/eventkit/pkg/appctx"
	"github.com/vulntor/eventkit/pkg/collection"
	"github.com/vulntor/eventkit/pkg/config"
	"github.com/vulntor/eventkit/pkg/dataset"
	"github.com/vulntor/eventkit/pkg/event"
)

type queryOptions struct {
	file   string
	where  []string
	sortBy string
	sort   bool
	desc   bool
	watch  bool
}

// NewQueryCommand returns the query command, which runs a collection
// pipeline (where, sort, unique, skip, limit) over a YAML or JSON dataset.
func NewQueryCommand() *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter, sort and page the items of a dataset file",
		Example: `  eventkit query -f services.yaml --where tier=front --sort-by port --limit 5
  eventkit query -f services.json --unique --sort -o json
  eventkit query -f services.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQuery(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "Dataset file (YAML or JSON)")
	flags.StringArrayVarP(&opts.where, "where", "w", nil, "Keep items where field=value (repeatable, dotted paths allowed)")
	flags.StringVar(&opts.sortBy, "sort-by", "", "Sort by field (implies --sort)")
	flags.BoolVar(&opts.sort, "sort", false, "Sort items")
	flags.BoolVar(&opts.desc, "desc", false, "Sort in descending order")
	flags.BoolVar(&opts.watch, "watch", false, "Re-run the query whenever the dataset changes")
	config.BindQueryFlags(flags)
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runQuery(cmd *cobra.Command, opts *queryOptions) error {
	cfg := appctx.CurrentConfig(cmd.Context())
	logger := loggerFor(cmd, "query")

	noColor, _ := cmd.Flags().GetBool("no-color")
	out := format.New(cmd.OutOrStdout(), cmd.ErrOrStderr(),
		format.ParseMode(cfg.Output.Format), cfg.Output.Quiet, cfg.Output.Color && !noColor)

	q, stages, err := opts.build(cfg)
	if err != nil {
		_ = out.PrintError(err)
		return reported(err)
	}

	run := func(src *collection.Collection[any]) error {
		result, err := q.Run(src)
		if err != nil {
			return err
		}
		logger.Debug().
			Int("total", src.Count()).
			Int("returned", result.Count()).
			Msg("query finished")
		if err := out.PrintItems(result.Slice()); err != nil {
			return err
		}
		return out.PrintQuerySummary(format.QuerySummary{
			Source:   opts.file,
			Total:    src.Count(),
			Returned: result.Count(),
			Stages:   stages,
		})
	}

	if opts.watch {
		err = watchQuery(cmd.Context(), opts.file, logger, run, out)
	} else {
		var src *collection.Collection[any]
		if src, err = dataset.Load(opts.file, collection.WithLogger[any](logger)); err == nil {
			err = run(src)
		}
	}
	if err != nil {
		_ = out.PrintError(err)
		return reported(err)
	}
	return nil
}

// build turns the flags and configuration into a dataset query plus a
// human-readable list of its stages.
func (o *queryOptions) build(cfg config.Config) (dataset.Query, []string, error) {
	q := dataset.NewQuery()
	var stages []string

	for _, expr := range o.where {
		cond, err := dataset.ParseCondition(expr)
		if err != nil {
			return q, nil, err
		}
		q.Where = append(q.Where, cond)
		stages = append(stages, "where "+expr)
	}

	q.SortBy = o.sortBy
	q.Sort = o.sort || o.sortBy != ""
	q.Ascending = cfg.Query.Ascending && !o.desc
	if q.Sort {
		stage := "sort"
		if q.SortBy != "" {
			stage += " by " + q.SortBy
		}
		if !q.Ascending {
			stage += " desc"
		}
		stages = append(stages, stage)
	}

	q.Unique = cfg.Query.Unique
	if q.Unique {
		stages = append(stages, "unique")
	}

	q.Skip = cfg.Query.Skip
	if q.Skip > 0 {
		stages = append(stages, fmt.Sprintf("skip %d", q.Skip))
	}
	q.Limit = cfg.Query.Limit
	if q.Limit != collection.NoLimit {
		stages = append(stages, fmt.Sprintf("limit %d", q.Limit))
	}

	return q, stages, q.Validate()
}

// watchQuery renders the query once, then again on every dataset change,
// until ctx is done or the process is interrupted.
func watchQuery(ctx context.Context, path string, logger zerolog.Logger,
	run func(*collection.Collection[any]) error, out format.Formatter) error {
	w, err := dataset.NewWatcher(path, logger, collection.WithLogger[any](logger))
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.On(dataset.EventReload, event.ListenerFunc(func(e *event.Event) error {
		arg, _ := e.Arg(0)
		src, _ := arg.(*collection.Collection[any])
		if src == nil {
			return nil
		}
		if err := run(src); err != nil {
			_ = out.PrintError(err)
		}
		return nil
	})); err != nil {
		return err
	}
	if err := w.Reload(); err != nil {
		return err
	}

	// Later load failures are reported without stopping the watch.
	if err := w.On(dataset.EventReloadError, event.ListenerFunc(func(e *event.Event) error {
		arg, _ := e.Arg(0)
		if err, ok := arg.(error); ok {
			_ = out.PrintError(err)
		}
		return nil
	})); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = w.Start(ctx)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
