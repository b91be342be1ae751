package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/andyle182810/censys/censys"
)

func newViewCmd(a *app) *cobra.Command {
	var atTime string

	cmd := &cobra.Command{
		Use:   "view <document-id>",
		Short: "View the current data for a host",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []censys.ViewOption

			if atTime != "" {
				t, err := time.Parse(time.RFC3339Nano, atTime)
				if err != nil {
					return fmt.Errorf("--at-time must be RFC 3339: %w", err)
				}

				opts = append(opts, censys.WithAtTime(t))
			}

			c, err := a.client()
			if err != nil {
				return err
			}

			start := time.Now()
			doc, err := c.View(a.requestContext(cmd), args[0], opts...)

			if err != nil {
				a.logger.Error().Err(err).Str("document_id", args[0]).Dur("elapsed", time.Since(start)).Msg("view failed")

				return &reportedError{err: err}
			}

			a.logger.Debug().Str("document_id", args[0]).Dur("elapsed", time.Since(start)).Msg("view completed")

			return a.print(cmd, doc)
		},
	}

	cmd.Flags().StringVar(&atTime, "at-time", "", "fetch the document as of this RFC 3339 time")

	return cmd
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		perPage int
		cursor  string
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the hosts index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []censys.SearchOption{censys.WithCursor(cursor)}
			if cmd.Flags().Changed("per-page") {
				opts = append(opts, censys.WithPerPage(perPage))
			}

			c, err := a.client()
			if err != nil {
				return err
			}

			start := time.Now()
			doc, err := c.Search(a.requestContext(cmd), args[0], opts...)

			if err != nil {
				a.logger.Error().Err(err).Str("query", args[0]).Dur("elapsed", time.Since(start)).Msg("search failed")

				return &reportedError{err: err}
			}

			links := doc.Links()
			a.logger.Debug().
				Str("query", args[0]).
				Bool("has_next", links.HasNext()).
				Bool("has_prev", links.HasPrev()).
				Dur("elapsed", time.Since(start)).
				Msg("search completed")

			return a.print(cmd, doc)
		},
	}

	cmd.Flags().IntVar(&perPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor from a previous response's result.links")

	return cmd
}

func newAggregateCmd(a *app) *cobra.Command {
	var numBuckets int

	cmd := &cobra.Command{
		Use:   "aggregate <query> <field>",
		Short: "Break down the values of a field over matching hosts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []censys.AggregateOption
			if cmd.Flags().Changed("num-buckets") {
				opts = append(opts, censys.WithNumBuckets(numBuckets))
			}

			c, err := a.client()
			if err != nil {
				return err
			}

			start := time.Now()
			doc, err := c.Aggregate(a.requestContext(cmd), args[0], args[1], opts...)

			if err != nil {
				a.logger.Error().
					Err(err).
					Str("query", args[0]).
					Str("field", args[1]).
					Dur("elapsed", time.Since(start)).
					Msg("aggregate failed")

				return &reportedError{err: err}
			}

			a.logger.Debug().
				Str("query", args[0]).
				Str("field", args[1]).
				Int("buckets", len(doc.Buckets())).
				Dur("elapsed", time.Since(start)).
				Msg("aggregate completed")

			return a.print(cmd, doc)
		},
	}

	cmd.Flags().IntVar(&numBuckets, "num-buckets", 0, "maximum number of buckets (server default 50)")

	return cmd
}
