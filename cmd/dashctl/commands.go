package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/premier-dashboard/internal/domain"
	"github.com/heartmarshall/premier-dashboard/internal/table"
)

type viewFlags struct {
	search string
	sort   string
	desc   bool
}

func (f *viewFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "q", "q", "", "case-insensitive search text")
	cmd.Flags().StringVar(&f.sort, "sort", "", "field key to sort by")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "sort descending")
}

func (f *viewFlags) query() table.Query {
	dir := table.Asc
	if f.desc {
		dir = table.Desc
	}
	return table.Query{Search: f.search, Sort: table.SortState{Key: f.sort, Dir: dir}}
}

func newListCmd(s *session) *cobra.Command {
	var view viewFlags
	cmd := &cobra.Command{
		Use:   "list <entity>",
		Short: "Print the records of an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.resource(args[0])
			if err != nil {
				return err
			}
			rows, err := res.Rows(view.query())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, strings.ToUpper(strings.Join(res.Keys(), "\t")))
			for _, row := range rows {
				fmt.Fprintln(tw, strings.Join(row, "\t"))
			}
			return tw.Flush()
		},
	}
	view.register(cmd)
	return cmd
}

func newStatsCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <entity>",
		Short: "Print the stat card values of an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.resource(args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res.Stats())
		},
	}
}

func newExportCmd(s *session) *cobra.Command {
	var (
		view viewFlags
		out  string
	)
	cmd := &cobra.Command{
		Use:   "export <entity|all>",
		Short: "Write an entity, or every entity, to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				name string
				err  error
			)
			if args[0] == "all" {
				data, name, err = s.ws.ExportAll(cmd.Context())
			} else {
				if _, err := s.resource(args[0]); err != nil {
					return err
				}
				data, name, err = s.ws.Export(cmd.Context(), domain.EntityType(args[0]), view.query())
			}
			if err != nil {
				return err
			}

			if out == "" {
				out = name
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", out, len(data))
			return nil
		},
	}
	view.register(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: localized sheet name)")
	return cmd
}

func newDeleteCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <entity> <id>",
		Short: "Delete one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := s.resource(args[0])
			if err != nil {
				return err
			}
			id, err := domain.ParseID(args[1])
			if err != nil {
				return err
			}
			if err := res.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s #%s\n", res.Entity(), id)
			return nil
		},
	}
}

func newSeedCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write demo data into empty collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeded, err := s.ws.Seed(cmd.Context())
			if err != nil {
				return err
			}
			if len(seeded) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to seed")
				return nil
			}
			for _, e := range seeded {
				fmt.Fprintf(cmd.OutOrStdout(), "seeded %s\n", e)
			}
			return nil
		},
	}
}
