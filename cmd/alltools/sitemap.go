package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/alltools/sitemap"
)

func newSitemapCmd(opts *cliOptions) *cobra.Command {
	var (
		output     string
		diffFile   string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Generate the sitemap document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			set, err := sitemap.NewGenerator(catalog, opts.cfg.BaseURL).Generate()
			if err != nil {
				return err
			}

			if diffFile != "" {
				prev, err := sitemap.ParseFile(diffFile)
				if err != nil {
					return fmt.Errorf("reading previous sitemap: %w", err)
				}
				return printDiff(cmd.OutOrStdout(), diffFile, sitemap.Diff(prev, set), jsonOutput)
			}

			if output == "" {
				_, err := set.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := set.WriteFile(output); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d entries to %s\n", set.Len(), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&diffFile, "diff", "", "Compare with a previous sitemap and show changes")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the diff as JSON")
	return cmd
}

// printDiff reports what changed between a previous sitemap and the current one.
func printDiff(w io.Writer, prevPath string, diff *sitemap.DiffResult, jsonOut bool) error {
	stats := diff.Stats()

	if jsonOut {
		type changed struct {
			Loc string   `json:"loc"`
			Old []string `json:"old"`
			New []string `json:"new"`
		}
		type diffOutput struct {
			PreviousFile string `json:"previous_file"`
			Stats        struct {
				Added     int `json:"added"`
				Removed   int `json:"removed"`
				Changed   int `json:"changed"`
				Unchanged int `json:"unchanged"`
			} `json:"stats"`
			Added   []string  `json:"added,omitempty"`
			Removed []string  `json:"removed,omitempty"`
			Changed []changed `json:"changed,omitempty"`
		}

		out := diffOutput{PreviousFile: filepath.Base(prevPath)}
		out.Stats.Added = stats.Added
		out.Stats.Removed = stats.Removed
		out.Stats.Changed = stats.Changed
		out.Stats.Unchanged = stats.Unchanged

		for _, u := range diff.Added {
			out.Added = append(out.Added, u.Loc)
		}
		for _, u := range diff.Removed {
			out.Removed = append(out.Removed, u.Loc)
		}
		for _, c := range diff.Changed {
			out.Changed = append(out.Changed, changed{Loc: c.New.Loc, Old: hrefs(c.Old), New: hrefs(c.New)})
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(w, "Diff: current vs %s\n\n", filepath.Base(prevPath))
	fmt.Fprintf(w, "Summary:\n")
	fmt.Fprintf(w, "  Unchanged: %d\n", stats.Unchanged)
	fmt.Fprintf(w, "  Added:     %d\n", stats.Added)
	fmt.Fprintf(w, "  Removed:   %d\n", stats.Removed)
	fmt.Fprintf(w, "  Changed:   %d\n", stats.Changed)

	if len(diff.Added) > 0 {
		fmt.Fprintf(w, "\nAdded:\n")
		for _, u := range diff.Added {
			fmt.Fprintf(w, "  + %s\n", u.Loc)
		}
	}
	if len(diff.Removed) > 0 {
		fmt.Fprintf(w, "\nRemoved:\n")
		for _, u := range diff.Removed {
			fmt.Fprintf(w, "  - %s\n", u.Loc)
		}
	}
	if len(diff.Changed) > 0 {
		fmt.Fprintf(w, "\nChanged alternates:\n")
		for _, c := range diff.Changed {
			fmt.Fprintf(w, "  ~ %s\n", c.New.Loc)
		}
	}
	if !diff.HasChanges() {
		fmt.Fprintf(w, "\nNo changes.\n")
	}
	return nil
}

func hrefs(u sitemap.URL) []string {
	out := make([]string, len(u.Alternates))
	for i, link := range u.Alternates {
		out[i] = link.Hreflang + " " + link.Href
	}
	return out
}
