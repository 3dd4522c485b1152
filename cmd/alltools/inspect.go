package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/sitemap"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newResolveCmd(opts *cliOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "resolve <lang> <slug>",
		Short: "Resolve a localized slug to its tool",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			lang := alltools.Language(args[0])
			if !catalog.HasLanguage(lang) {
				return &alltools.UnknownLanguageError{Language: lang}
			}

			tool, ok := catalog.Resolve(lang, args[1])
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), struct {
					Language alltools.Language `json:"language"`
					Slug     string            `json:"slug"`
					Tool     alltools.ToolID   `json:"tool,omitempty"`
					Found    bool              `json:"found"`
				}{lang, args[1], tool, ok})
			}
			if !ok {
				return fmt.Errorf("no tool has slug %q in %s", args[1], lang)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tool)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	return cmd
}

func newPathCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path <tool> [lang...]",
		Short: "Print the canonical path of a tool in each language",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			tool := alltools.ToolID(args[0])

			langs := catalog.Languages()
			if len(args) > 1 {
				langs = make([]alltools.Language, 0, len(args)-1)
				for _, l := range args[1:] {
					langs = append(langs, alltools.Language(l))
				}
			}

			for _, lang := range langs {
				path, err := catalog.CanonicalPath(tool, lang)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", lang, path)
			}
			return nil
		},
	}
}

func newNegotiateCmd(opts *cliOptions) *cobra.Command {
	var route, accept string

	cmd := &cobra.Command{
		Use:   "negotiate",
		Short: "Show which language a route segment and browser preference select",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			preference := alltools.PreferredTag(accept, catalog.Languages())
			lang := catalog.Negotiate(route, preference)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", lang, alltools.LanguageName(lang), alltools.Direction(lang))
			return nil
		},
	}

	cmd.Flags().StringVar(&route, "route", "", "Language segment of the route")
	cmd.Flags().StringVar(&accept, "accept", "", "Accept-Language header value")
	return cmd
}

func newValidateCmd(opts *cliOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the catalog and report missing texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			texts, err := opts.texts(catalog)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Catalog OK\n")
			fmt.Fprintf(w, "  Fingerprint: %s\n", catalog.Fingerprint())
			fmt.Fprintf(w, "  Languages:   %d (default %s)\n", len(catalog.Languages()), catalog.DefaultLanguage())
			fmt.Fprintf(w, "  Tools:       %d\n", len(catalog.Tools()))
			fmt.Fprintf(w, "  Categories:  %d\n", len(catalog.Categories()))
			fmt.Fprintf(w, "  Pages:       %d\n", sitemap.ExpectedCount(catalog))

			missing := texts.Missing(catalog)
			if len(missing) == 0 {
				fmt.Fprintf(w, "  Texts:       complete\n")
				return nil
			}

			langs := make([]string, 0, len(missing))
			total := 0
			for lang, keys := range missing {
				langs = append(langs, string(lang))
				total += len(keys)
			}
			sort.Strings(langs)
			for _, lang := range langs {
				fmt.Fprintf(w, "  Missing %s: %d\n", lang, len(missing[alltools.Language(lang)]))
			}
			if strict {
				return fmt.Errorf("%d texts missing", total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any text is missing")
	return cmd
}
