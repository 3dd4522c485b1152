package main

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/cache"
	"github.com/ZaguanLabs/alltools/messages"
	"github.com/ZaguanLabs/alltools/provider"
)

func newMessagesCmd(opts *cliOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Inspect and complete the localized texts",
	}
	cmd.AddCommand(newMessagesMissingCmd(opts), newMessagesFillCmd(opts))
	return cmd
}

func newMessagesMissingCmd(opts *cliOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "missing",
		Short: "List required texts each language lacks",
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

			missing := texts.Missing(catalog)
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), missing)
			}

			w := cmd.OutOrStdout()
			if len(missing) == 0 {
				fmt.Fprintln(w, "No missing texts.")
				return nil
			}
			for _, lang := range sortedLanguages(missing) {
				fmt.Fprintf(w, "%s (%d):\n", lang, len(missing[lang]))
				for _, key := range missing[lang] {
					fmt.Fprintf(w, "  %s\n", key)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	return cmd
}

func newMessagesFillCmd(opts *cliOptions) *cobra.Command {
	var (
		lang            string
		output          string
		cacheFile       string
		siteDescription string
		rpm             int
		mock            bool
	)

	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Produce the missing texts of one or every language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			texts, err := opts.texts(catalog)
			if err != nil {
				return err
			}
			if lang != "" && !catalog.HasLanguage(alltools.Language(lang)) {
				return &alltools.UnknownLanguageError{Language: alltools.Language(lang)}
			}

			var p messages.Provider
			if mock {
				p = provider.NewMockProvider()
			} else {
				if opts.cfg.OpenAIKey == "" {
					return errors.New("API key required: use --openai-api-key or set OPENAI_API_KEY (or use --mock)")
				}
				p = provider.New(provider.OpenAIConfig{
					APIKey:  opts.cfg.OpenAIKey,
					Model:   opts.cfg.OpenAIModel,
					BaseURL: opts.cfg.OpenAIBaseURL,
				}, messages.RateLimitConfig{RequestsPerMinute: rpm}, messages.DefaultRetryConfig())
			}

			c, release, err := opts.openCache(ctx)
			if err != nil {
				return err
			}
			defer release()

			if cacheFile != "" {
				res, err := cache.NewImporter(c).ImportFromFile(ctx, cacheFile)
				switch {
				case errors.Is(err, fs.ErrNotExist):
				case err != nil:
					return fmt.Errorf("loading cache file: %w", err)
				default:
					opts.logger.Info("loaded cache file",
						zap.String("path", cacheFile),
						zap.Int("imported", res.Imported),
						zap.Int("failed", res.Failed),
					)
				}
			}

			filler := messages.NewFiller(p,
				messages.WithCache(c),
				messages.WithSiteDescription(siteDescription),
				messages.WithLogger(opts.logger),
			)

			var results []*messages.FillResult
			if lang == "" {
				results, err = filler.FillAll(ctx, texts, catalog)
			} else {
				var res *messages.FillResult
				res, err = filler.Fill(ctx, texts, catalog, alltools.Language(lang))
				results = append(results, res)
			}
			if err != nil {
				return err
			}

			bundle := make(messages.Bundle)
			stderr := cmd.ErrOrStderr()
			for _, res := range results {
				if len(res.Texts) > 0 {
					bundle[res.Language] = res.Texts
				}
				fmt.Fprintf(stderr, "%s: %d filled, %d cached, %d unavailable\n",
					res.Language, res.Filled, res.Cached, res.Unavailable)
			}

			if cacheFile != "" {
				meta := map[string]string{"fingerprint": catalog.Fingerprint()}
				if err := cache.NewExporter(c).ExportToFile(ctx, cacheFile, meta); err != nil {
					return fmt.Errorf("saving cache file: %w", err)
				}
			}

			if output == "" {
				return messages.Encode(cmd.OutOrStdout(), ".yaml", bundle)
			}
			return messages.WriteFile(output, bundle)
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "", "Language to fill (default: every language)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the filled texts to a message file (default: YAML on stdout)")
	cmd.Flags().StringVar(&cacheFile, "cache-file", "", "Load and save filled texts from a cache export file")
	cmd.Flags().StringVar(&siteDescription, "site-description", "Free online tools website", "Description of the site given to the provider")
	cmd.Flags().IntVar(&rpm, "rpm", 60, "Maximum provider requests per minute")
	cmd.Flags().BoolVar(&mock, "mock", false, "Use the offline mock provider")
	return cmd
}

func sortedLanguages(m map[alltools.Language][]string) []alltools.Language {
	out := make([]alltools.Language, 0, len(m))
	for lang := range m {
		out = append(out, lang)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
