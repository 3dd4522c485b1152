// Command alltools serves the localized tool site and inspects its catalog.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ZaguanLabs/alltools"
	"github.com/ZaguanLabs/alltools/cache"
	"github.com/ZaguanLabs/alltools/internal/config"
	"github.com/ZaguanLabs/alltools/internal/telemetry"
	"github.com/ZaguanLabs/alltools/messages"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = alltools.Version
	commit    = alltools.GitCommit
	buildDate = alltools.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(context.Background())
}

type cliOptions struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{
		cfg:    config.DefaultConfig(),
		logger: zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           alltools.Name,
		Short:         alltools.Description,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			logger, err := telemetry.NewLogger(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	config.AddFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(opts),
		newSitemapCmd(opts),
		newResolveCmd(opts),
		newPathCmd(opts),
		newNegotiateCmd(opts),
		newValidateCmd(opts),
		newMessagesCmd(opts),
		newVersionCmd(),
	)
	return root
}

// catalog builds the configured catalog: the catalog file, or the built-in one,
// with the default language override applied.
func (o *cliOptions) catalog() (*alltools.Catalog, error) {
	def := alltools.DefaultDefinition()
	if o.cfg.CatalogPath != "" {
		loaded, err := alltools.LoadDefinition(o.cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		def = loaded
	}
	if o.cfg.DefaultLanguage != "" {
		def.DefaultLanguage = alltools.Language(o.cfg.DefaultLanguage)
	}
	return alltools.NewCatalog(def)
}

// texts builds the text store: built-in texts, then each message file in order.
func (o *cliOptions) texts(catalog *alltools.Catalog) (*messages.Store, error) {
	builtin, err := messages.Builtin()
	if err != nil {
		return nil, err
	}
	store := messages.NewStore(catalog.DefaultLanguage())
	store.Merge(builtin.Bundle())

	for _, path := range o.cfg.MessagesPaths {
		b, err := messages.LoadFile(path)
		if err != nil {
			return nil, err
		}
		store.Merge(b)
	}
	return store, nil
}

// openCache opens the configured cache backend. The returned function releases it.
func (o *cliOptions) openCache(ctx context.Context) (cache.Enumerable, func(), error) {
	if o.cfg.CacheBackend != config.CacheRedis {
		return cache.NewMemoryCache(o.cfg.CacheTTL), func() {}, nil
	}

	c, err := cache.NewRedisCache(ctx, cache.RedisConfig{
		URL:       o.cfg.RedisURL,
		TTL:       o.cfg.CacheTTL,
		KeyPrefix: o.cfg.CachePrefix,
		Logger:    o.logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return c, func() {
		if err := c.Close(); err != nil {
			o.logger.Warn("closing redis cache failed", zap.Error(err))
		}
	}, nil
}
