package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/brolfetch/internal/adapters/fs"
	httpAdapter "github.com/bft-labs/brolfetch/internal/adapters/http"
	logAdapter "github.com/bft-labs/brolfetch/internal/adapters/log"
	"github.com/bft-labs/brolfetch/internal/app"
	"github.com/bft-labs/brolfetch/internal/cliconfig"
	"github.com/bft-labs/brolfetch/internal/domain"
)

const longHelp = `
Query the OVAM BROL geoserver for risk locations (BROL:risicolocatie) that
intersect a fixed rectangle in Belgian Lambert 72 (EPSG:31370), and save the
raw WFS response to response.txt.

The response is saved whatever the HTTP status; an OWS exception report ends
up in the file just like feature data. The status is logged to stderr.`

var exampleUsage = strings.TrimSpace(`
  brolfetch
  brolfetch --service-url http://localhost:8080/geoserver/BROL/wfs --output /tmp/brol.xml
  brolfetch --config ./brolfetch.toml`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	log := cliconfig.Logger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := newRootCommand(os.Stdout, log)
	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("brolfetch")
		stop()
		os.Exit(1)
	}
}

func newRootCommand(stdout io.Writer, log zerolog.Logger) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "brolfetch",
		Short:         "Save the OVAM risk locations intersecting a fixed Lambert 72 rectangle",
		Long:          strings.TrimSpace(longHelp),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			// Only an explicit --config is read; the default run uses no file.
			if cfgPath != "" {
				fc, err := cliconfig.LoadFileConfig(cfgPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}
			cliconfig.ApplyEnvConfig(&cfg, changed)

			if err := cfg.Validate(); err != nil {
				return err
			}
			log.Debug().Interface("config", cfg).Msg("configuration")

			req, err := domain.NewRequestDescriptor(cfg.ServiceURL)
			if err != nil {
				return err
			}

			logger := logAdapter.NewZerologAdapterWithLogger(log)
			fetcher := app.NewFetcher(
				req,
				httpAdapter.NewDispatcher(nil, logger),
				fs.NewResponseFile(cfg.OutputPath),
				logger,
				stdout,
			)
			return fetcher.Run(cmd.Context())
		},
	}

	root.SetOut(stdout)
	root.Flags().StringVar(&cfgPath, "config", "", "path to a TOML config file (none is read by default)")
	root.Flags().StringVar(&cfg.ServiceURL, "service-url", cfg.ServiceURL, "WFS endpoint to POST the GetFeature request to")
	if err := root.Flags().MarkHidden("service-url"); err != nil {
		log.Info().Err(err).Msg("failed to hide service-url flag")
	}
	root.Flags().StringVarP(&cfg.OutputPath, "output", "o", cfg.OutputPath, "file the response text is written to")

	return root
}
