// tracker is a personal task and appointment tracker for the terminal.
package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/dailytracker/internal/cli"
	"github.com/dmitrijs2005/dailytracker/internal/config"
	"github.com/dmitrijs2005/dailytracker/internal/logging"
)

var version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(&env{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is what every command gets after configuration is loaded.
type env struct {
	cfg *config.Config
	log *logging.SlogLogger
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:   "tracker",
		Short: "Personal task and appointment tracker",
		Long: `tracker keeps tasks and timed appointments in a local SQLite file and
shows them as a dashboard, a calendar and completion analytics.

Run without a subcommand to start the interactive shell.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configArgs(cmd.Flags()))
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.log = logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(cmd.Context(), e.cfg, e.log)
			if err != nil {
				return err
			}
			defer app.Close()

			app.Run(cmd.Context())
			return nil
		},
	}

	f := root.PersistentFlags()
	f.StringP("config", "c", "", "path to JSON config file")
	f.StringP("dsn", "d", "", "database file or DSN")
	f.StringP("secret", "s", "", "session signing key")
	f.IntP("session-hours", "t", 0, "session validity (in hours)")
	f.IntP("upcoming-days", "u", 0, "approaching deadlines horizon (in days)")
	f.IntP("timeout", "q", 0, "store operation timeout (in seconds)")
	f.StringP("log-level", "l", "", "log level (debug, info, warn, error)")
	f.StringP("log-format", "f", "", "log format (text, json)")
	f.StringP("s3-access-key", "k", "", "S3 access key")
	f.StringP("s3-secret-key", "p", "", "S3 secret key")
	f.StringP("s3-bucket", "b", "", "S3 bucket for exports")
	f.StringP("s3-region", "g", "", "S3 region")
	f.StringP("s3-endpoint", "e", "", "S3 base endpoint, e.g. http://127.0.0.1:9000")

	root.AddCommand(newSeedCmd(e), newVersionCmd())
	return root
}

// configArgs turns the flags set on the command line back into the short
// "-x=value" form the config loader parses.
func configArgs(fs *pflag.FlagSet) []string {
	args := make([]string, 0)
	fs.Visit(func(f *pflag.Flag) {
		if f.Shorthand != "" {
			args = append(args, "-"+f.Shorthand+"="+f.Value.String())
		}
	})
	return args
}

func newSeedCmd(e *env) *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the logged-in account with sample items for the last 10 days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := cli.NewApp(cmd.Context(), e.cfg, e.log)
			if err != nil {
				return err
			}
			defer app.Close()

			if seed == 0 {
				seed = uint64(time.Now().UnixNano())
			}
			_, err = app.Seed(cmd.Context(), rand.New(rand.NewPCG(seed, seed)))
			return err
		},
	}
	cmd.Flags().Uint64Var(&seed, "rand-seed", 0, "random seed (0 picks one)")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tracker %s\n", version)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
			fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
