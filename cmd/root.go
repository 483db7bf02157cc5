package cmd

import (
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/scienceol/stayawake/internal/config"
	"github.com/scienceol/stayawake/internal/logging"
	"github.com/scienceol/stayawake/internal/power"
	"github.com/scienceol/stayawake/internal/session"
	"github.com/scienceol/stayawake/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newPlatform is swapped out in tests.
var newPlatform = power.New

func newRootCmd() *cobra.Command {
	var flagDisplay bool

	rootCmd := &cobra.Command{
		Use:   "stay-awake",
		Short: "Keep this machine awake until you press Enter",
		Long: `stay-awake stops the operating system from putting an idle machine to
sleep for as long as the session is open. With --display the screen is
kept on as well.

Press Enter (or close the input) to end the session. The normal idle
behavior is restored on exit, including on Ctrl-C.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(flagDisplay)

			p := ui.New(cmd.ErrOrStderr())
			p.Banner(version)
			p.Separator()

			logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			defer logger.Sync()

			platform := newPlatform(logger)
			defer func() {
				if err := platform.Close(); err != nil {
					logger.Warn("closing platform", zap.Error(err))
				}
			}()

			// Handle graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return session.Run(ctx, session.Options{
				Intent:   cfg.Intent,
				Input:    cmd.InOrStdin(),
				Printer:  p,
				Platform: platform,
				Logger:   logger,
			})
		},
	}
	rootCmd.Flags().BoolVar(&flagDisplay, "display", false, "Keep the display on as well as the system")
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stderr))
}

func execute(args []string, in io.Reader, errOut io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(errOut)
	rootCmd.SetErr(errOut)

	if err := rootCmd.Execute(); err != nil {
		ui.New(errOut).Error("Stopping with error: %v", err)
		return 1
	}
	return 0
}
