package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/cascade-sh/cascade/commands"
	"github.com/cascade-sh/cascade/core/remote"
	"github.com/cascade-sh/cascade/core/shell"
)

var oneLine string

// shellCmd runs the interpreter against the configured target. With no
// arguments it reads lines interactively; with a script file it runs the
// file top to bottom.
var shellCmd = &cobra.Command{
	Use:   "shell [SCRIPT]",
	Short: "Start an interactive shell against the target.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		lg, logCloser, err := openLogger()
		if err != nil {
			return err
		}

		isTerminal := term.IsTerminal(int(os.Stdin.Fd()))
		sh, err := shell.New(cmd.Context(), remote.NewLocal(cfg.TargetRoot), cfg, commands.Resolver(), lg.NewSession(), shell.Options{
			Stdin:      os.Stdin,
			Stdout:     cmd.OutOrStdout(),
			Stderr:     cmd.ErrOrStderr(),
			IsTerminal: isTerminal,
			Width: func() int {
				w, _, err := term.GetSize(int(os.Stdout.Fd()))
				if err != nil || w <= 0 {
					return 80
				}
				return w
			},
		})
		if err != nil {
			if logCloser != nil {
				logCloser.Close()
			}
			return err
		}

		switch {
		case oneLine != "":
			sh.Interpret(cmd.Context(), oneLine)
		case len(args) == 1:
			fd, err := os.Open(args[0])
			if err == nil {
				err = sh.RunScript(cmd.Context(), fd)
				fd.Close()
			}
			if err != nil {
				sh.Close()
				if logCloser != nil {
					logCloser.Close()
				}
				return err
			}
		default:
			if isTerminal && cfg.Motd != "" {
				cmd.Println(cfg.Motd)
			}
			sh.Run(cmd.Context())
		}

		exit := sh.Session.LastExit
		sh.Close()
		if logCloser != nil {
			logCloser.Close()
		}
		if exit != 0 {
			os.Exit(exit)
		}
		return nil
	},
}

func init() {
	shellCmd.Flags().StringVarP(&oneLine, "command", "c", "", "run a single line and exit")
	rootCmd.AddCommand(shellCmd)
}
