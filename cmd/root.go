package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cascade-sh/cascade/core/config"
	"github.com/cascade-sh/cascade/core/logger"
)

var (
	cfgPath string
	logPath string
)

func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("Couldn't load config: did you run init?")
	}
	if err != nil {
		return nil, err
	}
	if err := configuration.Validate(); err != nil {
		return nil, err
	}

	return configuration, nil
}

// openLogger opens the event log named by --log. The returned closer is nil
// when no file was opened.
func openLogger() (*logger.Logger, io.Closer, error) {
	if logPath == "" {
		return logger.NewNop(), nil, nil
	}
	if logPath == "-" {
		return logger.NewJSONLines(os.Stderr), nil, nil
	}

	fd, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, err
	}
	return logger.NewJSONLines(fd), fd, nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cascade",
	Short: "Interactive debugging shell for a remote target",
	Long:  `A small shell whose commands all operate against a single remote target.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "append JSON event log to this file, - for stderr")
}
