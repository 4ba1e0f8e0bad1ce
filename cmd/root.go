package cmd

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/josephlewis42/pipesh/core"
	"github.com/josephlewis42/pipesh/core/config"
	"github.com/josephlewis42/pipesh/core/logger"
	"github.com/josephlewis42/pipesh/core/vos"
	"github.com/spf13/cobra"
)

var cfgPath string

// loadConfig loads the configuration, falling back to the defaults if the
// directory has none.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(cfgPath)

	if errors.Is(err, fs.ErrNotExist) {
		log.Println("No config found, using defaults. Run init to create one.")
		return config.Default(), nil
	}

	return configuration, err
}

// openEventLogger opens the configured event log, or discards events if
// there is none.
func openEventLogger(configuration *config.Configuration) (*logger.Logger, io.Closer, error) {
	fd, err := configuration.OpenAppLog()
	if err != nil {
		return nil, nil, err
	}
	if fd == nil {
		return logger.NewNopLogger(), io.NopCloser(nil), nil
	}
	return logger.NewJsonLinesLogRecorder(fd), fd, nil
}

// newLocalSession creates a session on the process's standard streams.
func newLocalSession(configuration *config.Configuration, eventLogger *logger.Logger, source string, pty vos.PTY) (*core.Session, error) {
	vfs, startDir, err := vos.NewVFSFromConfig(configuration)
	if err != nil {
		return nil, err
	}

	virtOS, err := vos.NewSessionOS(vfs, startDir, &vos.SessionAttr{
		Files: &vos.OSIO{},
		PTY:   pty,
	})
	if err != nil {
		return nil, err
	}

	return core.NewSession(configuration, virtOS, eventLogger.NewSession(), &logger.SessionStart{
		Source: source,
		User:   os.Getenv("USER"),
	}), nil
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pipesh",
	Short: "A line oriented shell with pipes and redirection",
	Long: `A small interpreter for single line pipelines: one built-in command
whose output flows through filters (|) or into files (> and >>).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
}
