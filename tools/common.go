package tools

import (
	"fmt"
	"io"
	"os"

	"github.com/opendaylight/vtn-sub010/capture"
	"github.com/opendaylight/vtn-sub010/config"
	"github.com/opendaylight/vtn-sub010/ipc"
	"github.com/opendaylight/vtn-sub010/std/log"
	"github.com/spf13/cobra"
)

// settings are the flags shared by every command.
type settings struct {
	configFile string
	logLevel   string
}

func (s *settings) bind(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&s.configFile, "config", "c", "", "Configuration file (YAML)")
	cmd.PersistentFlags().StringVar(&s.logLevel, "log-level", "", "Override the configured log level")
}

// load reads the configuration and applies its log level.
func (s *settings) load() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.configFile != "" {
		f, err := os.Open(s.configFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if cfg, err = config.Read(f); err != nil {
			return nil, fmt.Errorf("config %s: %w", s.configFile, err)
		}
	}
	if s.logLevel != "" {
		cfg.LogLevel = s.logLevel
	}
	if err := cfg.Parse(); err != nil {
		return nil, err
	}
	log.Default().SetLevel(cfg.Level())
	return cfg, nil
}

func openStore(cfg *config.Config) (capture.Store, error) {
	if cfg.StoreDir == "" {
		return nil, fmt.Errorf("store_dir is not configured")
	}
	return capture.NewBadgerStore(cfg.StoreDir)
}

// readInput reads a file, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func readStream(path string) (ipc.Stream, error) {
	wire, err := readInput(path)
	if err != nil {
		return nil, err
	}
	return ipc.ParseStream(wire)
}
