package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var cfgFile string

// Config holds file-level defaults. Flags always win over the file.
type Config struct {
	Workers      int      `yaml:"workers"`
	Delimiter    string   `yaml:"delimiter"`
	Encoding     string   `yaml:"encoding"`
	NullLiterals []string `yaml:"null_literals"`
}

var cfg Config

var rootCmd = &cobra.Command{
	Use:   "tabprof",
	Short: "Tabular dataset profiler",
	Long: `Profiles tabular datasets: per-column distinct counts, missing
counts and completeness percentages, reported one row per input column.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.tabprof.yaml)")
}

func initConfig() {
	path := cfgFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		path = filepath.Join(home, ".tabprof.yaml")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		// A missing default config is fine; an explicit one is not.
		if cfgFile != "" {
			log.Fatalf("Failed to read config %s: %v", path, err)
		}
		return
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		log.Fatalf("Failed to parse config %s: %v", path, err)
	}
}
