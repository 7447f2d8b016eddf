package cli

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stemcount/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "stemcount",
	Short: "Stemmed n-gram word counts for language-tagged text",
	Long: `stemcount turns sentences into stemmed n-gram frequency tables with
per-language tokenization, stemming and stopword filtering. Results can be
saved as corpus snapshots and reported later.

Example usage:
  stemcount count sentences.jsonl        # Count one file
  stemcount count ./data --label march   # Count a directory, save a snapshot
  stemcount top march --top 25           # Report the heaviest stems
  stemcount languages                    # List supported languages`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level, err := log.ParseLevel(cfg.Logging.Level)
		if err != nil {
			level = log.InfoLevel
		}
		log.SetLevel(level)

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./stemcount.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "state directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
