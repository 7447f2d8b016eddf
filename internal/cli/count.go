package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"stemcount/config"
	"stemcount/internal/adapter/detect"
	"stemcount/internal/adapter/fs"
	"stemcount/internal/adapter/language"
	"stemcount/internal/adapter/store"
	"stemcount/internal/counter"
	"stemcount/internal/port"
	"stemcount/internal/usecase"
)

var (
	countNgram     int
	countStopwords bool
	countLanguage  string
	countLabel     string
	countIncludes  []string
	countExcludes  []string
	countNoDetect  bool
	countJSON      bool
	countTop       int
)

var countCmd = &cobra.Command{
	Use:   "count [path]",
	Short: "Count stemmed n-grams in text files",
	Long: `Count stemmed n-grams in JSONL, CSV or plain text files.
Records tagged with a language code use it; untagged records are run
through language detection unless a default language is set.

Examples:
  stemcount count sentences.jsonl          # Count one file
  stemcount count ./data --ngram 2         # Bigrams over a directory
  stemcount count ./data --label march     # Save the snapshot as "march"
  stemcount count notes.txt --language en  # Treat untagged text as English`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
	countCmd.Flags().IntVarP(&countNgram, "ngram", "n", 0, "n-gram size (default from config)")
	countCmd.Flags().BoolVar(&countStopwords, "include-stopwords", false, "count stopwords too")
	countCmd.Flags().StringVarP(&countLanguage, "language", "l", "", "language assumed for untagged records")
	countCmd.Flags().StringVar(&countLabel, "label", "", "save the result as a corpus snapshot with this label")
	countCmd.Flags().StringSliceVar(&countIncludes, "include", nil, "glob patterns of files to include")
	countCmd.Flags().StringSliceVar(&countExcludes, "exclude", nil, "glob patterns of files to exclude")
	countCmd.Flags().BoolVar(&countNoDetect, "no-detect", false, "disable language detection for untagged records")
	countCmd.Flags().BoolVar(&countJSON, "json", false, "output the full frequency table as JSON")
	countCmd.Flags().IntVar(&countTop, "top", 0, "rows in the summary table (default from config)")
}

func runCount(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	// Determine path to count
	path := GetRootDir()
	if len(args) > 0 {
		var err error
		path, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	// Configure the counter
	wc := counter.NewWordCounter(language.DefaultRegistry())

	ngram := cfg.Count.NgramSize
	if countNgram > 0 {
		ngram = countNgram
	}
	if err := wc.SetNgramSize(ngram); err != nil {
		return err
	}

	includeStopwords := cfg.Count.IncludeStopwords
	if cmd.Flags().Changed("include-stopwords") {
		includeStopwords = countStopwords
	}
	wc.SetIncludeStopwords(includeStopwords)

	// Create walker with configured patterns
	includes := cfg.Count.Includes
	if len(countIncludes) > 0 {
		includes = countIncludes
	}
	excludes := cfg.Count.Excludes
	if len(countExcludes) > 0 {
		excludes = countExcludes
	}
	walker := fs.NewWalker(includes, excludes)

	// Create detector unless disabled
	var detector port.LanguageDetector
	if cfg.Detect.Enabled && !countNoDetect {
		detector = detect.NewDetector(cfg.Detect.MinConfidence)
	}

	// Open the store when the result should be saved
	var countStore port.CountStore
	if countLabel != "" {
		if err := config.EnsureStateDir(GetRootDir()); err != nil {
			return fmt.Errorf("failed to create .stemcount directory: %w", err)
		}
		st, err := store.NewBoltStore(config.CountsDBPath(GetRootDir()))
		if err != nil {
			return fmt.Errorf("failed to open counts store: %w", err)
		}
		defer st.Close()
		countStore = st
	}

	countUC := usecase.NewCountUseCase(wc, walker, detector, countStore)

	defaultLanguage := cfg.Count.DefaultLanguage
	if countLanguage != "" {
		defaultLanguage = countLanguage
	}
	countUC.SetDefaultLanguage(defaultLanguage)

	// Progress bar, initialized once the file total is known
	var bar *progressbar.ProgressBar
	var barMu sync.Mutex
	var startTime time.Time
	var initialized bool

	progress := func(processed, total int, currentFile string) {
		barMu.Lock()
		defer barMu.Unlock()

		if !initialized {
			startTime = time.Now()
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Counting[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
			initialized = true
		}

		bar.Set(processed)

		// Calculate and display ETA
		if processed > 0 {
			elapsed := time.Since(startTime)
			rate := float64(processed) / elapsed.Seconds()
			remaining := total - processed
			if rate > 0 {
				eta := time.Duration(float64(remaining)/rate) * time.Second
				bar.Describe(fmt.Sprintf("[cyan]Counting[reset] ETA: %s", formatDuration(eta)))
			}
		}
	}

	result, err := countUC.Count(path, countLabel, progress)
	if err != nil {
		return fmt.Errorf("counting failed: %w", err)
	}

	for _, warning := range result.Errors {
		log.Warn(warning)
	}

	if countJSON {
		output, _ := json.MarshalIndent(result.Counts, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	// Print results
	fmt.Printf("\nCounting complete:\n")
	fmt.Printf("  Files read:     %d\n", result.FilesRead)
	fmt.Printf("  Sentences:      %s\n", humanize.Comma(int64(result.Sentences)))
	if result.Detected > 0 {
		fmt.Printf("  Detected:       %s\n", humanize.Comma(int64(result.Detected)))
	}
	if result.Skipped > 0 {
		fmt.Printf("  Skipped:        %s\n", humanize.Comma(int64(result.Skipped)))
	}
	fmt.Printf("  Grams counted:  %s\n", humanize.Comma(int64(result.Meta.Grams)))
	fmt.Printf("  Distinct stems: %s\n", humanize.Comma(int64(result.Meta.Stems)))
	if len(result.Meta.Languages) > 0 {
		fmt.Printf("  Languages:      %s\n", strings.Join(result.Meta.Languages, ", "))
	}

	top := cfg.Report.Top
	if countTop > 0 {
		top = countTop
	}
	printStemTable(result.Counts, top)

	if countLabel != "" {
		fmt.Printf("\nCorpus saved: %s (%s)\n", countLabel, result.Meta.ID)
		fmt.Printf("Counts stored at: %s\n", config.CountsDBPath(GetRootDir()))
	}

	return nil
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "<1s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
