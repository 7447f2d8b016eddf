package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"stemcount/internal/domain"
)

var (
	topN      int
	topFormat string
)

var topCmd = &cobra.Command{
	Use:   "top <label-or-id>",
	Short: "Report the heaviest stems of a saved corpus",
	Long: `Report the highest-count stems of a corpus snapshot saved by
'stemcount count --label'.

Examples:
  stemcount top march                # Table of the heaviest stems
  stemcount top march --top 50       # More rows
  stemcount top march --format json  # Term buckets as JSON
  stemcount top march --format csv   # stem,count rows for spreadsheets`,
	Args: cobra.ExactArgs(1),
	RunE: runTop,
}

func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().IntVar(&topN, "top", 0, "number of stems to report (default from config)")
	topCmd.Flags().StringVar(&topFormat, "format", "", "output format: table, json or csv (default from config)")
}

func runTop(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	meta, err := resolveCorpus(st, args[0])
	if err != nil {
		return err
	}

	n := cfg.Report.Top
	if topN > 0 {
		n = topN
	}
	format := cfg.Report.Format
	if topFormat != "" {
		format = topFormat
	}

	counts, err := st.GetCounts(meta.ID)
	if err != nil {
		return fmt.Errorf("failed to load counts: %w", err)
	}

	switch format {
	case "json":
		ranked := counts.TopStems(n)
		buckets := make(map[string]*domain.TermBucket, len(ranked))
		for _, row := range ranked {
			buckets[row.Stem] = counts[row.Stem]
		}
		output, _ := json.MarshalIndent(buckets, "", "  ")
		fmt.Println(string(output))
	case "csv":
		writer := csv.NewWriter(os.Stdout)
		if err := writer.Write([]string{"stem", "count"}); err != nil {
			return err
		}
		for _, row := range counts.TopStems(n) {
			if err := writer.Write([]string{row.Stem, strconv.Itoa(row.Count)}); err != nil {
				return err
			}
		}
		writer.Flush()
		return writer.Error()
	case "table":
		fmt.Printf("Corpus %s (%s): %s sentences, %s grams, %s stems\n",
			meta.Label, meta.ID,
			humanize.Comma(int64(meta.Sentences)),
			humanize.Comma(int64(meta.Grams)),
			humanize.Comma(int64(meta.Stems)))
		printStemTable(counts, n)
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	return nil
}
