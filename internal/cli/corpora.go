package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"stemcount/config"
	"stemcount/internal/adapter/store"
	"stemcount/internal/domain"
)

var (
	corporaJSON  bool
	corporaRmAll bool
)

var corporaCmd = &cobra.Command{
	Use:   "corpora",
	Short: "List saved corpus snapshots",
	Long: `List every corpus snapshot in the counts database.

Examples:
  stemcount corpora            # Table of saved snapshots
  stemcount corpora --json     # Metadata as JSON
  stemcount corpora rm march   # Delete a snapshot`,
	RunE: runCorporaList,
}

var corporaRmCmd = &cobra.Command{
	Use:   "rm <label-or-id>",
	Short: "Delete a saved corpus snapshot",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCorporaRm,
}

func init() {
	rootCmd.AddCommand(corporaCmd)
	corporaCmd.AddCommand(corporaRmCmd)
	corporaCmd.Flags().BoolVar(&corporaJSON, "json", false, "output as JSON")
	corporaRmCmd.Flags().BoolVar(&corporaRmAll, "all", false, "delete every snapshot")
}

func runCorporaList(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	corpora, err := st.ListCorpora()
	if err != nil {
		return fmt.Errorf("failed to list corpora: %w", err)
	}

	if corporaJSON {
		output, _ := json.MarshalIndent(corpora, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(corpora) == 0 {
		fmt.Println("No corpora saved.")
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Label", "ID", "Created", "Ngram", "Stopwords", "Sentences", "Grams", "Stems", "Languages"})
	table.SetAutoWrapText(false)
	for _, meta := range corpora {
		stopwords := "filtered"
		if meta.IncludeStopwords {
			stopwords = "included"
		}
		table.Append([]string{
			meta.Label,
			meta.ID,
			meta.CreatedAt.Local().Format("2006-01-02 15:04"),
			strconv.Itoa(meta.NgramSize),
			stopwords,
			humanize.Comma(int64(meta.Sentences)),
			humanize.Comma(int64(meta.Grams)),
			humanize.Comma(int64(meta.Stems)),
			strings.Join(meta.Languages, ","),
		})
	}
	table.Render()

	return nil
}

func runCorporaRm(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	if corporaRmAll {
		if err := st.Clear(); err != nil {
			return fmt.Errorf("failed to clear corpora: %w", err)
		}
		fmt.Println("Deleted all corpora.")
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("specify a label, an ID or --all")
	}

	meta, err := resolveCorpus(st, args[0])
	if err != nil {
		return err
	}
	if err := st.DeleteCorpus(meta.ID); err != nil {
		return fmt.Errorf("failed to delete corpus: %w", err)
	}
	fmt.Printf("Deleted corpus %s (%s)\n", meta.Label, meta.ID)

	return nil
}

// openStore opens the counts database under the state directory.
func openStore() (*store.BoltStore, error) {
	dbPath := config.CountsDBPath(GetRootDir())
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("no counts found. Run 'stemcount count --label' first")
	}
	st, err := store.NewBoltStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open counts store: %w", err)
	}
	return st, nil
}

// resolveCorpus finds a snapshot by label, falling back to ID lookup.
func resolveCorpus(st *store.BoltStore, ref string) (domain.CorpusMeta, error) {
	corpora, err := st.ListCorpora()
	if err != nil {
		return domain.CorpusMeta{}, fmt.Errorf("failed to list corpora: %w", err)
	}
	for _, meta := range corpora {
		if meta.Label == ref {
			return meta, nil
		}
	}
	for _, meta := range corpora {
		if meta.ID == ref {
			return meta, nil
		}
	}
	return domain.CorpusMeta{}, fmt.Errorf("corpus not found: %s", ref)
}
