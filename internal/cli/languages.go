package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"stemcount/internal/adapter/language"
)

var languagesJSON bool

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages",
	RunE:  runLanguages,
}

func init() {
	rootCmd.AddCommand(languagesCmd)
	languagesCmd.Flags().BoolVar(&languagesJSON, "json", false, "output as JSON")
}

func runLanguages(cmd *cobra.Command, args []string) error {
	registry := language.DefaultRegistry()

	if languagesJSON {
		type languageInfo struct {
			Code string `json:"code"`
			Name string `json:"name"`
		}
		infos := make([]languageInfo, 0, len(registry.Codes()))
		for _, code := range registry.Codes() {
			provider, ok := registry.Provider(code)
			if !ok {
				continue
			}
			infos = append(infos, languageInfo{Code: provider.Code(), Name: provider.Name()})
		}
		output, _ := json.MarshalIndent(infos, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Code", "Name", "Stopwords"})
	for _, code := range registry.Codes() {
		provider, ok := registry.Provider(code)
		if !ok {
			continue
		}
		table.Append([]string{
			provider.Code(),
			provider.Name(),
			strconv.Itoa(len(provider.Stopwords())),
		})
	}
	table.Render()

	return nil
}
