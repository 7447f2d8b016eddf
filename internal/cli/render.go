package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"stemcount/internal/domain"
)

// maxTermsShown caps the surface forms listed per stem in table output.
const maxTermsShown = 3

// printStemTable renders the n highest-count stems to stdout.
func printStemTable(counts domain.WordCounts, n int) {
	ranked := counts.TopStems(n)
	if len(ranked) == 0 {
		fmt.Println("\nNo stems counted.")
		return
	}

	fmt.Println()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Stem", "Count", "Terms"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range ranked {
		table.Append([]string{
			row.Stem,
			humanize.Comma(int64(row.Count)),
			formatTerms(counts[row.Stem]),
		})
	}
	table.Render()
}

// formatTerms summarizes a bucket's surface forms, most frequent first.
func formatTerms(bucket *domain.TermBucket) string {
	if bucket == nil {
		return ""
	}
	top := bucket.TopTerms(maxTermsShown)
	parts := make([]string, 0, len(top))
	for _, term := range top {
		parts = append(parts, fmt.Sprintf("%s (%d)", term.Stem, term.Count))
	}
	if len(bucket.Terms) > maxTermsShown {
		parts = append(parts, "...")
	}
	return strings.Join(parts, ", ")
}
