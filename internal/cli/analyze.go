package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/larklaon/bandalgom/dataset"
	"github.com/larklaon/bandalgom/export"
	"github.com/larklaon/bandalgom/internal/ctxlog"
)

// surveyHead limits how many merged rows the analyze report prints.
const surveyHead = 5

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Merge the survey tables and report structure statistics",
	Long: `Load the three survey CSVs, merge them into one table sorted by area and
position, and write the survey and summary artifacts.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := loadScenario(cmd)
		if err != nil {
			return err
		}
		rows, err := loadRows(cmd, sc)
		if err != nil {
			return err
		}
		counts := dataset.Summary(rows)

		if err := export.WriteSurveyFile(sc.Output.SurveyCSV, rows); err != nil {
			return err
		}
		if err := export.WriteSummaryFile(sc.Output.SummaryCSV, counts); err != nil {
			return err
		}
		ctxlog.FromContext(cmd.Context()).Info("analyze complete",
			"rows", len(rows), "structures", len(counts),
			"survey", sc.Output.SurveyCSV, "summary", sc.Output.SummaryCSV)

		out := cmd.OutOrStdout()
		if jsonOutput {
			return printJSON(out, analyzeReport{
				Area:    sc.Dataset.Area,
				Rows:    len(rows),
				Summary: summaryJSON(counts),
			})
		}

		printSection(out, fmt.Sprintf("Area %d survey (%d cells)", sc.Dataset.Area, len(rows)))
		head := rows
		if len(head) > surveyHead {
			head = head[:surveyHead]
		}
		headRows := make([][]string, 0, len(head))
		for _, r := range head {
			headRows = append(headRows, []string{
				strconv.Itoa(r.Area), strconv.Itoa(r.X), strconv.Itoa(r.Y),
				strconv.Itoa(r.Category), r.Struct, flagMark(r.ConstructionSite),
			})
		}
		printTable(out, []string{"area", "x", "y", "category", "struct", "site"}, headRows)

		printSection(out, "Structures")
		countRows := make([][]string, 0, len(counts))
		for _, c := range counts {
			countRows = append(countRows, []string{c.Struct, strconv.Itoa(c.Count)})
		}
		printTable(out, []string{"struct", "count"}, countRows)

		printSuccess(out, fmt.Sprintf("wrote %s and %s", sc.Output.SurveyCSV, sc.Output.SummaryCSV))
		return nil
	},
}

// analyzeReport is the --json shape of the analyze command.
type analyzeReport struct {
	Area    int               `json:"area"`
	Rows    int               `json:"rows"`
	Summary []structCountJSON `json:"summary"`
}

type structCountJSON struct {
	Struct string `json:"struct"`
	Count  int    `json:"count"`
}

func summaryJSON(counts []dataset.StructCount) []structCountJSON {
	out := make([]structCountJSON, len(counts))
	for i, c := range counts {
		out[i] = structCountJSON{Struct: c.Struct, Count: c.Count}
	}
	return out
}

func flagMark(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
