package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"

	"github.com/gofhir/model/pkg/issue"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)
	return table
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// ResultOutput is the JSON form of a check result.
type ResultOutput struct {
	Source   string        `json:"source"`
	Valid    bool          `json:"valid"`
	Errors   int           `json:"errors"`
	Warnings int           `json:"warnings"`
	Info     int           `json:"info"`
	Issues   []IssueOutput `json:"issues,omitempty"`
}

// IssueOutput is the JSON form of a single issue.
type IssueOutput struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Diagnostics string   `json:"diagnostics"`
	Expression  []string `json:"expression,omitempty"`
}

func toOutput(source string, result *issue.Result) ResultOutput {
	out := ResultOutput{
		Source:   source,
		Valid:    !result.HasErrors(),
		Errors:   result.ErrorCount(),
		Warnings: result.WarningCount(),
		Info:     result.InfoCount(),
	}
	for _, iss := range result.Issues {
		out.Issues = append(out.Issues, IssueOutput{
			Severity:    string(iss.Severity),
			Code:        string(iss.Code),
			Diagnostics: iss.Diagnostics,
			Expression:  iss.Expression,
		})
	}
	return out
}

func printTextResult(w io.Writer, source string, result *issue.Result) {
	status := "VALID"
	if result.HasErrors() {
		status = "INVALID"
	}

	fmt.Fprintf(w, "== %s ==\n", source)
	fmt.Fprintf(w, "Status: %s\n", status)
	fmt.Fprintf(w, "Errors: %d, Warnings: %d, Info: %d\n", result.ErrorCount(), result.WarningCount(), result.InfoCount())

	if len(result.Issues) > 0 {
		fmt.Fprintln(w, "\nIssues:")
		for _, iss := range result.Issues {
			location := ""
			if len(iss.Expression) > 0 {
				location = fmt.Sprintf(" @ %s", strings.Join(iss.Expression, ", "))
			}
			fmt.Fprintf(w, "  %s [%s] %s%s\n", severityLabel(iss.Severity), iss.Code, iss.Diagnostics, location)
		}
	}
	fmt.Fprintln(w)
}

func severityLabel(severity issue.Severity) string {
	switch severity {
	case issue.SeverityError, issue.SeverityFatal:
		return "ERROR"
	case issue.SeverityWarning:
		return "WARN "
	case issue.SeverityInformation:
		return "INFO "
	default:
		return "     "
	}
}
