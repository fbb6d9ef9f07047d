package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/emsearch/emsearch-client/internal/constants"
	"github.com/emsearch/emsearch-client/pkg/emsearch"
)

// tableView is the table rendering of a command result.
type tableView struct {
	title  string
	header []string
	rows   [][]string
	footer string
}

// renderOutput writes data in the format selected by --output. The table
// view is only built for table output.
func renderOutput(w io.Writer, data any, view func() tableView) error {
	switch format := viper.GetString("output"); format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode JSON output: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(data)
		if err != nil {
			return fmt.Errorf("failed to encode YAML output: %w", err)
		}

		return encoder.Close()
	case "", constants.FormatTable:
		return renderTable(w, view())
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnsupportedOutputFormat, format)
	}
}

func renderTable(w io.Writer, view tableView) error {
	if view.title != "" {
		_, _ = fmt.Fprintf(w, "%s:\n\n", view.title)
	}

	header := make([]any, 0, len(view.header))
	for _, name := range view.header {
		header = append(header, name)
	}

	table := tablewriter.NewWriter(w)
	table.Header(header...)

	for _, row := range view.rows {
		err := table.Append(row)
		if err != nil {
			return fmt.Errorf("failed to append row to table: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	if view.footer != "" {
		_, _ = fmt.Fprintln(w, view.footer)
	}

	return nil
}

// propertyView renders name/value pairs.
func propertyView(title string, rows [][]string) tableView {
	return tableView{title: title, header: []string{"Property", "Value"}, rows: rows}
}

func paginationFooter(pagination emsearch.Pagination) string {
	return fmt.Sprintf("Page %d of %d (%d total)", pagination.CurrentPage, pagination.TotalPages, pagination.Total)
}

func valueOrNA(value *string) string {
	if value == nil || *value == "" {
		return constants.NotAvailable
	}

	return *value
}

func countOrNA(value *int) string {
	if value == nil {
		return constants.NotAvailable
	}

	return strconv.Itoa(*value)
}

func maskSecret(value string) string {
	if value == "" {
		return ""
	}

	return constants.Masked
}
