// Package output renders CLI results as tables or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/plugboard-dev/plugboard"
	"github.com/plugboard-dev/plugboard/catalog"
	"github.com/plugboard-dev/plugboard/internal/cli/errors"
	"github.com/plugboard-dev/plugboard/manifest"
)

type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

type Formatter struct {
	format OutputFormat
	color  bool
}

func NewFormatter(format OutputFormat, useColor bool) *Formatter {
	return &Formatter{
		format: format,
		color:  useColor,
	}
}

// printStructured emits the value as JSON or YAML when a structured
// format is selected, reporting whether it handled the output.
func (f *Formatter) printStructured(v any) bool {
	switch f.format {
	case FormatJSON:
		data, _ := json.MarshalIndent(v, "", "  ")
		fmt.Println(string(data))
		return true
	case FormatYAML:
		data, _ := yaml.Marshal(v)
		fmt.Print(string(data))
		return true
	}
	return false
}

func (f *Formatter) FormatError(err errors.ClassifiedError) string {
	if f.format == FormatJSON {
		data, _ := json.MarshalIndent(err, "", "  ")
		return string(data)
	}
	if f.format == FormatYAML {
		data, _ := yaml.Marshal(err)
		return string(data)
	}

	var msg string
	if f.color {
		msg = color.RedString("Error [%s]: %s", err.Kind, err.Message)
		if err.Hint != "" {
			msg += "\n" + color.YellowString("Hint: %s", err.Hint)
		}
	} else {
		msg = fmt.Sprintf("Error [%s]: %s", err.Kind, err.Message)
		if err.Hint != "" {
			msg += "\nHint: " + err.Hint
		}
	}
	return msg
}

// FormatExtensions prints extension statuses as a table or JSON.
func (f *Formatter) FormatExtensions(statuses []plugboard.ExtensionStatus) {
	if f.printStructured(statuses) {
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Name", "Category", "Available", "Description"}),
	)
	for _, s := range statuses {
		table.Append([]string{s.Name, string(s.Category), f.availability(s.Available), s.Description})
	}
	table.Render()
}

// FormatProviders prints provider entries as a table or JSON.
func (f *Formatter) FormatProviders(providers []catalog.ProviderEntry) {
	if f.printStructured(providers) {
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Provider", "Default Model", "Small Model", "Base URL"}),
	)
	for _, p := range providers {
		table.Append([]string{p.ProviderID, p.DefaultModel, p.SmallModel, p.APIBaseURL})
	}
	table.Render()
}

// FormatManifest prints manifest entries as a table or JSON. Constructors
// are not representable; the table shows identifier, priority, and the
// option keys.
func (f *Formatter) FormatManifest(m *manifest.Manifest) {
	if f.printStructured(m) {
		return
	}

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Identifier", "Priority", "Options"}),
	)
	for _, e := range m.Entries {
		table.Append([]string{e.Identifier, fmt.Sprintf("%d", e.Priority), optionKeys(e.Options)})
	}
	table.Render()

	if len(m.Overrides) > 0 {
		if f.color {
			color.Cyan("Overrides:")
		} else {
			fmt.Println("Overrides:")
		}
		for name, ov := range m.Overrides {
			line := "  " + name
			if ov.Enabled != nil {
				line += fmt.Sprintf(" enabled=%v", *ov.Enabled)
			}
			if ov.Priority != nil {
				line += fmt.Sprintf(" priority=%d", *ov.Priority)
			}
			fmt.Println(line)
		}
	}
}

// FormatValidation prints a catalog validation result.
func (f *Formatter) FormatValidation(result *catalog.ValidationResult) {
	if f.printStructured(result) {
		return
	}

	if result.Valid {
		if f.color {
			color.Green("Catalog is valid (%d warnings)", len(result.Warnings))
		} else {
			fmt.Printf("Catalog is valid (%d warnings)\n", len(result.Warnings))
		}
	} else {
		if f.color {
			color.Red("Catalog is invalid (%d errors)", len(result.Errors))
		} else {
			fmt.Printf("Catalog is invalid (%d errors)\n", len(result.Errors))
		}
	}
	for _, e := range result.Errors {
		fmt.Printf("  error: %s\n", e.Error())
	}
	for _, w := range result.Warnings {
		fmt.Printf("  warning: %s\n", w.Error())
	}
}

func (f *Formatter) availability(available bool) string {
	if !available {
		return "-"
	}
	if f.color {
		return color.GreenString("yes")
	}
	return "yes"
}

func optionKeys(opts map[string]any) string {
	out := ""
	for k := range opts {
		if out != "" {
			out += ","
		}
		out += k
	}
	return out
}
