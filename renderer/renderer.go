// Package renderer turns simulation results into markdown reports and PNG
// charts. It owns no simulation logic: it consumes the engine's trial matrix
// and the derived statistics as read-only values.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// SimulationMarkdown renders the simulation Report to a markdown string.
func SimulationMarkdown(r *Report) string {
	// Phase 1: Declare template dependencies.
	partials := map[string]string{
		"simulation_title":  "simulation_title.md",
		"simulation_assets": "simulation_assets.md",
		"simulation_stats":  "simulation_stats.md",
	}

	// The benchmark section only exists when a benchmark was configured.
	if r.Benchmark != nil {
		partials["simulation_benchmark"] = "simulation_benchmark.md"
	} else {
		partials["simulation_benchmark"] = "simulation_benchmark_skipped.md"
	}

	// Phase 2: Execute rendering with the generic utility.
	return renderTemplate("simulation", "simulation.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
