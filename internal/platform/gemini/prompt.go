package gemini

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"text/template"
	"time"

	"github.com/Manoj-Murari/task-analyzer/internal/advisor"
	"github.com/Manoj-Murari/task-analyzer/internal/domain"
)

//go:embed prompt.tmpl
var defaultPromptTemplate string

// promptData represents the data passed to the prompt template
type promptData struct {
	Today string
	Tasks string
}

// loadPromptTemplate parses the template at path, or the built-in template
// when path is empty.
func loadPromptTemplate(path string) (*template.Template, error) {
	content := defaultPromptTemplate
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read prompt template from %s: %v",
				advisor.ErrInvalidConfig, path, err)
		}
		content = string(b)
	}

	tmpl, err := template.New("prioritize").Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse prompt template: %v", advisor.ErrInvalidConfig, err)
	}
	return tmpl, nil
}

// renderPrompt executes tmpl for the batch as seen on the date of now.
func renderPrompt(tmpl *template.Template, tasks []domain.Task, now time.Time) (string, error) {
	doc, err := advisor.BatchDocument(tasks)
	if err != nil {
		return "", fmt.Errorf("failed to encode task batch: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{Today: domain.FormatDate(now), Tasks: doc}); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}
	return buf.String(), nil
}
