// Package hint talks to a local text-generation model (Ollama) to produce
// short tutoring messages for an assignment. The provider is optional: when
// no model is configured the API layer answers with a static "disabled"
// message instead of calling out.
package hint

import (
	"context"
	"fmt"
	"strings"

	"github.com/ciphersql/studio/pkg/models"
)

// AssignmentContext is the slice of assignment metadata the tutor sees.
type AssignmentContext struct {
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Requirements []string             `json:"requirements"`
	Schemas      []models.TableSchema `json:"schemas"`
}

const promptTemplate = `You are a friendly SQL tutor. A student is working on the assignment "{{.Title}}".

Assignment description: {{.Description}}

Requirements:
{{range .Requirements}}- {{.}}
{{end}}
Available tables: {{.Tables}}

The student's current query is:

{{.CurrentQuery}}

Give one short hint (at most 3 sentences) that nudges the student toward the
next step. Do not write the full solution and do not include a complete query.`

type promptData struct {
	Title        string
	Description  string
	Requirements []string
	Tables       string
	CurrentQuery string
}

// Provider generates tutoring hints with a fixed model.
type Provider struct {
	client *Client
	model  string
}

func NewProvider(client *Client, model string) *Provider {
	return &Provider{client: client, model: model}
}

// Hint asks the model for a short advisory message. The returned string is
// trimmed; errors come back unwrapped from the client so callers can map
// them to a service-unavailable response.
func (p *Provider) Hint(ctx context.Context, ac AssignmentContext, currentQuery string) (string, error) {
	tables := make([]string, 0, len(ac.Schemas))
	for _, s := range ac.Schemas {
		cols := make([]string, 0, len(s.Columns))
		for _, c := range s.Columns {
			cols = append(cols, c.Name)
		}
		tables = append(tables, fmt.Sprintf("%s(%s)", s.TableName, strings.Join(cols, ", ")))
	}

	prompt, err := RenderTemplate(promptTemplate, promptData{
		Title:        ac.Title,
		Description:  ac.Description,
		Requirements: ac.Requirements,
		Tables:       strings.Join(tables, "; "),
		CurrentQuery: currentQuery,
	})
	if err != nil {
		return "", fmt.Errorf("render hint prompt: %w", err)
	}

	out, err := p.client.Generate(ctx, p.model, prompt)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}
