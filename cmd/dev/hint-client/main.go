// Manual smoke test for a locally running Ollama: asks for a hint on the
// first seeded assignment and prints the streamed response.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ciphersql/studio/internal/config"
	"github.com/ciphersql/studio/pkg/hint"
	"github.com/ciphersql/studio/pkg/models"
)

func main() {
	baseURL := flag.String("url", "http://localhost:11434", "Ollama base URL")
	model := flag.String("model", "llama3", "model name")
	flag.Parse()

	cfg := config.HintConfig{
		BaseURL:                 *baseURL,
		Model:                   *model,
		Timeout:                 60 * time.Second,
		Retries:                 1,
		Backoff:                 500 * time.Millisecond,
		CircuitFailureThreshold: 5,
		CircuitReset:            30 * time.Second,
	}

	client, err := hint.NewDefaultClient(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	provider := hint.NewProvider(client, cfg.Model)

	ac := hint.AssignmentContext{
		Title:       "Customer Directory Cleanup",
		Description: "Help the marketing team get a list of all active users from specific regions.",
		Requirements: []string{
			"Select the first name, last name, and email of all users.",
			`Only include users from the city "London".`,
			"Order the results by last name alphabetically.",
		},
		Schemas: []models.TableSchema{
			{
				TableName: "users",
				Columns: []models.Column{
					{Name: "id", Type: "INTEGER"},
					{Name: "first_name", Type: "VARCHAR"},
					{Name: "last_name", Type: "VARCHAR"},
					{Name: "email", Type: "VARCHAR"},
					{Name: "city", Type: "VARCHAR"},
					{Name: "status", Type: "VARCHAR"},
				},
			},
		},
	}

	out, err := provider.Hint(context.Background(), ac, "SELECT * FROM users;")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out)
}
