package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/PromptMixerDev/prompt-mixer-gemini-connector/pkg/connector"
)

// batchFile is the YAML batch definition accepted via -batch.
type batchFile struct {
	Model      string            `yaml:"model"`
	Prompts    []string          `yaml:"prompts"`
	Properties map[string]any    `yaml:"properties"`
	Settings   map[string]string `yaml:"settings"`
}

func main() {
	modelName := flag.String("model", "gemini-1.5-pro", "Gemini model ID")
	batchPath := flag.String("batch", "", "YAML batch file with model, prompts, properties and settings")
	flag.Parse()

	// Credentials may live in a local .env; absence is fine.
	_ = godotenv.Load()

	model := *modelName
	prompts := flag.Args()
	var properties map[string]any
	var settings map[string]string

	if *batchPath != "" {
		raw, err := os.ReadFile(*batchPath)
		if err != nil {
			log.Fatalf("failed to read batch file: %v", err)
		}
		var batch batchFile
		if err := yaml.Unmarshal(raw, &batch); err != nil {
			log.Fatalf("failed to parse batch file: %v", err)
		}
		if batch.Model != "" {
			model = batch.Model
		}
		prompts = append(batch.Prompts, prompts...)
		properties = batch.Properties
		settings = batch.Settings
	}

	if len(prompts) == 0 {
		log.Fatalf("no prompts: pass them as arguments or via -batch")
	}

	conn := connector.New(connector.Options{})
	resp := conn.Run(context.Background(), model, prompts, properties, settings)

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		log.Fatalf("failed to encode response: %v", err)
	}
	fmt.Println(string(out))
}
