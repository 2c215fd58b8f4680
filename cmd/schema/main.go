// Command schema writes JSON schemas of the config file and of tool inputs.
// Usage: schema [config-schema.json] [tools-schema.json]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/azupdates/pkg/config"
	"github.com/umputun/azupdates/pkg/tools"
)

func main() {
	configPath, toolsPath := "schema.json", "tools-schema.json"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		toolsPath = os.Args[2]
	}

	if err := writeJSON(configPath, config.GenerateSchema()); err != nil {
		log.Fatalf("failed to write config schema: %v", err)
	}
	fmt.Printf("Config schema generated successfully at %s\n", configPath)

	if err := writeJSON(toolsPath, toolSchemas()); err != nil {
		log.Fatalf("failed to write tools schema: %v", err)
	}
	fmt.Printf("Tools schema generated successfully at %s\n", toolsPath)
}

// toolSchemas maps tool names to their input schemas
func toolSchemas() map[string]any {
	res := map[string]any{}
	for _, t := range tools.NewService(nil).Tools() {
		res[t.Name] = map[string]any{"description": t.Description, "inputSchema": t.InputSchema}
	}
	return res
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
