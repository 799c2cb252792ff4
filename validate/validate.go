// Command validate provides a small CLI that validates game preset YAML files
// in the ../presets directory. It checks:
//   - YAML structure and required fields
//   - Mode is one of the known deck modes (base, halloween)
//   - Turn length is one of the allowed durations
//   - The preset name matches its file name
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/raulmoralesruiz/virus-backend/game/engine"
)

// Preset mirrors the YAML schema for a game preset.
type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Mode        string `yaml:"mode"`
	TurnSeconds int    `yaml:"turn_seconds"`
}

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

// validatePreset loads and validates a single preset YAML file.
func validatePreset(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid YAML: %v", err))
		return result
	}

	if preset.Name == "" {
		result.Valid = false
		result.Errors = append(result.Errors, "Missing preset name")
	}

	wantName := strings.TrimSuffix(result.File, ".yaml")
	if preset.Name != "" && preset.Name != wantName {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Name %q does not match file name %q", preset.Name, wantName))
	}

	switch engine.Mode(preset.Mode) {
	case engine.ModeBase, engine.ModeHalloween:
	case "":
		result.Valid = false
		result.Errors = append(result.Errors, "Missing mode")
	default:
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Unknown mode %q", preset.Mode))
	}

	allowed := false
	for _, d := range engine.TurnDurations {
		if preset.TurnSeconds == d {
			allowed = true
		}
	}
	if !allowed {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("turn_seconds must be one of %v, got %d", engine.TurnDurations, preset.TurnSeconds))
	}

	// Add informational data
	if result.Valid {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", preset.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Mode: %s", preset.Mode))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Turn: %ds", preset.TurnSeconds))
		if preset.Description != "" {
			result.Errors = append(result.Errors, fmt.Sprintf("✓ Description: %s", preset.Description))
		}
	}

	return result
}

// main scans ../presets for *.yaml files and validates each one, printing a
// concise report and exiting with non-zero status if any are invalid.
func main() {
	presetDir := "../presets"
	if len(os.Args) > 1 {
		presetDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(presetDir, "*.yaml"))
	if err != nil {
		fmt.Printf("Error finding preset files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No preset files found in %s\n", presetDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validatePreset(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All presets are valid!")
	} else {
		fmt.Println("❌ Some presets have errors")
		os.Exit(1)
	}
}
