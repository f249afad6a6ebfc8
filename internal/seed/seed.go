// Package seed loads the initial activity table from HCL.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"example.com/clubsignup/internal/domain"
)

//go:embed activities.hcl
var defaultActivities []byte

type hclSeedFile struct {
	Activities []*hclActivity `hcl:"activity,block"`
}

type hclActivity struct {
	Name            string   `hcl:"name,label"`
	Description     string   `hcl:"description,optional"`
	Schedule        string   `hcl:"schedule,optional"`
	MaxParticipants int      `hcl:"max_participants"`
	Participants    []string `hcl:"participants,optional"`
}

// Default returns the built-in activity table.
func Default() ([]domain.Activity, error) {
	return Parse(defaultActivities, "activities.hcl")
}

// Load reads activities from path, or the built-in table when path is empty.
func Load(path string) ([]domain.Activity, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes an HCL document of activity blocks. Activity names must be
// unique and capacities non-negative.
func Parse(src []byte, filename string) ([]domain.Activity, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", filename, diags)
	}

	var parsed hclSeedFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode seed file %s: %w", filename, diags)
	}

	seen := make(map[string]struct{}, len(parsed.Activities))
	out := make([]domain.Activity, 0, len(parsed.Activities))
	for _, block := range parsed.Activities {
		if strings.TrimSpace(block.Name) == "" {
			return nil, fmt.Errorf("%s: activity name must not be empty", filename)
		}
		if _, dup := seen[block.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate activity %q", filename, block.Name)
		}
		if block.MaxParticipants < 0 {
			return nil, fmt.Errorf("%s: activity %q has negative max_participants", filename, block.Name)
		}
		seen[block.Name] = struct{}{}

		participants := block.Participants
		if participants == nil {
			participants = []string{}
		}
		out = append(out, domain.Activity{
			Name:            block.Name,
			Description:     block.Description,
			Schedule:        block.Schedule,
			MaxParticipants: block.MaxParticipants,
			Participants:    participants,
		})
	}
	return out, nil
}
