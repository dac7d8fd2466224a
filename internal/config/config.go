package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Preset holds simulation settings loaded from an HCL file. Zero values mean
// "not set"; the CLI applies its own defaults and explicit flags win over
// preset values.
type Preset struct {
	Player      string `hcl:"player,optional"`
	Deck        string `hcl:"deck,optional"`
	Rounds      int    `hcl:"rounds,optional"`
	Seed        int64  `hcl:"seed,optional"`
	Trials      int    `hcl:"trials,optional"`
	Parallelism int    `hcl:"parallelism,optional"`
	RankSplit   bool   `hcl:"rank_split,optional"`
	Quiet       bool   `hcl:"quiet,optional"`
}

// file is the root HCL document: a single optional simulation block.
type file struct {
	Simulation *Preset `hcl:"simulation,block"`
}

// Load reads a preset from an HCL file. An empty path or a missing file
// yields an empty preset rather than an error.
func Load(path string) (Preset, error) {
	if path == "" {
		return Preset{}, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Preset{}, nil
	}

	parser := hclparse.NewParser()
	parsed, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Preset{}, fmt.Errorf("failed to parse config file: %s", diags.Error())
	}

	var doc file
	diags = gohcl.DecodeBody(parsed.Body, nil, &doc)
	if diags.HasErrors() {
		return Preset{}, fmt.Errorf("failed to decode config file: %s", diags.Error())
	}
	if doc.Simulation == nil {
		return Preset{}, nil
	}
	return *doc.Simulation, nil
}
