package hclspec

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/pipegridgo/internal/ctxlog"
	"github.com/vk/pipegridgo/internal/fsutil"
	"github.com/vk/pipegridgo/internal/graph"
)

// Definition is a decoded pipeline: its name, seed, ordered node
// definitions, and per-node parameter overrides ready for instantiation.
type Definition struct {
	Name       string
	Seed       int64
	Nodes      []graph.NodeDef
	Parameters map[string]map[string]any
}

// fileRoot decodes the top-level blocks of a definition file.
type fileRoot struct {
	Pipelines []*pipelineBlock `hcl:"pipeline,block"`
	Remain    hcl.Body         `hcl:",remain"`
}

type pipelineBlock struct {
	Name  string       `hcl:"name,label"`
	Seed  *int64       `hcl:"seed,optional"`
	Nodes []*nodeBlock `hcl:"node,block"`
}

type nodeBlock struct {
	Name       string    `hcl:"name,label"`
	Component  string    `hcl:"component"`
	Inputs     []string  `hcl:"inputs,optional"`
	Parameters cty.Value `hcl:"parameters,optional"`
}

// Load parses the given path, a .hcl file or a directory of them, and
// returns every pipeline found in declaration order.
func Load(ctx context.Context, path string) ([]*Definition, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered pipeline definition files.", "count", len(files))

	parser := hclparse.NewParser()
	seen := make(map[string]struct{})
	var defs []*Definition

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", file, diags)
		}

		for _, block := range root.Pipelines {
			if _, dup := seen[block.Name]; dup {
				return nil, fmt.Errorf("pipeline %q defined more than once", block.Name)
			}
			seen[block.Name] = struct{}{}

			def, err := translatePipeline(block)
			if err != nil {
				return nil, fmt.Errorf("pipeline %q in %s: %w", block.Name, file, err)
			}
			defs = append(defs, def)
		}
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no pipeline blocks found under %s", path)
	}
	logger.Debug("Pipeline definitions loaded.", "count", len(defs))
	return defs, nil
}

// LoadOne is Load for the common single-pipeline case. It fails when the
// path holds more than one pipeline.
func LoadOne(ctx context.Context, path string) (*Definition, error) {
	defs, err := Load(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(defs) > 1 {
		return nil, fmt.Errorf("expected a single pipeline under %s, found %d", path, len(defs))
	}
	return defs[0], nil
}

func translatePipeline(block *pipelineBlock) (*Definition, error) {
	def := &Definition{
		Name:       block.Name,
		Parameters: make(map[string]map[string]any),
	}
	if block.Seed != nil {
		def.Seed = *block.Seed
	}
	for _, nb := range block.Nodes {
		if nb.Component == "" {
			return nil, fmt.Errorf("node %q has no component", nb.Name)
		}
		def.Nodes = append(def.Nodes, graph.NodeDef{
			Name:      nb.Name,
			Component: nb.Component,
			Inputs:    nb.Inputs,
		})
		if nb.Parameters.IsNull() {
			continue
		}
		params, err := ctyToNative(nb.Parameters)
		if err != nil {
			return nil, fmt.Errorf("node %q parameters: %w", nb.Name, err)
		}
		asMap, ok := params.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("node %q parameters must be an object", nb.Name)
		}
		def.Parameters[nb.Name] = asMap
	}
	return def, nil
}
