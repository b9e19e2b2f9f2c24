package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/pipegridgo/internal/ctxlog"
	"github.com/vk/pipegridgo/internal/dataset"
	"github.com/vk/pipegridgo/internal/graph"
	"github.com/vk/pipegridgo/internal/hclspec"
)

// Run executes the main application logic based on the provided
// configuration: load the pipeline definition, build and instantiate the
// component graph, then describe it, render it, or fit and predict on the
// given data.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	def, err := hclspec.LoadOne(ctx, a.config.PipelinePath)
	if err != nil {
		return fmt.Errorf("failed to load pipeline definition: %w", err)
	}
	a.logger.Info("Pipeline definition loaded.", "pipeline", def.Name, "nodes", len(def.Nodes))

	g, err := graph.New(ctx, a.registry, def.Nodes, graph.WithSeed(def.Seed))
	if err != nil {
		return fmt.Errorf("failed to build component graph: %w", err)
	}
	if err := g.Instantiate(ctx, def.Parameters); err != nil {
		return err
	}
	a.logger.Debug("Component graph instantiated.")

	if a.config.Dot {
		return g.WriteDOT(a.outW, def.Name)
	}
	if a.config.Describe {
		return a.describe(g)
	}
	return a.fitAndPredict(ctx, g)
}

func (a *App) describe(g *graph.Graph) error {
	for i, node := range g.Describe() {
		fmt.Fprintf(a.outW, "%d. %s (%s, %s)\n", i+1, node.Name, node.Component, node.Kind)
		keys := make([]string, 0, len(node.Parameters))
		for k := range node.Parameters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(a.outW, "\t* %s : %v\n", k, node.Parameters[k])
		}
	}
	return nil
}

func (a *App) fitAndPredict(ctx context.Context, g *graph.Graph) error {
	ds, err := dataset.Load(ctx, a.config.DataPath, a.config.Target)
	if err != nil {
		return err
	}

	a.logger.Info("Fitting pipeline.", "rows", ds.X.NumRows(), "columns", ds.X.NumCols())
	if err := g.Fit(ctx, ds.X, ds.Y); err != nil {
		return fmt.Errorf("fit failed: %w", err)
	}

	preds, err := g.Predict(ctx, ds.X)
	if err != nil {
		return fmt.Errorf("predict failed: %w", err)
	}
	a.logger.Info("Prediction complete.", "rows", preds.NumRows())

	names := preds.Names()
	fmt.Fprintln(a.outW, strings.Join(names, ","))
	for row := 0; row < preds.NumRows(); row++ {
		fields := make([]string, len(names))
		for i, name := range names {
			col, _ := preds.Column(name)
			if col.Type().Numeric() {
				fields[i] = fmt.Sprintf("%v", col.Floats()[row])
			} else {
				fields[i] = col.Strings()[row]
			}
		}
		fmt.Fprintln(a.outW, strings.Join(fields, ","))
	}
	return nil
}
