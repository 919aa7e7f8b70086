package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kilianp07/causalkit/app"
	"github.com/kilianp07/causalkit/config"
	"github.com/kilianp07/causalkit/core/dataset"
	"github.com/kilianp07/causalkit/core/deepiv"
	"github.com/kilianp07/causalkit/core/estimator"
	"github.com/kilianp07/causalkit/infra/blueprint"
	"github.com/kilianp07/causalkit/infra/logger"
	"github.com/kilianp07/causalkit/infra/metrics"
)

var skipFit bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the configured estimator and print its description",
	RunE:  build,
}

func init() {
	buildCmd.Flags().BoolVar(&skipFit, "no-fit", false, "do not bind the estimator to the dataset roles")
	rootCmd.AddCommand(buildCmd)
}

type buildOutput struct {
	ID        string `json:"id"`
	Method    string `json:"method"`
	Factory   string `json:"factory"`
	Task      string `json:"task"`
	Estimator any    `json:"estimator"`
}

func build(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logg := logger.New("build-command")

	data, err := dataset.LoadCSV(cfg.Dataset.Path)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}
	svc, err := app.NewFromConfig(cfg, logg)
	if err != nil {
		return err
	}
	res, err := svc.BuildFromConfig(cfg.Estimator, data)
	if err != nil {
		return err
	}
	if !skipFit {
		roles := estimator.Roles{
			Outcome:    []string{cfg.Estimator.Outcome},
			Treatment:  cfg.Estimator.Treatment,
			Adjustment: cfg.Estimator.Adjustment,
			Covariate:  cfg.Estimator.Covariate,
			Instrument: cfg.Estimator.Instrument,
		}
		if err := res.Estimator.Fit(data, roles); err != nil {
			return fmt.Errorf("fit: %w", err)
		}
	}

	out := buildOutput{
		ID:        res.ID,
		Method:    res.Method,
		Factory:   res.Factory,
		Task:      string(res.Task),
		Estimator: describe(res.Estimator),
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	if cfg.Metrics.Textfile != "" {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, nil); err != nil {
			logg.Errorf("write metrics: %v", err)
		}
	}
	return nil
}

// describe returns a JSON friendly view of an estimator.
func describe(est estimator.Estimator) any {
	switch e := est.(type) {
	case *blueprint.Blueprint:
		return e
	case *deepiv.Adapter:
		if n, ok := e.Network().(*blueprint.Network); ok {
			return &n.Blueprint
		}
	}
	return fmt.Sprintf("%T", est)
}
