// Package config loads solver and generator parameters from a YAML file,
// following the viper + yaml.v3 two-pass pattern in
// github.com/niceyeti/tabular's reinforcement.FromYaml: viper decodes the
// file into a Root, then yaml.v3 re-marshals/unmarshals that into a fresh
// Root.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// SolverConfig holds the knobs spec.md §4.4 and §4.6 leave caller-tunable:
// which search strategy and heuristic to run, the node budget, and the
// deadlock table/mode to consult.
type SolverConfig struct {
	// Strategy selects the solver: "bfs", "dfs", "greedy" or "astar".
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
	// Heuristic selects the estimator for greedy/astar: "none",
	// "remainingBoxes", "manhattan", "minMatching", or "manhattan+deadlock"
	// / "minMatching+deadlock" to pointwise-max in the deadlock heuristic.
	Heuristic string `mapstructure:"heuristic" yaml:"heuristic"`
	// MaxNodes bounds the visited set; 0 means search.DefaultMaxNodes.
	MaxNodes int `mapstructure:"maxNodes" yaml:"maxNodes"`
	// Seed, if non-zero, seeds BFS/DFS neighbor shuffling deterministically.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
	// DeadlockTablePath, if set, is loaded and consulted by the Deadlock
	// heuristic and matcher.
	DeadlockTablePath string `mapstructure:"deadlockTablePath" yaml:"deadlockTablePath"`
	// DeadlockMode is "dynamic", "static" or "unmodified" (deadlock.Mode).
	DeadlockMode string `mapstructure:"deadlockMode" yaml:"deadlockMode"`
}

// GeneratorConfig holds basisgen.Config's fields, reshaped for YAML.
type GeneratorConfig struct {
	MaxRows  int    `mapstructure:"maxRows" yaml:"maxRows"`
	MaxCols  int    `mapstructure:"maxCols" yaml:"maxCols"`
	MaxBoxes int    `mapstructure:"maxBoxes" yaml:"maxBoxes"`
	// Mode is "dynamic" or "static" (deadlock.Mode), selecting which of
	// generate_dynamic_deadlock_basis / generate_static_deadlock_basis
	// basisgen.Generate runs.
	Mode               string `mapstructure:"mode" yaml:"mode"`
	GreedyBudget       int    `mapstructure:"greedyBudget" yaml:"greedyBudget"`
	AStarBudget        int    `mapstructure:"astarBudget" yaml:"astarBudget"`
	StaticGreedyBudget int    `mapstructure:"staticGreedyBudget" yaml:"staticGreedyBudget"`
	StaticAStarBudget  int    `mapstructure:"staticAstarBudget" yaml:"staticAstarBudget"`
	BasisPath          string `mapstructure:"basisPath" yaml:"basisPath"`
	TablePath          string `mapstructure:"tablePath" yaml:"tablePath"`
}

// Root is the top-level document a single config.yaml holds, one section
// per command - mirroring OuterConfig/kind-def split in the teacher, but
// flattened since both of our sections are always present together rather
// than alternatives of a tagged union.
type Root struct {
	Solver    SolverConfig    `mapstructure:"solver" yaml:"solver"`
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator"`
}

// FromYaml loads path via a fresh viper instance (never the package-level
// singleton, so concurrent callers loading different config files never
// clobber each other's state) and re-marshals the result into Root.
func FromYaml(path string) (*Root, error) {
	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")
	vp.AddConfigPath(filepath.Dir(path))
	if err := vp.ReadInConfig(); err != nil {
		return nil, err
	}

	raw := &Root{}
	if err := vp.Unmarshal(raw); err != nil {
		return nil, err
	}

	spec, err := yaml.Marshal(raw)
	if err != nil {
		return nil, err
	}

	out := &Root{}
	if err := yaml.Unmarshal(spec, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Default returns the configuration cmd/sokobansolve falls back to when no
// -config flag is given.
func Default() *Root {
	return &Root{
		Solver: SolverConfig{
			Strategy:     "astar",
			Heuristic:    "minMatching+deadlock",
			MaxNodes:     1_000_000,
			DeadlockMode: "dynamic",
		},
		Generator: GeneratorConfig{
			MaxRows:            4,
			MaxCols:            4,
			MaxBoxes:           4,
			Mode:               "dynamic",
			GreedyBudget:       10_000,
			AStarBudget:        100_000,
			StaticGreedyBudget: 1_000,
			StaticAStarBudget:  10_000,
		},
	}
}
