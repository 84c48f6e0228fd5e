// File: config.go
// Role: declarative YAML suite loading.
//
// A suite file expresses a whole study — the generator × strategy grid of
// the original percolation experiments — without code:
//
//	name: robustness-study
//	experiments:
//	  - name: er-failure
//	    generator: erdos_renyi
//	    strategy: random
//	    nodes: 10000
//	    avg_degree: 4
//	    iterations: 50
//	    seed: 1
//	  - name: ba-attack
//	    generator: barabasi_albert
//	    strategy: targeted
//	    ...
//
// Loading reads the file once, resolves kinds, and validates every entry
// up front; no graphs or results are ever persisted.
package experiment

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/percolate/attack"
	"github.com/katalvlaran/percolate/builder"
)

// ErrEmptySuite indicates a suite file declaring no experiments.
var ErrEmptySuite = errors.New("experiment: suite has no experiments")

// Definition is one named experiment entry of a suite file.
type Definition struct {
	Name       string    `yaml:"name"`
	Generator  string    `yaml:"generator"`
	Strategy   string    `yaml:"strategy"`
	Nodes      int       `yaml:"nodes"`
	AvgDegree  float64   `yaml:"avg_degree"`
	Fractions  []float64 `yaml:"fractions"`
	Iterations int       `yaml:"iterations"`
	Seed       int64     `yaml:"seed"`
	Workers    int       `yaml:"workers"`
}

// Config resolves the definition into a validated Config.
// Kind and parameter failures wrap ErrInvalidConfig.
func (d Definition) Config() (Config, error) {
	gen, err := builder.ParseKind(d.Generator)
	if err != nil {
		return Config{}, fmt.Errorf("%w: experiment %q: %v", ErrInvalidConfig, d.Name, err)
	}
	strat, err := attack.ParseKind(d.Strategy)
	if err != nil {
		return Config{}, fmt.Errorf("%w: experiment %q: %v", ErrInvalidConfig, d.Name, err)
	}
	cfg := Config{
		Generator:  gen,
		Strategy:   strat,
		Nodes:      d.Nodes,
		AvgDegree:  d.AvgDegree,
		Fractions:  d.Fractions,
		Iterations: d.Iterations,
		Seed:       d.Seed,
		Workers:    d.Workers,
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("experiment %q: %w", d.Name, err)
	}

	return cfg, nil
}

// Suite is a named collection of experiment definitions.
type Suite struct {
	Name        string       `yaml:"name"`
	Experiments []Definition `yaml:"experiments"`
}

// LoadSuite reads and validates a YAML suite file. Every definition must
// resolve to a valid Config; the first failure aborts the load.
func LoadSuite(path string) (*Suite, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadSuite: %w", err)
	}
	var s Suite
	if err = yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("LoadSuite: %w", err)
	}
	if len(s.Experiments) == 0 {
		return nil, fmt.Errorf("LoadSuite(%s): %w", path, ErrEmptySuite)
	}
	for _, d := range s.Experiments {
		if _, err = d.Config(); err != nil {
			return nil, fmt.Errorf("LoadSuite(%s): %w", path, err)
		}
	}

	return &s, nil
}
