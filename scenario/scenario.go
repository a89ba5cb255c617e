// Package scenario loads A* regression fixtures from YAML and runs them.
//
// A fixture file holds a list of scenarios under the "scenarios" key; a file
// may also contain several YAML documents, whose lists are concatenated.
// Each scenario is validated with struct tags before it is used:
//
//	scenarios:
//	  - name: minimal
//	    grid: [[1, 0], [1, 1]]
//	    start: [0, 0]
//	    end: [1, 1]
//	    want: [[0, 1], [1, 1]]
//
// Grid rows are y and columns x, as in gridgraph; coordinates are [x, y].
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrInvalidScenario indicates a fixture that failed decoding or validation.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")
	// ErrMismatch indicates a search returned a different path than expected.
	ErrMismatch = errors.New("scenario: path mismatch")
)

// validate is a singleton validator instance
var validate = validator.New()

// Heuristic names accepted in fixtures.
const (
	HeuristicManhattan = "manhattan"
	HeuristicDiagonal  = "diagonal"
)

// Scenario is one search with its expected path.
type Scenario struct {
	Name         string      `yaml:"name" validate:"required"`
	Diagonal     bool        `yaml:"diagonal"`
	Closest      bool        `yaml:"closest"`
	Heuristic    string      `yaml:"heuristic" validate:"omitempty,oneof=manhattan diagonal"`
	DiagonalCost float64     `yaml:"diagonal_cost" validate:"omitempty,gt=0"`
	Grid         [][]float64 `yaml:"grid" validate:"required,min=1,dive,dive,gte=0"`
	Start        [2]int      `yaml:"start" validate:"dive,gte=0"`
	End          [2]int      `yaml:"end" validate:"dive,gte=0"`
	// Want is the expected path without the start; empty means no path.
	Want [][2]int `yaml:"want"`
}

type document struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load decodes every YAML document in r and returns the scenarios in file
// order. Unknown keys, invalid fields and duplicate names are rejected with
// ErrInvalidScenario.
func Load(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []Scenario
	seen := make(map[string]struct{})
	for {
		var doc document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
		}
		for i := range doc.Scenarios {
			s := doc.Scenarios[i]
			if err = s.Validate(); err != nil {
				return nil, err
			}
			if _, dup := seen[s.Name]; dup {
				return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidScenario, s.Name)
			}
			seen[s.Name] = struct{}{}
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no scenarios", ErrInvalidScenario)
	}

	return out, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Validate checks the struct tags of s.
func (s Scenario) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidScenario, s.label(), formatValidationError(err))
	}
	return nil
}

// Build constructs the grid described by s.
func (s Scenario) Build() (*gridgraph.Grid, error) {
	opts := gridgraph.DefaultGridOptions()
	if s.Diagonal {
		opts.Conn = gridgraph.Conn8
	}
	if s.DiagonalCost != 0 {
		opts.DiagonalCost = s.DiagonalCost
	}

	return gridgraph.NewGrid(s.Grid, opts)
}

// Options translates the scenario flags into search options.
func (s Scenario) Options() []astar.Option {
	var opts []astar.Option
	switch s.Heuristic {
	case HeuristicManhattan:
		opts = append(opts, astar.WithHeuristic(astar.Manhattan))
	case HeuristicDiagonal:
		opts = append(opts, astar.WithHeuristic(astar.Diagonal))
	}
	if s.Closest {
		opts = append(opts, astar.WithClosest())
	}
	return opts
}

// Run builds a fresh grid and searches it. extra options are applied after
// the scenario's own.
func (s Scenario) Run(extra ...astar.Option) ([]*gridgraph.Node, error) {
	g, err := s.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.label(), err)
	}

	opts := append(s.Options(), extra...)
	path, err := astar.Search(g, astar.At(s.Start[0], s.Start[1]), astar.At(s.End[0], s.End[1]), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.label(), err)
	}
	return path, nil
}

// Check runs s and compares the result with Want.
func (s Scenario) Check(extra ...astar.Option) error {
	path, err := s.Run(extra...)
	if err != nil {
		return err
	}

	got := Coordinates(path)
	if !slices.Equal(got, s.Want) {
		return fmt.Errorf("%w: %s: got %v, want %v", ErrMismatch, s.label(), got, s.Want)
	}
	return nil
}

// Coordinates returns the [x, y] pair of every node in path.
func Coordinates(path []*gridgraph.Node) [][2]int {
	out := make([][2]int, len(path))
	for i, n := range path {
		out[i] = [2]int{n.X, n.Y}
	}
	return out
}

func (s Scenario) label() string {
	if s.Name == "" {
		return "scenario"
	}
	return "scenario " + s.Name
}

// formatValidationError reports the first failing field in a readable form.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	e := verrs[0]
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Errorf("%s: field is required", field)
	case "min":
		return fmt.Errorf("%s: must have at least %s element(s)", field, e.Param())
	case "gt", "gte":
		return fmt.Errorf("%s: must be %s %s, got %v", field, e.Tag(), e.Param(), e.Value())
	case "oneof":
		return fmt.Errorf("%s: must be one of [%s], got %q", field, e.Param(), e.Value())
	default:
		return fmt.Errorf("%s: failed %q validation", field, e.Tag())
	}
}
