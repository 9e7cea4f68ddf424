// Package config holds the problem instance an external collaborator
// supplies to the simulation: boundary/interior values and the pure
// cell-transition function, plus the validation that bootstrap runs
// against them before any node goroutine is spawned.
package config

import (
	"fmt"

	"github.com/BasicAcid/meshrelax/internal/subgrid"
)

// DefaultRelaxationStepsPerOutput is the number of relaxation steps a
// node performs between successive snapshot emissions when the caller
// does not override it.
const DefaultRelaxationStepsPerOutput = 1

// InitialValues describes the four boundary values and the interior
// initial value used to seed every node's subgrid (spec §4.2).
type InitialValues[V any] struct {
	North    V
	South    V
	East     V
	West     V
	Interior V
}

// Config is the application descriptor bootstrap consumes (spec §6).
type Config[V any] struct {
	Q                        int
	M                        int
	Initial                  InitialValues[V]
	Transition               subgrid.Transition[V]
	RelaxationStepsPerOutput int
}

// InvalidConfiguration reports a programmer error caught at bootstrap:
// an invalid mesh dimension or a transition function that reads outside
// its declared neighborhood (spec §7).
type InvalidConfiguration struct {
	Reason string
}

func (e *InvalidConfiguration) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// Validate checks the structural invariants spec §3.2 and §7 require:
// m even and positive, q positive, a transition function, and a sane
// output cadence. It does not invoke Transition; see CheckNeighborhood
// for that.
func (c Config[V]) Validate() error {
	if c.Q <= 0 {
		return &InvalidConfiguration{Reason: fmt.Sprintf("q must be positive, got %d", c.Q)}
	}
	if c.M <= 0 {
		return &InvalidConfiguration{Reason: fmt.Sprintf("m must be positive, got %d", c.M)}
	}
	if c.M%2 != 0 {
		return &InvalidConfiguration{Reason: fmt.Sprintf("m must be even, got %d", c.M)}
	}
	if c.Transition == nil {
		return &InvalidConfiguration{Reason: "transition function is required"}
	}
	if c.RelaxationStepsPerOutput < 0 {
		return &InvalidConfiguration{Reason: fmt.Sprintf("relaxation steps per output must be >= 0, got %d", c.RelaxationStepsPerOutput)}
	}
	return nil
}

// StepsPerOutput returns RelaxationStepsPerOutput, defaulting to
// DefaultRelaxationStepsPerOutput when unset (zero value).
func (c Config[V]) StepsPerOutput() int {
	if c.RelaxationStepsPerOutput == 0 {
		return DefaultRelaxationStepsPerOutput
	}
	return c.RelaxationStepsPerOutput
}

// N returns the global grid dimension n = q*m.
func (c Config[V]) N() int { return c.Q * c.M }

// CellInit builds the global cell-initializer function spec §4.2
// describes: the configured boundary value on the n+1-padded border,
// the interior initial value everywhere else.
func (c Config[V]) CellInit() subgrid.CellInit[V] {
	n := c.N()
	return func(globalI, globalJ int) V {
		switch {
		case globalI == 0:
			return c.Initial.North
		case globalI == n+1:
			return c.Initial.South
		case globalJ == 0:
			return c.Initial.West
		case globalJ == n+1:
			return c.Initial.East
		default:
			return c.Initial.Interior
		}
	}
}
