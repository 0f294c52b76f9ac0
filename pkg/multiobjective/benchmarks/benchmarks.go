package benchmarks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/weips/weips/pkg/multiobjective/framework"
)

// ErrUnknownProblem is returned by ForName for an unrecognised problem name.
var ErrUnknownProblem = errors.New("unknown problem")

// Names lists the problems ForName knows.
func Names() []string {
	return []string{ZDT1Name, ZDT2Name, ZDT3Name, DTLZ2Name, ConstrExName}
}

// ForName returns the benchmark called name with its customary dimensions:
// 30 variables for the ZDT family, 12 variables and 3 objectives for DTLZ2.
func ForName(name string) (framework.Problem, error) {
	switch strings.ToUpper(name) {
	case strings.ToUpper(ZDT1Name):
		return NewZDT1(30), nil
	case strings.ToUpper(ZDT2Name):
		return NewZDT2(30), nil
	case strings.ToUpper(ZDT3Name):
		return NewZDT3(30), nil
	case strings.ToUpper(DTLZ2Name):
		return NewDTLZ2(12, 3), nil
	case strings.ToUpper(ConstrExName):
		return NewConstrEx(), nil
	}
	return nil, fmt.Errorf("%w: %q, supported: %s", ErrUnknownProblem, name, strings.Join(Names(), ", "))
}
