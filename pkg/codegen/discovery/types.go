package discovery

import (
	"context"

	"github.com/cubeengine/plugingen/pkg/codegen"
)

// Annotation names recognised on Java sources. Qualified references are
// accepted with AnnotationPackage as prefix.
const (
	AnnotationPackage    = "org.cubeengine.processor."
	AnnotationCore       = "Core"
	AnnotationModule     = "Module"
	AnnotationDependency = "Dependency"
)

// Discoverer finds the annotated declarations of one compilation unit
type Discoverer interface {
	Discover(ctx context.Context) (*codegen.Round, error)
}

// Multi runs discoverers in order and merges their rounds
type Multi []Discoverer

// Discover implements Discoverer
func (m Multi) Discover(ctx context.Context) (*codegen.Round, error) {
	rounds := make([]*codegen.Round, 0, len(m))
	for _, d := range m {
		round, err := d.Discover(ctx)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, round)
	}
	return codegen.MergeRounds(rounds...), nil
}

// Merge concatenates rounds in order
func Merge(rounds ...*codegen.Round) *codegen.Round {
	return codegen.MergeRounds(rounds...)
}
