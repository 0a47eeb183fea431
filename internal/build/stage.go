package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// One step of the image pipeline with explicit artifact contracts.
//
// A stage declares the paths that must exist before it runs and the single
// path that must exist after it reports success. The same execute routine
// serves all four stages, so the validate-run-validate shape cannot drift
// between them.
type stage struct {
	name    string                      // Stage name, included in failures.
	inputs  []string                    // Paths that must exist before the stage runs.
	run     func(context.Context) error // Performs the stage's work.
	output  string                      // Path that must exist after a successful run.
	failure error                       // Sentinel wrapped into every failure of this stage.
}

// Executes the stage: input check, run, output check.
//
// A missing input artifact means the sequencer is broken, not that the user
// did anything wrong; it fails immediately without running the stage. A
// missing output artifact after a successful run is also a failure, guarding
// against tools that exit zero without producing their artifact.
func (s *stage) execute(ctx context.Context) error {
	for _, input := range s.inputs {
		if _, err := os.Stat(input); err != nil {
			return fmt.Errorf("%w: stage %s: missing input artifact %s", s.failure, s.name, input)
		}
	}

	slog.Info("executing stage", "stage", s.name)

	if err := s.run(ctx); err != nil {
		return fmt.Errorf("%w: stage %s: %w", s.failure, s.name, err)
	}

	if _, err := os.Stat(s.output); err != nil {
		return fmt.Errorf("%w: stage %s: missing output artifact %s", s.failure, s.name, s.output)
	}

	slog.Debug("stage complete", "stage", s.name, "output", s.output)
	return nil
}
