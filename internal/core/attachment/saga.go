package attachment

import "context"

// Step is one stage of an ingestion saga. Compensate undoes the step after it
// has completed; it is only invoked when a later step fails.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Saga executes steps in order. On failure the compensations of all completed
// steps run in reverse order of completion, so the most recently created
// artifact is undone first and a half-written row is never left visible with
// a valid-looking key.
type Saga struct {
	steps []Step
}

// NewSaga builds a saga from the given steps.
func NewSaga(steps ...Step) *Saga {
	return &Saga{steps: steps}
}

// Execute runs the saga. It returns the error of the failing step; compensation
// failures are reported to onCompensateError (may be nil) and do not mask the
// original error.
func (s *Saga) Execute(ctx context.Context, onCompensateError func(step string, err error)) error {
	var completed []Step

	for _, step := range s.steps {
		if err := step.Run(ctx); err != nil {
			for i := len(completed) - 1; i >= 0; i-- {
				c := completed[i]
				if c.Compensate == nil {
					continue
				}
				if cerr := c.Compensate(ctx); cerr != nil && onCompensateError != nil {
					onCompensateError(c.Name, cerr)
				}
			}
			return err
		}
		completed = append(completed, step)
	}

	return nil
}
