// Package sagas provides multi-step flows with compensation. A saga runs
// its steps in order; when one fails, the compensations of the already
// completed steps run in reverse so no partial state survives.
package sagas

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"mindflow-backend/domain/core/valueobjects"
)

// Step is a single unit of a saga. Compensate is optional; steps without
// side effects leave it nil.
type Step struct {
	Name       string
	Execute    func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// State tracks a saga execution.
type State string

const (
	StatePending     State = "PENDING"
	StateRunning     State = "RUNNING"
	StateCompleted   State = "COMPLETED"
	StateCompensated State = "COMPENSATED"
	StateFailed      State = "FAILED"
)

// Saga orchestrates a series of steps with compensation logic.
type Saga struct {
	id     string
	name   string
	steps  []Step
	state  State
	logger *zap.Logger
}

// New creates a saga instance.
func New(name string, logger *zap.Logger) *Saga {
	return &Saga{
		id:     valueobjects.NewEventID(),
		name:   name,
		state:  StatePending,
		logger: logger,
	}
}

// AddStep appends a step.
func (s *Saga) AddStep(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// State returns the saga's current state.
func (s *Saga) State() State {
	return s.state
}

// Execute runs the steps in order. On failure it compensates completed
// steps in reverse order and returns the original error.
func (s *Saga) Execute(ctx context.Context) error {
	s.state = StateRunning
	s.logger.Debug("starting saga",
		zap.String("saga_id", s.id),
		zap.String("saga", s.name),
		zap.Int("steps", len(s.steps)))

	for i, step := range s.steps {
		if err := step.Execute(ctx); err != nil {
			s.logger.Warn("saga step failed",
				zap.String("saga_id", s.id),
				zap.String("step", step.Name),
				zap.Error(err))

			if compErr := s.compensate(ctx, i); compErr != nil {
				s.state = StateFailed
				return fmt.Errorf("saga %s failed at step %s and compensation failed: %w", s.name, step.Name, err)
			}

			s.state = StateCompensated
			return fmt.Errorf("saga %s failed at step %s: %w", s.name, step.Name, err)
		}
	}

	s.state = StateCompleted
	return nil
}

func (s *Saga) compensate(ctx context.Context, failedStep int) error {
	var firstErr error
	for i := failedStep - 1; i >= 0; i-- {
		step := s.steps[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			s.logger.Error("saga compensation failed",
				zap.String("saga_id", s.id),
				zap.String("step", step.Name),
				zap.Error(err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
