package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/aiready/aiready/internal/model"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, analysis *model.Analysis) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, analysis *model.Analysis) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, analysis)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()

		if p == nil {
			t.Fatal("expected non-nil pipeline")
		}
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
	})

	t.Run("applies WithContinueOnError option", func(t *testing.T) {
		t.Parallel()

		p := New(WithContinueOnError(true))

		if !p.continueOnError {
			t.Error("expected continueOnError to be true")
		}
	})
}

// TestPipelineAddStep tests adding steps to the pipeline.
func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	t.Run("adds single step", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "test-step"})

		if p.StepCount() != 1 {
			t.Errorf("expected 1 step, got %d", p.StepCount())
		}
	})

	t.Run("maintains step order", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(
			&mockStep{name: "first"},
			&mockStep{name: "second"},
			&mockStep{name: "third"},
		)

		names := p.StepNames()

		expected := []string{"first", "second", "third"}
		for i, name := range names {
			if name != expected[i] {
				t.Errorf("step %d: got %q, expected %q", i, name, expected[i])
			}
		}
	})
}

// TestPipelineExecute tests pipeline execution.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes all steps in order", func(t *testing.T) {
		t.Parallel()

		executionOrder := make([]string, 0)

		p := New()
		for _, name := range []string{"step-1", "step-2", "step-3"} {
			p.AddStep(&mockStep{
				name: name,
				doFunc: func(_ context.Context, _ *model.Analysis) error {
					executionOrder = append(executionOrder, name)
					return nil
				},
			})
		}

		analysis := model.NewAnalysis("https://example.com/", "<html></html>", nil)
		if err := p.Execute(context.Background(), analysis); err != nil {
			t.Fatalf("got %v, expected no error", err)
		}

		expected := []string{"step-1", "step-2", "step-3"}
		if len(executionOrder) != len(expected) {
			t.Fatalf("got %d executions, expected %d", len(executionOrder), len(expected))
		}
		for i, name := range expected {
			if executionOrder[i] != name {
				t.Errorf("execution %d: got %q, expected %q", i, executionOrder[i], name)
			}
		}
	})

	t.Run("records executed steps on the analysis", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(&mockStep{name: "alpha"}, &mockStep{name: "beta"})

		analysis := model.NewAnalysis("https://example.com/", "", nil)
		if err := p.Execute(context.Background(), analysis); err != nil {
			t.Fatalf("got %v, expected no error", err)
		}

		if len(analysis.Steps) != 2 || analysis.Steps[0] != "alpha" || analysis.Steps[1] != "beta" {
			t.Errorf("got %v, expected [alpha beta]", analysis.Steps)
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		stepErr := errors.New("step broke")
		second := &mockStep{name: "second"}

		p := New()
		p.AddStep(&mockStep{
			name: "first",
			doFunc: func(_ context.Context, _ *model.Analysis) error {
				return stepErr
			},
		})
		p.AddStep(second)

		analysis := model.NewAnalysis("https://example.com/", "", nil)
		err := p.Execute(context.Background(), analysis)

		if !errors.Is(err, stepErr) {
			t.Errorf("got %v, expected the step error", err)
		}
		if second.callCount != 0 {
			t.Error("expected the second step to be skipped")
		}
		if analysis.Error == "" {
			t.Error("expected the error recorded on the analysis")
		}
	})

	t.Run("continues past errors when configured", func(t *testing.T) {
		t.Parallel()

		second := &mockStep{name: "second"}

		p := New(WithContinueOnError(true))
		p.AddStep(&mockStep{
			name: "first",
			doFunc: func(_ context.Context, _ *model.Analysis) error {
				return errors.New("step broke")
			},
		})
		p.AddStep(second)

		analysis := model.NewAnalysis("https://example.com/", "", nil)
		if err := p.Execute(context.Background(), analysis); err != nil {
			t.Fatalf("got %v, expected no error with continueOnError", err)
		}

		if second.callCount != 1 {
			t.Error("expected the second step to run")
		}
		if analysis.Error != "step broke" {
			t.Errorf("got %q, expected the first error retained", analysis.Error)
		}
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		step := &mockStep{name: "never-runs"}
		p := New()
		p.AddStep(step)

		analysis := model.NewAnalysis("https://example.com/", "", nil)
		err := p.Execute(ctx, analysis)

		if !errors.Is(err, context.Canceled) {
			t.Errorf("got %v, expected context.Canceled", err)
		}
		if step.callCount != 0 {
			t.Error("expected no steps to run after cancellation")
		}
	})
}
