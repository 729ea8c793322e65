package project

import (
	"context"
	"fmt"
	"slices"

	"github.com/looplab/fsm"
)

// State is a pipeline state.
type State string

// Pipeline states. Transitions only move forward; failed is terminal.
const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateDeriving   State = "deriving"
	StateResolving  State = "resolving"
	StateExpanding  State = "expanding"
	StatePlanned    State = "planned"
	StateFailed     State = "failed"
)

// Pipeline events.
const (
	eventValidate = "validate"
	eventDerive   = "derive"
	eventResolve  = "resolve"
	eventExpand   = "expand"
	eventFinish   = "finish"
	eventFail     = "fail"
)

// pipelineRun tracks one invocation of the pipeline.
type pipelineRun struct {
	fsm      *fsm.FSM
	history  []State
	reporter Reporter
}

func newPipelineRun(reporter Reporter) *pipelineRun {
	run := &pipelineRun{reporter: reporter}
	run.fsm = fsm.NewFSM(
		string(StateIdle),
		fsm.Events{
			{Name: eventValidate, Src: []string{string(StateIdle)}, Dst: string(StateValidating)},
			{Name: eventDerive, Src: []string{string(StateValidating)}, Dst: string(StateDeriving)},
			{Name: eventResolve, Src: []string{string(StateDeriving)}, Dst: string(StateResolving)},
			{Name: eventExpand, Src: []string{string(StateResolving)}, Dst: string(StateExpanding)},
			{Name: eventFinish, Src: []string{string(StateExpanding)}, Dst: string(StatePlanned)},
			{Name: eventFail, Src: []string{
				string(StateValidating),
				string(StateDeriving),
				string(StateResolving),
				string(StateExpanding),
			}, Dst: string(StateFailed)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				to := State(e.Dst)
				run.history = append(run.history, to)
				run.reporter.StateChanged(State(e.Src), to)
			},
		},
	)
	return run
}

// advance fires event and wraps transition failures in ErrPipeline.
// A canceled ctx stops the run before the transition.
func (r *pipelineRun) advance(ctx context.Context, event string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPipeline, event, err)
	}
	if err := r.fsm.Event(context.WithoutCancel(ctx), event); err != nil {
		return fmt.Errorf("%w: %s from %s: %w", ErrPipeline, event, r.fsm.Current(), err)
	}
	return nil
}

// fail moves the run to StateFailed. It is a no-op when already terminal.
func (r *pipelineRun) fail(ctx context.Context) {
	if r.fsm.Can(eventFail) {
		_ = r.fsm.Event(context.WithoutCancel(ctx), eventFail)
	}
}

func (r *pipelineRun) current() State {
	return State(r.fsm.Current())
}

func (r *pipelineRun) states() []State {
	return slices.Clone(r.history)
}
