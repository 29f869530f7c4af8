package interpreter

import (
	"github.com/pkg/errors"

	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/errs"
	"github.com/ctrlflow/interp/ir"
)

// whileState is the While FSM: Start (re-)evaluates the condition, Body
// steps the loop body, Done holds the final environment once the
// condition reads false.
type whileState struct {
	phase string // "start", "body", "done"
	cond  *EnableInterpreter
	env   *environment.InterpreterState
	body  *ControlInterpreter
	done  *environment.InterpreterState
}

// WhileInterpreter re-evaluates Port (after converging CondGroup, if any)
// before every iteration of Body, stopping the first time it reads false
// (SPEC_FULL.md §4.7).
type WhileInterpreter struct {
	wh   *ir.While
	info ComponentInfo
	st   whileState
}

func NewWhileInterpreter(wh *ir.While, env *environment.InterpreterState, info ComponentInfo) (*WhileInterpreter, error) {
	w := &WhileInterpreter{wh: wh, info: info}
	if err := w.startCondition(env); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *WhileInterpreter) startCondition(env *environment.InterpreterState) error {
	if w.wh.CondGroup != nil {
		cond, err := NewEnableInterpreter(ir.FromCombGroup(w.wh.CondGroup), w.wh.CondGroup.Name, true, env, w.info.Continuous, w.info.QIN)
		if err != nil {
			return err
		}
		w.st = whileState{phase: "start", cond: cond}
		return nil
	}
	w.st = whileState{phase: "start", env: env}
	return nil
}

// enterFromCondValue builds a body child and steps it once before
// transitioning to Body, matching the Start→Body transition (SPEC_FULL.md
// §4.7: "build a body child, step once").
func (w *WhileInterpreter) enterFromCondValue(taken bool, env *environment.InterpreterState) error {
	if !taken {
		w.st = whileState{phase: "done", done: env}
		return nil
	}
	body, err := NewControlInterpreter(w.wh.Body, env, w.info)
	if err != nil {
		return err
	}
	if err := body.Step(); err != nil {
		return err
	}
	w.st = whileState{phase: "body", body: body}
	return nil
}

func (w *WhileInterpreter) Step() error {
	switch w.st.phase {
	case "start":
		if w.st.cond != nil {
			if err := w.st.cond.Converge(); err != nil {
				return err
			}
			taken := w.st.cond.Get(w.wh.Port).AsBool()
			env, err := w.st.cond.Deconstruct()
			if err != nil {
				return err
			}
			return w.enterFromCondValue(taken, env)
		}
		return w.enterFromCondValue(envGet(w.st.env, w.wh.Port), w.st.env)
	case "body":
		if !w.st.body.IsDone() {
			return w.st.body.Step()
		}
		env, err := w.st.body.Deconstruct()
		if err != nil {
			return err
		}
		return w.startCondition(env)
	default:
		return nil
	}
}

func (w *WhileInterpreter) IsDone() bool { return w.st.phase == "done" }

func (w *WhileInterpreter) Deconstruct() (*environment.InterpreterState, error) {
	if w.st.phase != "done" {
		return nil, errors.WithStack(&errs.InvalidWhileStateError{State: w.st.phase})
	}
	return w.st.done, nil
}

func (w *WhileInterpreter) Run() error {
	for w.st.phase != "done" {
		if err := w.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (w *WhileInterpreter) Converge() error {
	switch w.st.phase {
	case "start":
		if w.st.cond != nil {
			return w.st.cond.Converge()
		}
		return nil
	case "body":
		return w.st.body.Converge()
	default:
		return nil
	}
}

func (w *WhileInterpreter) GetEnv() environment.StateView {
	switch w.st.phase {
	case "start":
		if w.st.cond != nil {
			return w.st.cond.GetEnv()
		}
		return w.st.env
	case "body":
		return w.st.body.GetEnv()
	default:
		return w.st.done
	}
}

func (w *WhileInterpreter) GetEnvMut() environment.MutStateView {
	switch w.st.phase {
	case "start":
		if w.st.cond != nil {
			return w.st.cond.GetEnvMut()
		}
		return w.st.env
	case "body":
		return w.st.body.GetEnvMut()
	default:
		return w.st.done
	}
}

func (w *WhileInterpreter) CurrentlyExecutingGroup() map[debugger.GroupQIN]struct{} {
	switch w.st.phase {
	case "start":
		if w.st.cond != nil {
			return w.st.cond.CurrentlyExecutingGroup()
		}
	case "body":
		return w.st.body.CurrentlyExecutingGroup()
	}
	return noGroups()
}

func (w *WhileInterpreter) GetActiveTree() []debugger.ActiveTreeNode {
	switch w.st.phase {
	case "start":
		if w.st.cond != nil {
			return w.st.cond.GetActiveTree()
		}
	case "body":
		return w.st.body.GetActiveTree()
	}
	return nil
}
