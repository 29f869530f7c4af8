package interpreter

import (
	"github.com/pkg/errors"

	"github.com/ctrlflow/interp/debugger"
	"github.com/ctrlflow/interp/environment"
	"github.com/ctrlflow/interp/errs"
	"github.com/ctrlflow/interp/ir"
)

// ifState is the If FSM: Start evaluates the condition (converging a
// cond_group if present), Body runs the selected branch, Done holds the
// final environment.
type ifState struct {
	phase string // "start", "body", "done"
	cond  *EnableInterpreter
	env   *environment.InterpreterState
	body  *ControlInterpreter
	done  *environment.InterpreterState
}

// IfInterpreter evaluates Port (after converging CondGroup, if any) and
// steps TBranch or FBranch (SPEC_FULL.md §4.6).
type IfInterpreter struct {
	ifc  *ir.If
	info ComponentInfo
	st   ifState
}

func NewIfInterpreter(ifc *ir.If, env *environment.InterpreterState, info ComponentInfo) (*IfInterpreter, error) {
	i := &IfInterpreter{ifc: ifc, info: info}
	if err := i.startCondition(env); err != nil {
		return nil, err
	}
	return i, nil
}

// startCondition enters the Start phase: a CondGroup is wrapped in an
// EnableInterpreter just like a named group, reporting its own name while
// it converges (SPEC_FULL.md §9), so a debugger observing the active tree
// during condition evaluation sees the comb group.
func (i *IfInterpreter) startCondition(env *environment.InterpreterState) error {
	if i.ifc.CondGroup != nil {
		cond, err := NewEnableInterpreter(ir.FromCombGroup(i.ifc.CondGroup), i.ifc.CondGroup.Name, true, env, i.info.Continuous, i.info.QIN)
		if err != nil {
			return err
		}
		i.st = ifState{phase: "start", cond: cond}
		return nil
	}
	i.st = ifState{phase: "start", env: env}
	return nil
}

func (i *IfInterpreter) enterBody(env *environment.InterpreterState) error {
	port := i.ifc.Port
	var branch *ir.Control
	if envGet(env, port) {
		branch = i.ifc.TBranch
	} else {
		branch = i.ifc.FBranch
	}
	return i.enterBranch(branch, env)
}

// enterBranch builds a child interpreter for the selected branch and steps
// it once before transitioning to Body, matching the Start→Body transition
// for both the cond_group and bare-port condition paths (SPEC_FULL.md §4.6).
func (i *IfInterpreter) enterBranch(branch *ir.Control, env *environment.InterpreterState) error {
	if branch == nil {
		i.st = ifState{phase: "done", done: env}
		return nil
	}
	body, err := NewControlInterpreter(branch, env, i.info)
	if err != nil {
		return err
	}
	if err := body.Step(); err != nil {
		return err
	}
	i.st = ifState{phase: "body", body: body}
	return nil
}

func envGet(env *environment.InterpreterState, p *ir.Port) bool {
	v, _ := env.Get(p)
	return v.AsBool()
}

func (i *IfInterpreter) Step() error {
	switch i.st.phase {
	case "start":
		if i.st.cond != nil {
			if err := i.st.cond.Converge(); err != nil {
				return err
			}
			cv := i.st.cond.Get(i.ifc.Port)
			env, err := i.st.cond.Deconstruct()
			if err != nil {
				return err
			}
			var branch *ir.Control
			if cv.AsBool() {
				branch = i.ifc.TBranch
			} else {
				branch = i.ifc.FBranch
			}
			return i.enterBranch(branch, env)
		}
		return i.enterBody(i.st.env)
	case "body":
		if !i.st.body.IsDone() {
			return i.st.body.Step()
		}
		env, err := i.st.body.Deconstruct()
		if err != nil {
			return err
		}
		i.st = ifState{phase: "done", done: env}
		return nil
	default:
		return nil
	}
}

func (i *IfInterpreter) IsDone() bool { return i.st.phase == "done" }

func (i *IfInterpreter) Deconstruct() (*environment.InterpreterState, error) {
	if i.st.phase != "done" {
		return nil, errors.WithStack(&errs.InvalidIfStateError{State: i.st.phase})
	}
	return i.st.done, nil
}

func (i *IfInterpreter) Run() error {
	for i.st.phase != "done" {
		if err := i.Step(); err != nil {
			return err
		}
	}
	return nil
}

func (i *IfInterpreter) Converge() error {
	env := i.st.done
	switch i.st.phase {
	case "start":
		if i.st.cond != nil {
			return i.st.cond.Converge()
		}
		env = i.st.env
	case "body":
		return i.st.body.Converge()
	}
	wrapper, err := NewEnableInterpreter(ir.EnableHolder{Kind: ir.HolderCombGroup}, "", false, env, i.info.Continuous, i.info.QIN)
	if err != nil {
		return err
	}
	return wrapper.Converge()
}

func (i *IfInterpreter) GetEnv() environment.StateView {
	switch i.st.phase {
	case "start":
		if i.st.cond != nil {
			return i.st.cond.GetEnv()
		}
		return i.st.env
	case "body":
		return i.st.body.GetEnv()
	default:
		return i.st.done
	}
}

func (i *IfInterpreter) GetEnvMut() environment.MutStateView {
	switch i.st.phase {
	case "start":
		if i.st.cond != nil {
			return i.st.cond.GetEnvMut()
		}
		return i.st.env
	case "body":
		return i.st.body.GetEnvMut()
	default:
		return i.st.done
	}
}

func (i *IfInterpreter) CurrentlyExecutingGroup() map[debugger.GroupQIN]struct{} {
	switch i.st.phase {
	case "start":
		if i.st.cond != nil {
			return i.st.cond.CurrentlyExecutingGroup()
		}
	case "body":
		return i.st.body.CurrentlyExecutingGroup()
	}
	return noGroups()
}

func (i *IfInterpreter) GetActiveTree() []debugger.ActiveTreeNode {
	switch i.st.phase {
	case "start":
		if i.st.cond != nil {
			return i.st.cond.GetActiveTree()
		}
	case "body":
		return i.st.body.GetActiveTree()
	}
	return nil
}
