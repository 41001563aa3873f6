package engine

// Runner owns the state stack and the frame loop. Everything runs on the
// caller's goroutine; frame pacing happens inside the states' WaitFrame
// calls, so the loop itself never sleeps.
type Runner struct {
	con   Console
	stack []State
}

// NewRunner creates a runner that drives states against con.
func NewRunner(con Console) *Runner {
	return &Runner{con: con}
}

// Run drives initial, and whatever it transitions to, until a state quits
// or the stack empties. Setup is called exactly once each time a state
// becomes newly active through Push or Replace.
func (r *Runner) Run(initial State) {
	r.push(initial)
	for len(r.stack) > 0 {
		top := r.stack[len(r.stack)-1]
		t := top.Update(r.con)
		switch t.Kind {
		case TransitionContinue:
		case TransitionPush:
			r.push(t.Next)
		case TransitionReplace:
			r.stack = r.stack[:0]
			r.push(t.Next)
		case TransitionPop:
			r.stack = r.stack[:len(r.stack)-1]
		case TransitionQuit:
			return
		}
		if len(r.stack) == 0 {
			return
		}
		r.stack[len(r.stack)-1].Render(r.con)
	}
}

func (r *Runner) push(s State) {
	r.stack = append(r.stack, s)
	s.Setup(r.con)
}
