package engine

// TransitionKind selects how the runner rearranges the state stack.
type TransitionKind int

const (
	// TransitionContinue keeps the current state active.
	TransitionContinue TransitionKind = iota
	// TransitionPush suspends the current state under a new one.
	TransitionPush
	// TransitionReplace discards the whole stack and starts over with a new state.
	TransitionReplace
	// TransitionPop resumes the state below the current one.
	TransitionPop
	// TransitionQuit unwinds everything and ends the run.
	TransitionQuit
)

// Transition is a state's request to the runner. The zero value continues.
type Transition struct {
	Kind TransitionKind
	Next State // set for Push and Replace
}

// Continue keeps the current state active for another frame.
func Continue() Transition { return Transition{} }

// Push suspends the current state and activates next on top of it.
func Push(next State) Transition { return Transition{Kind: TransitionPush, Next: next} }

// Replace discards every stacked state and activates next alone.
func Replace(next State) Transition { return Transition{Kind: TransitionReplace, Next: next} }

// Pop discards the current state and resumes the one below it.
func Pop() Transition { return Transition{Kind: TransitionPop} }

// Quit ends the run.
func Quit() Transition { return Transition{Kind: TransitionQuit} }
