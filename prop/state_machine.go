package prop

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/burntcheck/propcheck/gen"
)

// Command describes one action a state machine under test can take. The
// command's own Generator produces the abstract command values (C); Execute
// applies one to a concrete state; Precondition gates whether a given state
// accepts the command; Postcondition checks the transition once applied.
type Command[S, C any] struct {
	Name          string
	Generator     gen.Generator[C]
	Execute       func(state S, cmd C) (S, error)
	Precondition  func(state S, cmd C) bool
	Postcondition func(from S, cmd C, to S) bool
}

// StateMachine bundles an initial state with the commands available to act
// on it.
type StateMachine[S, C any] struct {
	InitialState S
	Commands     []Command[S, C]
}

// CommandSequence is a generated run: an ordered list of abstract command
// values to replay against a StateMachine.
type CommandSequence[C any] struct {
	Commands []C
}

// StateTransition records one step of a replay, including any error Execute
// returned.
type StateTransition[S, C any] struct {
	Command   C
	FromState S
	ToState   S
	Error     error
}

// StateMachineResult is the outcome of replaying a CommandSequence against a
// StateMachine.
type StateMachineResult[S, C any] struct {
	FinalState       S
	ExecutionHistory []StateTransition[S, C]
	SkippedCommands  []C
}

// commandSequenceGenerator produces CommandSequence[C] values for a given
// StateMachine. maxLength, when positive, hard-caps the sequence length
// regardless of the size passed in; when zero, the size's Max bounds it.
type commandSequenceGenerator[S, C any] struct {
	stateMachine StateMachine[S, C]
	maxLength    int
}

func (g commandSequenceGenerator[S, C]) Generate(r *rand.Rand, sz gen.Size) (CommandSequence[C], gen.Shrinker[CommandSequence[C]]) {
	if r == nil {
		r = rand.New(rand.NewSource(rand.Int63()))
	}

	limit := g.maxLength
	if limit <= 0 {
		limit = sz.Max
	}
	if limit <= 0 {
		limit = 10
	}

	cmds := g.stateMachine.Commands
	n := 0
	if len(cmds) > 0 {
		n = r.Intn(limit + 1)
	}

	vals := make([]C, n)
	for i := 0; i < n; i++ {
		idx := r.Intn(len(cmds))
		v, _ := cmds[idx].Generator.Generate(r, gen.Size{})
		vals[i] = v
	}
	cur := CommandSequence[C]{Commands: vals}

	return cur, commandSequenceShrinker(cur)
}

// commandSequenceShrinker offers progressively shorter sequences: large
// contiguous blocks first (binary halving, mirroring gen.SliceOf), then
// isolated single-element removal, right to left.
func commandSequenceShrinker[C any](cur CommandSequence[C]) gen.Shrinker[CommandSequence[C]] {
	queue := make([]CommandSequence[C], 0, 16)

	rem := func(base []C, i, j int) []C {
		out := make([]C, 0, len(base)-(j-i))
		out = append(out, base[:i]...)
		out = append(out, base[j:]...)
		return out
	}

	growNeighbors := func(base []C) {
		queue = queue[:0]
		L := len(base)
		if L == 0 {
			return
		}
		push := func(s []C) {
			queue = append(queue, CommandSequence[C]{Commands: s})
		}
		chunk := L / 2
		for chunk >= 1 {
			for i := 0; i+chunk <= L; i += chunk {
				push(rem(base, i, i+chunk))
			}
			chunk /= 2
		}
		for i := L - 1; i >= 0; i-- {
			push(rem(base, i, i+1))
		}
	}
	growNeighbors(cur.Commands)

	var last CommandSequence[C]
	pop := func() (CommandSequence[C], bool) {
		if len(queue) == 0 {
			return CommandSequence[C]{}, false
		}
		if gen.GetShrinkStrategy() == gen.ShrinkStrategyDFS {
			v := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			return v, true
		}
		v := queue[0]
		queue = queue[1:]
		return v, true
	}

	base := cur
	return func(accept bool) (CommandSequence[C], bool) {
		if accept && len(last.Commands) != len(base.Commands) {
			base = last
			growNeighbors(base.Commands)
		}
		nxt, ok := pop()
		if !ok {
			return CommandSequence[C]{}, false
		}
		last = nxt
		return nxt, true
	}
}

// executeStateMachine replays seq against sm. For each abstract command
// value, the first Command definition in sm.Commands whose Precondition
// accepts the current state (a nil Precondition always accepts) is the one
// dispatched — a Precondition that checks the command's own discriminant
// (e.g. a Type field) is how a multi-command StateMachine routes each step
// to the right Execute/Postcondition pair. If no definition accepts, the
// step is skipped. Postcondition (when set) turns a structurally successful
// Execute into a failure if the resulting state doesn't hold the expected
// invariant. A StateMachine with no Commands skips the entire sequence.
func executeStateMachine[S, C any](sm StateMachine[S, C], seq CommandSequence[C]) StateMachineResult[S, C] {
	state := sm.InitialState
	var history []StateTransition[S, C]
	var skipped []C

	if len(sm.Commands) == 0 {
		skipped = append(skipped, seq.Commands...)
		return StateMachineResult[S, C]{FinalState: state, SkippedCommands: skipped}
	}

	for _, c := range seq.Commands {
		cmdDef, ok := selectCommand(sm.Commands, state, c)
		if !ok {
			skipped = append(skipped, c)
			continue
		}
		next := state
		var err error
		if cmdDef.Execute != nil {
			next, err = cmdDef.Execute(state, c)
		}
		if err == nil && cmdDef.Postcondition != nil && !cmdDef.Postcondition(state, c, next) {
			err = fmt.Errorf("postcondition failed for command %#v: %#v -> %#v", c, state, next)
		}
		history = append(history, StateTransition[S, C]{Command: c, FromState: state, ToState: next, Error: err})
		state = next
	}

	return StateMachineResult[S, C]{FinalState: state, ExecutionHistory: history, SkippedCommands: skipped}
}

// selectCommand returns the first Command definition whose Precondition
// accepts (state, c), treating a nil Precondition as always accepting.
func selectCommand[S, C any](cmds []Command[S, C], state S, c C) (Command[S, C], bool) {
	for _, cmdDef := range cmds {
		if cmdDef.Precondition == nil || cmdDef.Precondition(state, c) {
			return cmdDef, true
		}
	}
	return Command[S, C]{}, false
}

// TestStateMachine runs cfg.Examples generated CommandSequences against sm
// and fails the test if replaying any of them produces an execution error,
// shrinking the sequence to a minimal failing run first.
func TestStateMachine[S, C any](t *testing.T, sm StateMachine[S, C], cfg Config) {
	t.Helper()
	seed := cfg.effectiveSeed()
	r := rand.New(rand.NewSource(seed))
	gen.SetShrinkStrategy(cfg.ShrinkStrat)

	g := commandSequenceGenerator[S, C]{stateMachine: sm}

	for i := 0; i < cfg.Examples; i++ {
		seq, shrink := g.Generate(r, gen.Size{})
		name := fmt.Sprintf("seq#%d", i+1)

		passed := t.Run(name, func(st *testing.T) {
			result := executeStateMachine(sm, seq)
			for _, tr := range result.ExecutionHistory {
				if tr.Error != nil {
					st.Fatalf("command %#v failed: %v (from %#v to %#v)", tr.Command, tr.Error, tr.FromState, tr.ToState)
				}
			}
		})
		if passed {
			continue
		}

		min := seq
		steps := 0
		acceptedPrev := true
		for steps < cfg.MaxShrink {
			next, ok := shrink(acceptedPrev)
			if !ok {
				break
			}
			steps++
			sname := fmt.Sprintf("%s/shrink#%d", name, steps)
			stillFails := !t.Run(sname, func(st *testing.T) {
				result := executeStateMachine(sm, next)
				for _, tr := range result.ExecutionHistory {
					if tr.Error != nil {
						st.Fatalf("command %#v failed: %v", tr.Command, tr.Error)
					}
				}
			})
			if stillFails {
				min = next
				acceptedPrev = true
			} else {
				acceptedPrev = false
			}
		}

		t.Fatalf("[propcheck] state machine property failed; seed=%d; shrunk_steps=%d\nminimal sequence: %#v", seed, steps, min.Commands)
		if cfg.StopOnFirstFailure {
			return
		}
	}
}
