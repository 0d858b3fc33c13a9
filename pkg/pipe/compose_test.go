package pipe

import (
	"errors"
	"testing"
)

// take yields its first n inputs unchanged and closes on the next one.
func take(n int) Pipe[int, int] {
	type takeState struct {
		left int
		done bool
	}
	return New(takeState{left: n},
		func(s takeState, input int) Step[takeState, int] {
			if s.done {
				return Blocked[takeState, int]()
			}
			if s.left <= 0 {
				return Closed[takeState, int]()
			}
			s.left--
			return Yield(input, s)
		},
		func(s takeState) Step[takeState, int] {
			if s.done {
				return Closed[takeState, int]()
			}
			return Blocked[takeState, int]()
		},
		func(s takeState) bool {
			return !s.done
		},
		func(s takeState) takeState {
			s.done = true
			return s
		},
	)
}

// rogue claims produce mode forever but blocks every produce call,
// breaking the pipe contract on purpose.
func rogue() Pipe[int, int] {
	return New(0,
		func(s int, input int) Step[int, int] {
			return Blocked[int, int]()
		},
		func(s int) Step[int, int] {
			return Blocked[int, int]()
		},
		func(s int) bool {
			return false
		},
		func(s int) int {
			return s
		},
	)
}

func TestComposeMapMap(t *testing.T) {
	t.Parallel()
	p := Compose(
		Map(func(n int) int { return n * 2 }),
		Map(func(n int) int { return n + 1 }),
	)

	want := []int{4, 6, 8}
	for i, in := range []int{1, 2, 3} {
		if !p.AwaitingInput() {
			t.Fatalf("input %d: composite must await input", in)
		}
		st := p.Consume(in)
		if !st.IsYield() || st.Value() != want[i] {
			t.Fatalf("input %d: expected yield %d, got: kind=%v val=%v", in, want[i], st.Kind(), st.Value())
		}
		p = st.State()
	}

	if !p.AwaitingInput() {
		t.Fatalf("map composition must stay in consume mode between inputs")
	}

	p = p.Finalize()
	if p.AwaitingInput() {
		t.Fatalf("finalized composite must not await input")
	}
	if st := p.Produce(); !st.IsClosed() {
		t.Fatalf("expected closed after finalize, got: %v", st.Kind())
	}
}

func TestComposePairBufferEcho(t *testing.T) {
	t.Parallel()
	pairs := Compose(Expand[int](), Chunk[int](2))
	p := Compose(pairs, Map(func(n int) int { return n }))

	// first input of a pair only buffers
	st := p.Consume(1)
	if !st.IsContinue() {
		t.Fatalf("expected continue on buffered input, got: %v", st.Kind())
	}
	if !st.State().AwaitingInput() {
		t.Fatalf("composite must keep awaiting input while buffering")
	}

	out := runAll(t, p, []int{1, 2, 3, 4})
	if len(out) != 4 || out[0] != 1 || out[1] != 2 || out[2] != 3 || out[3] != 4 {
		t.Fatalf("expected [1 2 3 4] in arrival order, got: %v", out)
	}
}

func TestComposePairBufferFlushesOddTail(t *testing.T) {
	t.Parallel()
	p := Compose(Expand[int](), Chunk[int](2))

	out := runAll(t, p, []int{1, 2, 3})
	if len(out) != 3 || out[2] != 3 {
		t.Fatalf("expected finalize to flush the odd tail, got: %v", out)
	}
}

func TestComposeModeExclusivity(t *testing.T) {
	t.Parallel()
	p := Compose(Expand[int](), Chunk[int](2))

	// consume mode: produce is the wrong operation
	if st := p.Produce(); !st.IsBlocked() {
		t.Fatalf("expected blocked produce in consume mode, got: %v", st.Kind())
	}

	// blocked must not have advanced anything
	p = p.Consume(1).State().Consume(2).State()
	if p.AwaitingInput() {
		t.Fatalf("composite must be in produce mode holding a full pair")
	}

	// produce mode: consume is the wrong operation
	if st := p.Consume(3); !st.IsBlocked() {
		t.Fatalf("expected blocked consume in produce mode, got: %v", st.Kind())
	}

	// and the pending pair is still intact
	st := p.Produce()
	for st.IsContinue() {
		st = st.State().Produce()
	}
	if !st.IsYield() || st.Value() != 1 {
		t.Fatalf("expected yield 1 after blocked consume, got: kind=%v val=%v", st.Kind(), st.Value())
	}
}

func TestComposeNoValueLoss(t *testing.T) {
	t.Parallel()
	inputs := []int{1, 2, 3, 4, 5, 6, 7}

	composed := runAll(t, Compose(Expand[int](), Chunk[int](3)), inputs)

	intermediate := runAll(t, Chunk[int](3), inputs)
	staged := runAll(t, Expand[int](), intermediate)

	if len(composed) != len(staged) {
		t.Fatalf("value loss: composed=%v staged=%v", composed, staged)
	}
	for i := range composed {
		if composed[i] != staged[i] {
			t.Fatalf("order mismatch at %d: composed=%v staged=%v", i, composed, staged)
		}
	}
}

func TestComposeUpstreamClosureDrainsDownstream(t *testing.T) {
	t.Parallel()
	// upstream closes after 3 inputs, downstream holds a partial chunk
	p := Compose(Chunk[int](2), take(3))

	out := runAll(t, p, []int{1, 2, 3, 4, 5})
	if len(out) != 2 {
		t.Fatalf("expected 2 chunks, got: %v", out)
	}
	if len(out[0]) != 2 || out[0][0] != 1 || out[0][1] != 2 {
		t.Fatalf("expected [1 2], got: %v", out[0])
	}
	if len(out[1]) != 1 || out[1][0] != 3 {
		t.Fatalf("expected the buffered [3] drained after upstream closed, got: %v", out[1])
	}
}

func TestComposeUpstreamClosureReportsClosedWithoutMoreInput(t *testing.T) {
	t.Parallel()
	p := Compose(Map(func(n int) int { return n * 10 }), take(1))

	st := p.Consume(1)
	if !st.IsYield() || st.Value() != 10 {
		t.Fatalf("expected yield 10, got: kind=%v val=%v", st.Kind(), st.Value())
	}

	// upstream closes on this consume; downstream map has nothing buffered
	st = st.State().Consume(2)
	for st.IsContinue() {
		st = st.State().Produce()
	}
	if !st.IsClosed() {
		t.Fatalf("expected closed without requiring further input, got: %v", st.Kind())
	}
}

func TestComposeDownstreamClosureWins(t *testing.T) {
	t.Parallel()
	// downstream closes after 2 values even though upstream accepts more
	p := Compose(take(2), Map(func(n int) int { return n + 1 }))

	out := runAll(t, p, []int{1, 2, 3, 4})
	if len(out) != 2 || out[0] != 2 || out[1] != 3 {
		t.Fatalf("expected [2 3] then closure, got: %v", out)
	}
}

func TestComposeIdentityLaw(t *testing.T) {
	t.Parallel()
	inputs := []int{5, 6, 7, 8, 9}

	double := func(n int) int { return n * 2 }

	plain := runAll(t, Map(double), inputs)
	leftId := runAll(t, Compose(Identity[int](), Map(double)), inputs)
	rightId := runAll(t, Compose(Map(double), Identity[int]()), inputs)

	for i := range plain {
		if plain[i] != leftId[i] || plain[i] != rightId[i] {
			t.Fatalf("identity law broken at %d: plain=%v left=%v right=%v", i, plain, leftId, rightId)
		}
	}

	buffered := runAll(t, Chunk[int](2), inputs)
	wrapped := runAll(t, Compose(Identity[[]int](), Chunk[int](2)), inputs)
	if len(buffered) != len(wrapped) {
		t.Fatalf("identity law broken for buffering pipe: %v vs %v", buffered, wrapped)
	}
	for i := range buffered {
		if len(buffered[i]) != len(wrapped[i]) {
			t.Fatalf("identity law broken at chunk %d: %v vs %v", i, buffered[i], wrapped[i])
		}
	}
}

func TestComposeAssociativity(t *testing.T) {
	t.Parallel()
	inputs := []int{1, 2, 3, 4, 5, 6, 7}

	makeP := func() Pipe[[]int, int] { return Expand[int]() }
	makeQ := func() Pipe[int, []int] { return Chunk[int](2) }
	makeR := func() Pipe[int, int] { return Map(func(n int) int { return n + 1 }) }

	leftAssoc := runAll(t, Compose(Compose(makeP(), makeQ()), makeR()), inputs)
	rightAssoc := runAll(t, Compose(makeP(), Compose(makeQ(), makeR())), inputs)

	if len(leftAssoc) != len(rightAssoc) {
		t.Fatalf("associativity broken: %v vs %v", leftAssoc, rightAssoc)
	}
	for i := range leftAssoc {
		if leftAssoc[i] != rightAssoc[i] {
			t.Fatalf("associativity broken at %d: %v vs %v", i, leftAssoc, rightAssoc)
		}
	}
}

func TestComposeFinalizeIsIdempotent(t *testing.T) {
	t.Parallel()
	p := Compose(Expand[int](), Chunk[int](2)).Finalize().Finalize()

	if p.AwaitingInput() {
		t.Fatalf("finalized composite must not await input")
	}
	st := p.Produce()
	for st.IsContinue() {
		st = st.State().Produce()
	}
	if !st.IsClosed() {
		t.Fatalf("expected closed, got: %v", st.Kind())
	}
}

func TestComposeContractViolationPanics(t *testing.T) {
	t.Parallel()

	// upstream claims produce mode but blocks produce
	p := Compose(Map(func(n int) int { return n }), rogue())
	if p.AwaitingInput() {
		t.Fatalf("composite with producing upstream must not await input")
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrProduceContract) {
			t.Fatalf("expected ErrProduceContract panic, got: %v", r)
		}
	}()
	p.Produce()
}
