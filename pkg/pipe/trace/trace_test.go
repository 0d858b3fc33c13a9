package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ib-77/pipe3/pkg/pipe"
	"github.com/ib-77/pipe3/pkg/pipe/drive"
)

func TestTracedPipeBehavesIdentically(t *testing.T) {
	t.Parallel()
	log := zerolog.Nop()

	p := Traced(log, "double", pipe.Map(func(n int) int { return n * 2 }))

	out, err := drive.Collect(context.Background(), p, []int{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 || out[0] != 2 || out[1] != 4 || out[2] != 6 {
		t.Fatalf("expected [2 4 6], got: %v", out)
	}
}

func TestTracedPipeLogsTransitions(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	p := Traced(log, "pairs", pipe.Chunk[int](2))
	if _, err := drive.Collect(context.Background(), p, []int{1, 2, 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logged := buf.String()
	for _, want := range []string{`"pipe":"pairs"`, `"op":"consume"`, `"op":"produce"`, `"op":"finalize"`, `"step":"yield"`} {
		if !strings.Contains(logged, want) {
			t.Fatalf("expected %s in trace output, got:\n%s", want, logged)
		}
	}
}

func TestYieldsObserverLogsValues(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	ctx := context.Background()
	drive.FromChanMany(ctx, drive.RunWith(ctx,
		drive.ToChanMany(ctx, []int{7}),
		pipe.Identity[int](),
		drive.CancellationHandlers[int, int]{},
		Yields[int](log, "ids"),
	))

	logged := buf.String()
	if !strings.Contains(logged, `"pipe":"ids"`) || !strings.Contains(logged, `"value":7`) {
		t.Fatalf("expected yield log for value 7, got:\n%s", logged)
	}
}
