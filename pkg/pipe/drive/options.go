package drive

import "context"

type OptionKey string

const (
	DrainOptionKey OptionKey = "drain_options"
	StepOptionKey  OptionKey = "step_options"
)

type DrainOptions struct {
	DrainRemaining bool
}

type MaxLimitOption struct {
	Value int
}

type StepOptions struct {
	MaxSteps MaxLimitOption
}

func WithDrainOptions(ctx context.Context, drainRemaining bool) context.Context {
	return context.WithValue(ctx, DrainOptionKey, DrainOptions{DrainRemaining: drainRemaining})
}

func WithStepOptions(ctx context.Context, maxSteps int) context.Context {
	return context.WithValue(ctx, StepOptionKey, StepOptions{MaxSteps: MaxLimitOption{Value: maxSteps}})
}

func MaxSteps(ctx context.Context, defaultMaxSteps int) int {
	options, ok := ctx.Value(StepOptionKey).(StepOptions)
	if ok {
		return options.MaxSteps.Value
	}
	return defaultMaxSteps
}

func IsDrainRemainingEnabled(ctx context.Context, defaultDrainRemaining bool) bool {
	options, ok := ctx.Value(DrainOptionKey).(DrainOptions)
	if ok {
		return options.DrainRemaining
	}
	return defaultDrainRemaining
}
