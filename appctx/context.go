package appctx

import "context"

// Context key for storing the pipeline run id
type contextKey string

const RunIDContextKey contextKey = "run_id"

// SetRunID adds the run id to the context
func SetRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDContextKey, runID)
}

// GetRunID extracts the run id from the context
func GetRunID(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(RunIDContextKey).(string)
	return runID, ok
}
