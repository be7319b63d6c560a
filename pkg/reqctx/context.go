package reqctx

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type KeyContext string

var (
	keyRequestID KeyContext = "request_id"
	keyOperation KeyContext = "operation"
	keyStartTime KeyContext = "start_time"
)

// RequestMetadata holds metadata for one inbound request
type RequestMetadata struct {
	RequestID string
	Operation string
	StartTime time.Time
}

// Begin attaches request metadata to ctx
func Begin(parentCtx context.Context, requestID, operation string) context.Context {
	ctx := context.WithValue(parentCtx, keyRequestID, requestID)
	ctx = context.WithValue(ctx, keyOperation, operation)
	ctx = context.WithValue(ctx, keyStartTime, time.Now())
	return ctx
}

// GetRequestID extracts the request ID from context
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(keyRequestID).(string)
	return id
}

// GetOperation extracts the operation name from context
func GetOperation(ctx context.Context) string {
	op, _ := ctx.Value(keyOperation).(string)
	return op
}

// GetStartTime extracts the request start time from context
func GetStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyStartTime).(time.Time)
	return startTime, ok
}

// GetMetadata extracts all request metadata from context
func GetMetadata(ctx context.Context) *RequestMetadata {
	startTime, _ := GetStartTime(ctx)
	return &RequestMetadata{
		RequestID: GetRequestID(ctx),
		Operation: GetOperation(ctx),
		StartTime: startTime,
	}
}

// Fields returns zap fields describing the request carried by ctx
func Fields(ctx context.Context) []zap.Field {
	md := GetMetadata(ctx)
	fields := make([]zap.Field, 0, 3)
	if md.RequestID != "" {
		fields = append(fields, zap.String("request_id", md.RequestID))
	}
	if md.Operation != "" {
		fields = append(fields, zap.String("operation", md.Operation))
	}
	if !md.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(md.StartTime)))
	}
	return fields
}
