package core

import "context"

type contextKey string

const ctxKeyClient contextKey = "submission_client"

// ClientInfo identifies who sent a submission. It is only logged.
type ClientInfo struct {
	IP        string
	UserAgent string
}

// ContextWithClient attaches the submitting client to ctx.
func ContextWithClient(ctx context.Context, c ClientInfo) context.Context {
	return context.WithValue(ctx, ctxKeyClient, c)
}

// ClientFromContext returns the client attached by ContextWithClient, or the
// zero value.
func ClientFromContext(ctx context.Context) ClientInfo {
	c, _ := ctx.Value(ctxKeyClient).(ClientInfo)
	return c
}
