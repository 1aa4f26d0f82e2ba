package service

import "context"

// ShareTarget hands a generated document to whatever mechanism makes it
// available to other applications. The artifact is transient, not durable
// application state.
type ShareTarget interface {
	// Publish decodes the base64 document and writes it under fileName,
	// returning the location of the written artifact.
	Publish(ctx context.Context, fileName string, base64Doc string) (string, error)
}
