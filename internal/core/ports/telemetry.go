package ports

import "context"

// Telemetry records build spans for operator-facing progress output.
type Telemetry interface {
	// Record starts a new vertex for one unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)
}
