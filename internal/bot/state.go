package bot

import "time"

// Data is the process-wide state shared by every command invocation.
// It is created once at startup and must not be modified afterwards.
// Mutable state added here later needs its own synchronization.
type Data struct {
	Version   string
	StartedAt time.Time
}

// NewData creates the shared state for this process.
func NewData(version string) *Data {
	return &Data{
		Version:   version,
		StartedAt: time.Now().UTC(),
	}
}
