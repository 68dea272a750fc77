package portal

import "context"

// Client is the seam between the dashboard and the backend. The dashboard
// never constructs responses itself; every panel operation goes through
// exactly one of these calls. Swapping Simulated for a real HTTP client is
// a constructor change, not a UI change.
type Client interface {
	// Login authenticates the given credentials. The current backend
	// accepts any non-empty credentials unconditionally.
	Login(ctx context.Context, creds Credentials) (Session, error)

	// Upload processes a batch of accepted files and returns one document
	// record per file. Callers filter with FilterAccepted first; Upload is
	// never invoked with an empty batch.
	Upload(ctx context.Context, files []FileInfo) ([]UploadedDocument, error)

	// Chat returns the assistant reply for one user message.
	Chat(ctx context.Context, message string) (string, error)

	// FleetStatus returns a full roster snapshot. Callers replace their
	// roster wholesale; entries are never merged across snapshots.
	FleetStatus(ctx context.Context) ([]TrainRecord, error)

	// Search returns the result set for a query, replacing any previous
	// results at the caller.
	Search(ctx context.Context, query string) ([]SearchResult, error)

	// SystemStats returns the headline numbers for the sidebar widget.
	SystemStats(ctx context.Context) (SystemStats, error)
}
