package portal

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Op names one Client operation, used for per-operation failure injection.
type Op string

const (
	OpLogin  Op = "login"
	OpUpload Op = "upload"
	OpChat   Op = "chat"
	OpFleet  Op = "fleet"
	OpSearch Op = "search"
	OpStats  Op = "stats"
)

// Simulated is the stand-in backend. Every call waits out a fixed latency
// (interruptible by context) and answers from canned data. It exists so the
// UI exercises the real Client seam before the backend ships.
type Simulated struct {
	latency  time.Duration
	failures map[Op]error
	now      func() time.Time
}

// SimulatedOption configures a Simulated client.
type SimulatedOption func(*Simulated)

// WithLatency sets the per-call delay. Tests pass zero.
func WithLatency(d time.Duration) SimulatedOption {
	return func(s *Simulated) { s.latency = d }
}

// WithFailure makes the given operation return err instead of data.
func WithFailure(op Op, err error) SimulatedOption {
	return func(s *Simulated) { s.failures[op] = err }
}

// WithClock overrides the time source for deterministic upload dates.
func WithClock(now func() time.Time) SimulatedOption {
	return func(s *Simulated) { s.now = now }
}

// NewSimulated builds a simulated backend with the default 1.5s latency.
func NewSimulated(opts ...SimulatedOption) *Simulated {
	s := &Simulated{
		latency:  1500 * time.Millisecond,
		failures: make(map[Op]error),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// wait blocks for the configured latency or until ctx is cancelled, then
// reports any injected failure for op.
func (s *Simulated) wait(ctx context.Context, op Op) error {
	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return s.failures[op]
}

// Login accepts any credentials. There is no validation by design; the
// authentication backend does not exist yet.
func (s *Simulated) Login(ctx context.Context, creds Credentials) (Session, error) {
	if err := s.wait(ctx, OpLogin); err != nil {
		return Session{}, err
	}
	return Session{Username: creds.Username}, nil
}

// Upload returns one document record per file with a placeholder summary.
func (s *Simulated) Upload(ctx context.Context, files []FileInfo) ([]UploadedDocument, error) {
	if err := s.wait(ctx, OpUpload); err != nil {
		return nil, err
	}
	docs := make([]UploadedDocument, 0, len(files))
	for _, f := range files {
		docs = append(docs, UploadedDocument{
			ID:         uuid.NewString(),
			Name:       f.Name,
			Size:       f.Size,
			Type:       "PDF",
			UploadDate: s.now(),
			Summary:    fmt.Sprintf("Auto-generated summary for %s", f.Name),
		})
	}
	return docs, nil
}

// Chat answers with the canned reply selected by ClassifyReply.
func (s *Simulated) Chat(ctx context.Context, message string) (string, error) {
	if err := s.wait(ctx, OpChat); err != nil {
		return "", err
	}
	return cannedReplies[ClassifyReply(message)], nil
}

// FleetStatus returns a fresh copy of the canned roster.
func (s *Simulated) FleetStatus(ctx context.Context) ([]TrainRecord, error) {
	if err := s.wait(ctx, OpFleet); err != nil {
		return nil, err
	}
	roster := make([]TrainRecord, len(cannedRoster))
	copy(roster, cannedRoster)
	return roster, nil
}

// Search returns a fresh copy of the canned result set for the query's
// topic.
func (s *Simulated) Search(ctx context.Context, query string) ([]SearchResult, error) {
	if err := s.wait(ctx, OpSearch); err != nil {
		return nil, err
	}
	set := cannedResults[ClassifySearch(query)]
	results := make([]SearchResult, len(set))
	copy(results, set)
	return results, nil
}

// SystemStats returns the canned headline numbers.
func (s *Simulated) SystemStats(ctx context.Context) (SystemStats, error) {
	if err := s.wait(ctx, OpStats); err != nil {
		return SystemStats{}, err
	}
	return SystemStats{
		Documents: 156,
		Trains:    TrainTotals{Total: 24, Ready: 18, Maintenance: 4, Safety: 2},
	}, nil
}

var cannedReplies = map[ReplyKey]string{
	ReplyFleetReadiness: "Based on the latest fleet status, 18 out of 24 trains are currently " +
		"ready for service. Trains MR-101 through MR-118 are operational and cleared for " +
		"passenger service.",
	ReplySafetyAlerts: "Current safety alerts: 2 trains (MR-123, MR-124) have minor safety " +
		"notifications for brake system checks. All other systems are operating normally.",
	ReplyMaintenanceSchedule: "Maintenance schedule: 4 trains are currently under scheduled " +
		"maintenance. Expected completion: MR-119 (tomorrow), MR-120 (2 days), MR-121 & MR-122 " +
		"(this week).",
	ReplyGeneric: "I understand your query. Let me search through the documents and provide " +
		"you with the most relevant information.",
}

var cannedRoster = []TrainRecord{
	{
		ID:              "MR-101",
		Name:            "Metro Rail 101",
		Status:          StatusReady,
		Location:        "Aluva Station",
		LastInspection:  "2024-01-15",
		NextMaintenance: "2024-02-15",
	},
	{
		ID:              "MR-102",
		Name:            "Metro Rail 102",
		Status:          StatusReady,
		Location:        "Kochi Airport",
		LastInspection:  "2024-01-14",
		NextMaintenance: "2024-02-14",
	},
	{
		ID:              "MR-119",
		Name:            "Metro Rail 119",
		Status:          StatusMaintenance,
		Location:        "Muttom Depot",
		LastInspection:  "2024-01-10",
		NextMaintenance: "2024-01-25",
		Issues:          []string{"Brake system check", "Door mechanism servicing"},
	},
	{
		ID:              "MR-123",
		Name:            "Metro Rail 123",
		Status:          StatusSafety,
		Location:        "Edapally Station",
		LastInspection:  "2024-01-12",
		NextMaintenance: "2024-01-20",
		Issues:          []string{"Emergency brake alert", "Safety system calibration"},
	},
}

var cannedResults = map[SearchTopic][]SearchResult{
	TopicSafety: {
		{
			ID:    "1",
			Title: "Safety Protocol Update",
			Content: "New safety protocols have been implemented for emergency brake systems. " +
				"All trains must undergo mandatory safety checks before operational deployment...",
			DocumentName:   "Safety_Bulletin_2024_001.pdf",
			DocumentType:   "Safety Bulletin",
			RelevanceScore: 0.95,
			LastModified:   "2024-01-15",
			PageNumber:     1,
		},
		{
			ID:    "2",
			Title: "Emergency Brake System Inspection",
			Content: "Inspection report for Metro Rail 123 emergency brake system. Issues " +
				"identified during routine check require immediate attention...",
			DocumentName:   "Inspection_Report_MR123.pdf",
			DocumentType:   "Inspection Report",
			RelevanceScore: 0.87,
			LastModified:   "2024-01-12",
			PageNumber:     3,
		},
	},
	TopicMaintenance: {
		{
			ID:    "3",
			Title: "Scheduled Maintenance Guidelines",
			Content: "Comprehensive maintenance schedule for Q1 2024. All trains require " +
				"quarterly inspections as per KMRL maintenance protocols...",
			DocumentName:   "Maintenance_Schedule_Q1_2024.pdf",
			DocumentType:   "Maintenance Guide",
			RelevanceScore: 0.92,
			LastModified:   "2024-01-10",
			PageNumber:     2,
		},
	},
	TopicDefault: {
		{
			ID:    "4",
			Title: "General Operations Manual",
			Content: "Standard operating procedures for Metro Rail operations. This document " +
				"covers basic operational guidelines and best practices...",
			DocumentName:   "Operations_Manual_2024.pdf",
			DocumentType:   "Operations Manual",
			RelevanceScore: 0.68,
			LastModified:   "2024-01-08",
			PageNumber:     1,
		},
	},
}
