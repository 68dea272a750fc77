// Package portal defines the domain types and the backend client contract
// for the Metro Rail Document Intelligence portal. The UI only ever talks
// to the backend through the Client interface; today the sole
// implementation is Simulated, which answers from canned data after a
// configurable delay.
package portal

import "time"

// Credentials is the login form payload.
type Credentials struct {
	Username string
	Password string
}

// Session identifies the authenticated user. The dashboard is reachable
// only while a session exists; logout discards it.
type Session struct {
	Username string
}

// FileInfo describes a file offered for upload, before any backend
// processing. ContentType is inferred from the file extension.
type FileInfo struct {
	Name        string
	Path        string
	Size        int64
	ContentType string
}

// AcceptedContentType is the only content type the upload pipeline admits.
const AcceptedContentType = "application/pdf"

// UploadedDocument is one processed document as reported by the backend.
type UploadedDocument struct {
	ID         string
	Name       string
	Size       int64
	Type       string
	UploadDate time.Time
	Summary    string
}

// TrainStatus enumerates the operational state of a train set.
type TrainStatus string

const (
	StatusReady       TrainStatus = "ready"
	StatusMaintenance TrainStatus = "maintenance"
	StatusSafety      TrainStatus = "safety"
)

// TrainRecord is one fleet roster entry. Issues is non-empty only for
// non-ready statuses.
type TrainRecord struct {
	ID              string
	Name            string
	Status          TrainStatus
	Location        string
	LastInspection  string
	NextMaintenance string
	Issues          []string
}

// FleetSummary holds the per-status totals for a roster. It is always
// derived from the roster via SummarizeFleet, never stored.
type FleetSummary struct {
	Ready       int
	Maintenance int
	Safety      int
}

// Total returns the number of records the summary was computed over.
func (s FleetSummary) Total() int {
	return s.Ready + s.Maintenance + s.Safety
}

// SummarizeFleet recomputes status totals from the current roster.
func SummarizeFleet(roster []TrainRecord) FleetSummary {
	var s FleetSummary
	for _, t := range roster {
		switch t.Status {
		case StatusReady:
			s.Ready++
		case StatusMaintenance:
			s.Maintenance++
		case StatusSafety:
			s.Safety++
		}
	}
	return s
}

// SearchResult is one canned document search hit.
type SearchResult struct {
	ID             string
	Title          string
	Content        string
	DocumentName   string
	DocumentType   string
	RelevanceScore float64
	LastModified   string
	PageNumber     int
}

// SystemStats backs the sidebar system-overview widget.
type SystemStats struct {
	Documents int
	Trains    TrainTotals
}

// TrainTotals mirrors the fleet headline numbers shown in the sidebar.
type TrainTotals struct {
	Total       int
	Ready       int
	Maintenance int
	Safety      int
}

// FilterAccepted splits a batch into accepted files and the count of
// rejected ones. Both upload surfaces (sidebar widget and Documents panel)
// go through this exact filter so their behavior cannot diverge.
func FilterAccepted(files []FileInfo) (accepted []FileInfo, rejected int) {
	for _, f := range files {
		if f.ContentType == AcceptedContentType {
			accepted = append(accepted, f)
		} else {
			rejected++
		}
	}
	return accepted, rejected
}
