package portal

import "strings"

// ReplyKey selects which canned assistant reply a chat message maps to.
type ReplyKey string

const (
	ReplyFleetReadiness      ReplyKey = "fleet_readiness"
	ReplySafetyAlerts        ReplyKey = "safety_alerts"
	ReplyMaintenanceSchedule ReplyKey = "maintenance_schedule"
	ReplyGeneric             ReplyKey = "generic"
)

// ClassifyReply maps a user message to a reply key by substring match on
// the lowercased text. First match wins, in the order ready, safety,
// maintenance.
func ClassifyReply(message string) ReplyKey {
	q := strings.ToLower(message)
	switch {
	case strings.Contains(q, "ready"):
		return ReplyFleetReadiness
	case strings.Contains(q, "safety"):
		return ReplySafetyAlerts
	case strings.Contains(q, "maintenance"):
		return ReplyMaintenanceSchedule
	default:
		return ReplyGeneric
	}
}

// SearchTopic selects which canned result set a search query maps to.
type SearchTopic string

const (
	TopicSafety      SearchTopic = "safety"
	TopicMaintenance SearchTopic = "maintenance"
	TopicDefault     SearchTopic = "default"
)

// ClassifySearch maps a query to a result-set topic by substring match on
// the lowercased text.
func ClassifySearch(query string) SearchTopic {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "safety"):
		return TopicSafety
	case strings.Contains(q, "maintenance"):
		return TopicMaintenance
	default:
		return TopicDefault
	}
}
