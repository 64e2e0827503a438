package models

import "time"

// Alert represents a derived, typed notification surfacing a threshold
// breach. Alerts are regenerated on every recompute; the id is derived from
// type and resource id so an unchanged kitchen yields an identical list.
type Alert struct {
	ID           string         `json:"id"`
	Type         AlertType      `json:"type"`
	Severity     AlertSeverity  `json:"severity"`
	Message      string         `json:"message"`
	ResourceID   string         `json:"resourceId"`
	ResourceType string         `json:"resourceType"`
	Action       AlertAction    `json:"action"`
	Priority     AlertPriority  `json:"priority"`
	CreatedAt    time.Time      `json:"createdAt"`
	Dismissed    bool           `json:"dismissed"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// AlertType represents the rule family an alert originates from
type AlertType string

const (
	// Alert types
	AlertStock     AlertType = "stock"
	AlertExpiry    AlertType = "expiry"
	AlertNoUpdate  AlertType = "no_update"
	AlertStorage   AlertType = "storage"
	AlertMermas    AlertType = "mermas"
	AlertLifecycle AlertType = "lifecycle"
)

// AlertSeverity represents how serious an alert is
type AlertSeverity string

const (
	// Alert severities
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// AlertPriority represents how soon an alert should be acted on
type AlertPriority string

const (
	// Alert priorities
	AlertPriorityLow       AlertPriority = "low"
	AlertPriorityMedium    AlertPriority = "medium"
	AlertPriorityHigh      AlertPriority = "high"
	AlertPriorityImmediate AlertPriority = "immediate"
)

// AlertAction represents the recommended response to an alert
type AlertAction string

const (
	// Recommended actions
	ActionReorderImmediate    AlertAction = "reorder_immediate"
	ActionReorderSoon         AlertAction = "reorder_soon"
	ActionVerifyStock         AlertAction = "verify_stock"
	ActionCheckStock          AlertAction = "check_stock"
	ActionDiscardImmediate    AlertAction = "discard_immediate"
	ActionUseImmediately      AlertAction = "use_immediately"
	ActionPlanUsage           AlertAction = "plan_usage"
	ActionReorganizeImmediate AlertAction = "reorganize_immediate"
	ActionPlanReorganization  AlertAction = "plan_reorganization"
)

// AlertStats represents alert totals broken down by severity.
type AlertStats struct {
	Total     int `json:"total"`
	Critical  int `json:"critical"`
	Warning   int `json:"warning"`
	Info      int `json:"info"`
	Dismissed int `json:"dismissed"`
}
