package marketplace

import (
	"strings"

	"github.com/domonda/go-datatable/htmlgrid"
)

var statusBadges = map[Status]htmlgrid.Badge{
	StatusPending:  {Label: "Pending", Class: "status-badge status-pending"},
	StatusApproved: {Label: "Approved", Class: "status-badge status-approved"},
	StatusRejected: {Label: "Rejected", Class: "status-badge status-rejected"},
	StatusActive:   {Label: "Active", Class: "status-badge status-approved"},
	StatusInactive: {Label: "Inactive", Class: "status-badge status-rejected"},
}

// StatusBadge returns the badge displayed for a status.
// Unknown statuses are labeled with the status itself.
func StatusBadge(status Status) htmlgrid.Badge {
	if badge, ok := statusBadges[Status(strings.ToLower(string(status)))]; ok {
		return badge
	}
	return htmlgrid.Badge{Label: string(status), Class: "status-badge bg-muted text-muted-foreground"}
}
