package schema

// EnrichedMilestone adds presentation data to a Milestone.
type EnrichedMilestone struct {
	Label         string `json:"label"`
	FormattedDate string `json:"formatted_date,omitempty"`
	Milestone
}

// GetPlainLabel returns a plain text label for a milestone status.
func GetPlainLabel(status MilestoneStatus) string {
	switch status {
	case ReachedStatus:
		return "Reached"
	case ProjectedStatus:
		return "Projected"
	case OutOfRangeStatus:
		return "Out of range"
	case NoPaceStatus:
		return "No pace"
	default:
		return "Undefined"
	}
}

// EnrichMilestones adds labels and formatted dates to a list of milestones.
// format is applied to present dates only.
func EnrichMilestones(milestones []Milestone, format func(Milestone) string) []EnrichedMilestone {
	output := make([]EnrichedMilestone, len(milestones))
	for i, m := range milestones {
		output[i] = EnrichedMilestone{
			Label:     GetPlainLabel(m.Status),
			Milestone: m,
		}
		if m.Date != nil && format != nil {
			output[i].FormattedDate = format(m)
		}
	}
	return output
}
