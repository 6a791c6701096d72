package constant

type ProposalSegment string

const (
	ProposalSegmentPool        ProposalSegment = "piscina"
	ProposalSegmentResidential ProposalSegment = "residencial"
)

// Proposal status is a free-form column; these are the values the lifecycle relies on.
const (
	ProposalStatusDraft     = "draft"
	ProposalStatusApproved  = "approved"
	ProposalStatusCompleted = "completed"
	ProposalStatusCancelled = "cancelled"
)

// ProposalClosedStatuses are the statuses counted as a closed sale.
var ProposalClosedStatuses = []string{ProposalStatusApproved, ProposalStatusCompleted}
