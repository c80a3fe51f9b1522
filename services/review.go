package services

import (
	"errors"
	"fmt"
	"strings"
)

// Review actions a reviewer can take on a pending submission.
const (
	ReviewActionApprove         = "approve"
	ReviewActionRequestRevision = "request_revision"
	ReviewActionReject          = "reject"
)

// Score bounds for an approval.
const (
	MinApproveScore = 1
	MaxApproveScore = 100
)

// ValidateReviewAction checks the preconditions of a review action before
// any persistence is attempted. Approve requires a score in [1, 100] and
// non-blank comments; request_revision and reject require non-blank
// comments only.
func ValidateReviewAction(action string, score *int, comments string) error {
	switch action {
	case ReviewActionApprove:
		if score == nil {
			return errors.New("a score is required to approve a submission")
		}
		if *score < MinApproveScore || *score > MaxApproveScore {
			return fmt.Errorf("score must be between %d and %d", MinApproveScore, MaxApproveScore)
		}
		if strings.TrimSpace(comments) == "" {
			return errors.New("comments are required to approve a submission")
		}
	case ReviewActionRequestRevision:
		if strings.TrimSpace(comments) == "" {
			return errors.New("comments are required to request a revision")
		}
	case ReviewActionReject:
		if strings.TrimSpace(comments) == "" {
			return errors.New("comments are required to reject a submission")
		}
	default:
		return fmt.Errorf("unknown review action: %s", action)
	}
	return nil
}

// StatusForAction maps a validated review action to the submission status
// it produces.
func StatusForAction(action string) string {
	switch action {
	case ReviewActionApprove:
		return "approved"
	case ReviewActionRequestRevision:
		return "revision_requested"
	case ReviewActionReject:
		return "rejected"
	default:
		return ""
	}
}
