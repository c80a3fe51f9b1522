package services

import (
	"testing"
)

func intPtr(v int) *int { return &v }

func TestValidateReviewActionApprove(t *testing.T) {
	tests := []struct {
		name     string
		score    *int
		comments string
		wantErr  bool
	}{
		{"valid approval", intPtr(75), "Good effort.", false},
		{"lower bound", intPtr(1), "Minimal but complete.", false},
		{"upper bound", intPtr(100), "Outstanding work.", false},
		{"missing score", nil, "Good effort.", true},
		{"score too low", intPtr(0), "Good effort.", true},
		{"score too high", intPtr(101), "Good effort.", true},
		{"empty comments", intPtr(75), "", true},
		{"whitespace comments", intPtr(75), "   \t\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateReviewAction(ReviewActionApprove, tt.score, tt.comments)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateReviewAction(approve, %v, %q) error = %v, wantErr %v",
					tt.score, tt.comments, err, tt.wantErr)
			}
		})
	}
}

func TestValidateReviewActionCommentsOnly(t *testing.T) {
	for _, action := range []string{ReviewActionRequestRevision, ReviewActionReject} {
		if err := ValidateReviewAction(action, nil, "Please add photos."); err != nil {
			t.Errorf("ValidateReviewAction(%s) with comments failed: %v", action, err)
		}
		if err := ValidateReviewAction(action, nil, "  "); err == nil {
			t.Errorf("ValidateReviewAction(%s) with blank comments should fail", action)
		}
		// A score is allowed but not required outside approval
		if err := ValidateReviewAction(action, intPtr(50), "Needs work."); err != nil {
			t.Errorf("ValidateReviewAction(%s) with score failed: %v", action, err)
		}
	}
}

func TestValidateReviewActionUnknown(t *testing.T) {
	if err := ValidateReviewAction("escalate", nil, "comments"); err == nil {
		t.Fatal("expected error for unknown action, got nil")
	}
}

func TestStatusForAction(t *testing.T) {
	tests := []struct {
		action string
		want   string
	}{
		{ReviewActionApprove, "approved"},
		{ReviewActionRequestRevision, "revision_requested"},
		{ReviewActionReject, "rejected"},
		{"escalate", ""},
	}

	for _, tt := range tests {
		if got := StatusForAction(tt.action); got != tt.want {
			t.Errorf("StatusForAction(%s) = %s, want %s", tt.action, got, tt.want)
		}
	}
}
