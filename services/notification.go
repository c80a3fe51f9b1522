package services

import (
	"fmt"
	"log"

	"school-outreach-api/config"
	"school-outreach-api/models"
)

// NotifyReviewDecision emails the submitting school about a review outcome.
// Mail failures are logged, not returned: the review transition has already
// been persisted and must not be reported as failed because of SMTP.
func NotifyReviewDecision(submission *models.EventSubmission, action string) {
	if submission.School.Email == "" {
		return
	}

	var subject, intro string
	switch action {
	case ReviewActionApprove:
		subject = "Your activity submission has been approved"
		intro = fmt.Sprintf("Your submission for <b>%s</b> has been approved with a score of <b>%d</b>.",
			submission.Event.Title, *submission.Score)
	case ReviewActionRequestRevision:
		subject = "Revision requested for your activity submission"
		intro = fmt.Sprintf("The reviewer has requested a revision of your submission for <b>%s</b>.",
			submission.Event.Title)
	case ReviewActionReject:
		subject = "Your activity submission was not approved"
		intro = fmt.Sprintf("Your submission for <b>%s</b> has been rejected.", submission.Event.Title)
	default:
		return
	}

	comments := ""
	if submission.AdminComment != nil {
		comments = *submission.AdminComment
	}

	body := fmt.Sprintf(`<p>Dear %s,</p>
<p>%s</p>
<p>Reviewer comments: %s</p>
<p>Regards,<br>School Outreach Program</p>`,
		submission.School.Name, intro, comments)

	if err := config.SendMail([]string{submission.School.Email}, subject, body); err != nil {
		log.Printf("Failed to send review notification for submission %d: %v", submission.SubmissionID, err)
	}
}
