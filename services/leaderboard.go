package services

import (
	"math"
	"sort"
	"strings"
	"time"

	"school-outreach-api/models"
)

// Time windows accepted by the leaderboard and rankings report.
const (
	WindowWeek    = "week"
	WindowMonth   = "month"
	WindowQuarter = "quarter"
	WindowYear    = "year"
)

// LeaderboardFilter restricts which submissions enter the aggregation.
// A zero filter means no restriction.
type LeaderboardFilter struct {
	Window  string    // one of the Window* constants, or empty
	Chapter string    // exact chapter name, or empty
	Now     time.Time // reference time for the window lower bound
}

// LeaderboardEntry is one ranked school in the aggregated leaderboard.
type LeaderboardEntry struct {
	Rank             int    `json:"rank"`
	SchoolID         int    `json:"school_id"`
	SchoolName       string `json:"school_name"`
	KCNumber         string `json:"kc_number"`
	ChapterName      string `json:"chapter_name"`
	TotalScore       int    `json:"total_score"`
	SubmissionsCount int    `json:"submissions_count"`
	AverageScore     int    `json:"average_score"`
}

// WindowStart returns the lower bound for a named time window relative to
// now. The second return is false when the window name is empty or unknown,
// meaning no lower bound applies.
func WindowStart(window string, now time.Time) (time.Time, bool) {
	switch window {
	case WindowWeek:
		return now.AddDate(0, 0, -7), true
	case WindowMonth:
		return now.AddDate(0, -1, 0), true
	case WindowQuarter:
		return now.AddDate(0, -3, 0), true
	case WindowYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// AggregateLeaderboard groups approved, scored submissions by school, sums
// and averages their scores, and returns schools ranked by average score.
// Average uses round half-up on the floating point quotient. Ties break by
// total score descending, then school name ascending, so the order is
// deterministic for identical input sets. Rank is the 1-based position;
// ties do not share a rank.
func AggregateLeaderboard(submissions []models.EventSubmission, filter LeaderboardFilter) []LeaderboardEntry {
	windowStart, hasWindow := WindowStart(filter.Window, filter.Now)

	groups := make(map[int]*LeaderboardEntry)
	for i := range submissions {
		s := &submissions[i]
		if s.Status != models.SubmissionStatusApproved || s.Score == nil {
			continue
		}
		if hasWindow && (s.SubmittedAt == nil || s.SubmittedAt.Before(windowStart)) {
			continue
		}
		if filter.Chapter != "" && s.School.Chapter.Name != filter.Chapter {
			continue
		}

		entry, ok := groups[s.SchoolID]
		if !ok {
			entry = &LeaderboardEntry{
				SchoolID:    s.SchoolID,
				SchoolName:  s.School.Name,
				KCNumber:    s.School.KCNumber,
				ChapterName: s.School.Chapter.Name,
			}
			groups[s.SchoolID] = entry
		}
		entry.TotalScore += *s.Score
		entry.SubmissionsCount++
	}

	entries := make([]LeaderboardEntry, 0, len(groups))
	for _, entry := range groups {
		entry.AverageScore = int(math.Round(float64(entry.TotalScore) / float64(entry.SubmissionsCount)))
		entries = append(entries, *entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].AverageScore != entries[j].AverageScore {
			return entries[i].AverageScore > entries[j].AverageScore
		}
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].SchoolName < entries[j].SchoolName
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// ReportFilter restricts which submissions enter the rankings report.
// All set fields apply conjunctively.
type ReportFilter struct {
	Search  string // case-insensitive match on school name, KC number, or event title
	Status  string // exact submission status, or empty
	Chapter string // exact chapter name, or empty
	Window  string // one of the Window* constants, or empty
	Now     time.Time
}

// RankedSubmission is one row of the rankings report.
type RankedSubmission struct {
	Rank         int        `json:"rank"`
	SubmissionID int        `json:"submission_id"`
	SchoolName   string     `json:"school_name"`
	KCNumber     string     `json:"kc_number"`
	ChapterName  string     `json:"chapter_name"`
	EventTitle   string     `json:"event_title"`
	Status       string     `json:"status"`
	Score        *int       `json:"score"`
	SubmittedAt  *time.Time `json:"submitted_at"`
}

// RankSubmissions filters individual submissions and ranks the flat result
// by score descending, treating a missing score as 0 for ordering. Ties
// break by submitted time ascending, then submission ID ascending.
func RankSubmissions(submissions []models.EventSubmission, filter ReportFilter) []RankedSubmission {
	windowStart, hasWindow := WindowStart(filter.Window, filter.Now)
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	rows := make([]RankedSubmission, 0, len(submissions))
	for i := range submissions {
		s := &submissions[i]
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.Chapter != "" && s.School.Chapter.Name != filter.Chapter {
			continue
		}
		if hasWindow && (s.SubmittedAt == nil || s.SubmittedAt.Before(windowStart)) {
			continue
		}
		if search != "" && !matchesSearch(s, search) {
			continue
		}
		rows = append(rows, RankedSubmission{
			SubmissionID: s.SubmissionID,
			SchoolName:   s.School.Name,
			KCNumber:     s.School.KCNumber,
			ChapterName:  s.School.Chapter.Name,
			EventTitle:   s.Event.Title,
			Status:       s.Status,
			Score:        s.Score,
			SubmittedAt:  s.SubmittedAt,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		si, sj := scoreOrZero(rows[i].Score), scoreOrZero(rows[j].Score)
		if si != sj {
			return si > sj
		}
		ti, tj := timeOrZero(rows[i].SubmittedAt), timeOrZero(rows[j].SubmittedAt)
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return rows[i].SubmissionID < rows[j].SubmissionID
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}

	return rows
}

// FilterSubmissions applies the list filters shared by the submission
// endpoints: a case-insensitive search over school name, KC number, and
// event title, plus an exact chapter match. Filters are conjunctive; empty
// filters pass everything.
func FilterSubmissions(submissions []models.EventSubmission, search, chapter string) []models.EventSubmission {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" && chapter == "" {
		return submissions
	}

	filtered := make([]models.EventSubmission, 0, len(submissions))
	for i := range submissions {
		s := &submissions[i]
		if chapter != "" && s.School.Chapter.Name != chapter {
			continue
		}
		if search != "" && !matchesSearch(s, search) {
			continue
		}
		filtered = append(filtered, *s)
	}
	return filtered
}

func matchesSearch(s *models.EventSubmission, search string) bool {
	return strings.Contains(strings.ToLower(s.School.Name), search) ||
		strings.Contains(strings.ToLower(s.School.KCNumber), search) ||
		strings.Contains(strings.ToLower(s.Event.Title), search)
}

func scoreOrZero(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
