package services

import (
	"reflect"
	"testing"
	"time"

	"school-outreach-api/models"
)

var testNow = time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

func approvedSubmission(id, schoolID, score int, school, chapter string, submitted time.Time) models.EventSubmission {
	s := score
	at := submitted
	return models.EventSubmission{
		SubmissionID: id,
		SchoolID:     schoolID,
		Status:       models.SubmissionStatusApproved,
		Score:        &s,
		SubmittedAt:  &at,
		School: models.School{
			SchoolID: schoolID,
			Name:     school,
			KCNumber: "KC-2025-000" + string(rune('0'+schoolID)),
			Chapter:  models.Chapter{Name: chapter},
		},
	}
}

func TestAggregateLeaderboardAverage(t *testing.T) {
	// round((92+88+95)/3) = round(91.67) = 92
	subs := []models.EventSubmission{
		approvedSubmission(1, 1, 92, "Green Valley School", "Mumbai Karuna Kendra", testNow.AddDate(0, 0, -1)),
		approvedSubmission(2, 1, 88, "Green Valley School", "Mumbai Karuna Kendra", testNow.AddDate(0, 0, -2)),
		approvedSubmission(3, 1, 95, "Green Valley School", "Mumbai Karuna Kendra", testNow.AddDate(0, 0, -3)),
	}

	entries := AggregateLeaderboard(subs, LeaderboardFilter{Now: testNow})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.TotalScore != 275 {
		t.Errorf("total score = %d, want 275", e.TotalScore)
	}
	if e.SubmissionsCount != 3 {
		t.Errorf("submissions count = %d, want 3", e.SubmissionsCount)
	}
	if e.AverageScore != 92 {
		t.Errorf("average score = %d, want 92", e.AverageScore)
	}
	if e.Rank != 1 {
		t.Errorf("rank = %d, want 1", e.Rank)
	}
}

func TestAggregateLeaderboardSkipsUnscoredAndUnapproved(t *testing.T) {
	pending := approvedSubmission(1, 1, 90, "Green Valley School", "", testNow)
	pending.Status = models.SubmissionStatusPending

	unscored := approvedSubmission(2, 2, 0, "Hillside Academy", "", testNow)
	unscored.Score = nil

	entries := AggregateLeaderboard([]models.EventSubmission{pending, unscored}, LeaderboardFilter{Now: testNow})
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %d", len(entries))
	}
}

func TestAggregateLeaderboardDeterministicOrder(t *testing.T) {
	subs := []models.EventSubmission{
		approvedSubmission(1, 1, 85, "Green Valley School", "", testNow.AddDate(0, 0, -1)),
		approvedSubmission(2, 2, 85, "Hillside Academy", "", testNow.AddDate(0, 0, -1)),
		approvedSubmission(3, 2, 85, "Hillside Academy", "", testNow.AddDate(0, 0, -2)),
		approvedSubmission(4, 3, 90, "Riverside School", "", testNow.AddDate(0, 0, -1)),
	}

	entries := AggregateLeaderboard(subs, LeaderboardFilter{Now: testNow})
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Riverside leads on average; Hillside and Green Valley tie on average 85
	// but Hillside has the higher total.
	wantOrder := []string{"Riverside School", "Hillside Academy", "Green Valley School"}
	for i, want := range wantOrder {
		if entries[i].SchoolName != want {
			t.Errorf("position %d = %s, want %s", i+1, entries[i].SchoolName, want)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("rank at position %d = %d, want %d", i, entries[i].Rank, i+1)
		}
	}
}

func TestAggregateLeaderboardIdempotent(t *testing.T) {
	subs := []models.EventSubmission{
		approvedSubmission(1, 1, 72, "Green Valley School", "Pune Karuna Kendra", testNow.AddDate(0, 0, -4)),
		approvedSubmission(2, 2, 91, "Hillside Academy", "Mumbai Karuna Kendra", testNow.AddDate(0, 0, -3)),
		approvedSubmission(3, 1, 64, "Green Valley School", "Pune Karuna Kendra", testNow.AddDate(0, 0, -2)),
	}

	first := AggregateLeaderboard(subs, LeaderboardFilter{Now: testNow})
	second := AggregateLeaderboard(subs, LeaderboardFilter{Now: testNow})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestAggregateLeaderboardWindowAndChapter(t *testing.T) {
	subs := []models.EventSubmission{
		approvedSubmission(1, 1, 80, "Green Valley School", "Mumbai Karuna Kendra", testNow.AddDate(0, 0, -2)),
		// Outside the one-week window
		approvedSubmission(2, 2, 95, "Hillside Academy", "Mumbai Karuna Kendra", testNow.AddDate(0, 0, -20)),
		// Different chapter
		approvedSubmission(3, 3, 99, "Riverside School", "Pune Karuna Kendra", testNow.AddDate(0, 0, -1)),
	}

	entries := AggregateLeaderboard(subs, LeaderboardFilter{
		Window:  WindowWeek,
		Chapter: "Mumbai Karuna Kendra",
		Now:     testNow,
	})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].SchoolName != "Green Valley School" {
		t.Errorf("entry = %s, want Green Valley School", entries[0].SchoolName)
	}
}

func TestAggregateLeaderboardEmptyInput(t *testing.T) {
	entries := AggregateLeaderboard(nil, LeaderboardFilter{Now: testNow})
	if len(entries) != 0 {
		t.Fatalf("expected empty leaderboard, got %d entries", len(entries))
	}
}

func TestWindowStart(t *testing.T) {
	tests := []struct {
		window string
		want   time.Time
		wantOK bool
	}{
		{WindowWeek, testNow.AddDate(0, 0, -7), true},
		{WindowMonth, testNow.AddDate(0, -1, 0), true},
		{WindowQuarter, testNow.AddDate(0, -3, 0), true},
		{WindowYear, testNow.AddDate(-1, 0, 0), true},
		{"", time.Time{}, false},
		{"decade", time.Time{}, false},
	}

	for _, tt := range tests {
		got, ok := WindowStart(tt.window, testNow)
		if ok != tt.wantOK || !got.Equal(tt.want) {
			t.Errorf("WindowStart(%q) = (%v, %v), want (%v, %v)", tt.window, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRankSubmissionsOrdering(t *testing.T) {
	// Scores [null, 40, 95, 95, 70] sorted descending with nulls as 0:
	// [95, 95, 70, 40, null] with ranks 1..5. The two 95s break the tie on
	// submitted time ascending.
	early := testNow.AddDate(0, 0, -5)
	late := testNow.AddDate(0, 0, -1)

	subs := []models.EventSubmission{
		approvedSubmission(1, 1, 40, "A School", "", late),
		approvedSubmission(2, 2, 95, "B School", "", late),
		approvedSubmission(3, 3, 95, "C School", "", early),
		approvedSubmission(4, 4, 70, "D School", "", late),
	}
	unscored := approvedSubmission(5, 5, 0, "E School", "", late)
	unscored.Score = nil
	subs = append(subs, unscored)

	rows := RankSubmissions(subs, ReportFilter{Now: testNow})
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}

	wantIDs := []int{3, 2, 4, 1, 5} // 95(early), 95(late), 70, 40, null
	for i, want := range wantIDs {
		if rows[i].SubmissionID != want {
			t.Errorf("position %d: submission %d, want %d", i, rows[i].SubmissionID, want)
		}
		if rows[i].Rank != i+1 {
			t.Errorf("position %d: rank %d, want %d", i, rows[i].Rank, i+1)
		}
	}
}

func TestRankSubmissionsConjunctiveFilters(t *testing.T) {
	match := approvedSubmission(1, 1, 85, "St. Mary's School", "Mumbai Karuna Kendra", testNow.AddDate(0, 0, -1))
	wrongStatus := approvedSubmission(2, 2, 85, "St. Mary's School", "Mumbai Karuna Kendra", testNow.AddDate(0, 0, -1))
	wrongStatus.Status = models.SubmissionStatusPending
	wrongChapter := approvedSubmission(3, 3, 85, "St. Mary's School", "Pune Karuna Kendra", testNow.AddDate(0, 0, -1))
	wrongName := approvedSubmission(4, 4, 85, "Hillside Academy", "Mumbai Karuna Kendra", testNow.AddDate(0, 0, -1))

	rows := RankSubmissions(
		[]models.EventSubmission{match, wrongStatus, wrongChapter, wrongName},
		ReportFilter{
			Search:  "st. mary",
			Status:  models.SubmissionStatusApproved,
			Chapter: "Mumbai Karuna Kendra",
			Now:     testNow,
		},
	)
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 row, got %d", len(rows))
	}
	if rows[0].SubmissionID != 1 {
		t.Errorf("matched submission %d, want 1", rows[0].SubmissionID)
	}
}

func TestFilterSubmissionsConjunctive(t *testing.T) {
	match := approvedSubmission(1, 1, 85, "St. Mary's School", "Mumbai Karuna Kendra", testNow)
	wrongChapter := approvedSubmission(2, 2, 85, "St. Mary's School", "Pune Karuna Kendra", testNow)
	wrongName := approvedSubmission(3, 3, 85, "Hillside Academy", "Mumbai Karuna Kendra", testNow)
	subs := []models.EventSubmission{match, wrongChapter, wrongName}

	filtered := FilterSubmissions(subs, "st. mary", "Mumbai Karuna Kendra")
	if len(filtered) != 1 {
		t.Fatalf("expected exactly 1 submission, got %d", len(filtered))
	}
	if filtered[0].SubmissionID != 1 {
		t.Errorf("matched submission %d, want 1", filtered[0].SubmissionID)
	}

	// Search alone matches KC number and event title too
	byKC := FilterSubmissions(subs, "KC-2025-0002", "")
	if len(byKC) != 1 || byKC[0].SubmissionID != 2 {
		t.Errorf("KC number search matched %d rows, want submission 2 only", len(byKC))
	}

	// Empty filters pass everything through unchanged
	all := FilterSubmissions(subs, "", "")
	if len(all) != 3 {
		t.Errorf("empty filters returned %d rows, want 3", len(all))
	}
}

func TestRankSubmissionsSearchFields(t *testing.T) {
	sub := approvedSubmission(1, 7, 88, "Green Valley School", "", testNow.AddDate(0, 0, -1))
	sub.Event.Title = "Coastal Cleanup Drive"

	for _, term := range []string{"green valley", "KC-2025-0007", "cleanup"} {
		rows := RankSubmissions([]models.EventSubmission{sub}, ReportFilter{Search: term, Now: testNow})
		if len(rows) != 1 {
			t.Errorf("search %q matched %d rows, want 1", term, len(rows))
		}
	}

	rows := RankSubmissions([]models.EventSubmission{sub}, ReportFilter{Search: "marathon", Now: testNow})
	if len(rows) != 0 {
		t.Errorf("search %q matched %d rows, want 0", "marathon", len(rows))
	}
}
