package ticket

import (
	"errors"
	"testing"

	"github.com/iliyamo/tickethub/internal/model"
)

func fixture() []model.Ticket {
	return []model.Ticket{
		{ID: 1, Title: "Fix projector", Status: "open", Priority: "medium", Assignee: "emilys"},
		{ID: 2, Title: "Order POPCORN stock", Status: "closed", Priority: "high", Assignee: "emilys"},
		{ID: 3, Title: "Clean hall B", Status: "open", Priority: "low", Assignee: "michaelw"},
		{ID: 4, Title: "Restock popcorn butter", Status: "open", Priority: "medium", Assignee: "emilys"},
	}
}

func ids(ts []model.Ticket) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		status, priority string
		want             []int
	}{
		{"none", "", "", []int{1, 2, 3, 4}},
		{"status only", "open", "", []int{1, 3, 4}},
		{"priority only", "", "medium", []int{1, 4}},
		{"both ANDed", "open", "medium", []int{1, 4}},
		{"no match", "closed", "low", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(fixture(), tc.status, tc.priority))
			if len(got) != len(tc.want) {
				t.Fatalf("got ids %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got ids %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	got := ids(Search(fixture(), "popcorn"))
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("search ids = %v, want [2 4]", got)
	}
	if n := len(Search(fixture(), "zzz")); n != 0 {
		t.Fatalf("expected empty result, got %d", n)
	}
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		page, size int
		want       []int
	}{
		{"first page", 1, 2, []int{1, 2}},
		{"second page", 2, 2, []int{3, 4}},
		{"partial last page", 2, 3, []int{4}},
		{"page beyond range", 9, 10, []int{}},
		{"size beyond range", 1, 50, []int{1, 2, 3, 4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(fixture(), tc.page, tc.size)
			if got == nil {
				t.Fatal("Paginate returned nil, want empty or populated slice")
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %d tickets, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i].ID != tc.want[i] {
					t.Fatalf("got ids %v, want %v", ids(got), tc.want)
				}
			}
		})
	}
}

func TestByID(t *testing.T) {
	t.Parallel()

	got, err := ByID(fixture(), 3)
	if err != nil {
		t.Fatalf("ByID error: %v", err)
	}
	if got.Title != "Clean hall B" {
		t.Fatalf("title = %q", got.Title)
	}

	_, err = ByID(fixture(), 404)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	stats := Aggregate(fixture())
	if stats.TotalTickets != 4 || stats.Open != 3 || stats.Closed != 1 {
		t.Fatalf("counts = %d/%d/%d, want 4/3/1", stats.TotalTickets, stats.Open, stats.Closed)
	}
	if stats.Priorities["medium"] != 2 || stats.Priorities["high"] != 1 || stats.Priorities["low"] != 1 {
		t.Fatalf("priority distribution = %v", stats.Priorities)
	}
	if stats.TopAssignee == nil || *stats.TopAssignee != "emilys" {
		t.Fatalf("top assignee = %v, want emilys", stats.TopAssignee)
	}
}

func TestAggregate_TieBreaksOnFirstEncountered(t *testing.T) {
	t.Parallel()

	// alpha and beta both finish at two tickets; alpha entered the tally
	// first and must win even though beta reaches the maximum earlier.
	tickets := []model.Ticket{
		{ID: 1, Status: "open", Priority: "low", Assignee: "alpha"},
		{ID: 2, Status: "open", Priority: "low", Assignee: "beta"},
		{ID: 3, Status: "open", Priority: "low", Assignee: "beta"},
		{ID: 4, Status: "open", Priority: "low", Assignee: "alpha"},
	}
	stats := Aggregate(tickets)
	if stats.TopAssignee == nil || *stats.TopAssignee != "alpha" {
		t.Fatalf("top assignee = %v, want alpha (first encountered among the tied)", stats.TopAssignee)
	}

	// Sanity: a later assignee with a strictly higher count still wins.
	tickets = append(tickets, model.Ticket{ID: 5, Status: "open", Priority: "low", Assignee: "beta"})
	stats = Aggregate(tickets)
	if stats.TopAssignee == nil || *stats.TopAssignee != "beta" {
		t.Fatalf("top assignee = %v, want beta (strictly highest count)", stats.TopAssignee)
	}
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	stats := Aggregate(nil)
	if stats.TotalTickets != 0 || stats.Open != 0 || stats.Closed != 0 {
		t.Fatalf("expected zero counts, got %+v", stats)
	}
	if stats.TopAssignee != nil {
		t.Fatalf("top assignee = %q, want nil", *stats.TopAssignee)
	}
}
