package params

import (
	"net/url"
	"testing"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		query      string
		wantLimit  int
		wantPage   int
		wantOffset int
	}{
		{"", 20, 1, 0},
		{"limit=10&page=3", 10, 3, 20},
		{"limit=0", 20, 1, 0},
		{"limit=-5", 20, 1, 0},
		{"limit=500", 100, 1, 0},
		{"limit=abc&page=xyz", 20, 1, 0},
		{"page=0", 20, 1, 0},
	}
	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.query)
		p := ParsePagination(q)
		if p.Limit != tt.wantLimit || p.Page != tt.wantPage || p.Offset != tt.wantOffset {
			t.Errorf("%q: got limit=%d page=%d offset=%d, want %d/%d/%d",
				tt.query, p.Limit, p.Page, p.Offset, tt.wantLimit, tt.wantPage, tt.wantOffset)
		}
	}
}

func TestComputeMeta(t *testing.T) {
	q, _ := url.ParseQuery("limit=10&page=2")
	p := ParsePagination(q)
	p.ComputeMeta(35)

	if p.TotalPages != 4 {
		t.Errorf("TotalPages: got %d, want 4", p.TotalPages)
	}
	if !p.HasNext || !p.HasPrev {
		t.Errorf("HasNext/HasPrev: got %v/%v, want true/true", p.HasNext, p.HasPrev)
	}

	p.Page = 4
	p.ComputeMeta(35)
	if p.HasNext {
		t.Error("page 4 of 35/10 should have no next page")
	}
}
