package pagination

import "testing"

func TestParamsValidate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 0}
	p.Validate()
	if p.Page != 1 || p.PerPage != 10 {
		t.Errorf("Validate() = page %d per_page %d, want 1/10", p.Page, p.PerPage)
	}

	p = &PaginationParams{Page: 3, PerPage: 500}
	p.Validate()
	if p.PerPage != 100 {
		t.Errorf("PerPage clamp = %d, want 100", p.PerPage)
	}
	if p.Page != 3 {
		t.Errorf("Page = %d, want 3", p.Page)
	}
}

func TestOffset(t *testing.T) {
	p := &PaginationParams{Page: 4, PerPage: 10}
	if got := p.Offset(); got != 30 {
		t.Errorf("Offset() = %d, want 30", got)
	}
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 10, 25)
	if pg.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Errorf("HasNext/HasPrev = %v/%v, want true/true", pg.HasNext, pg.HasPrev)
	}

	pg = NewPagination(1, 10, 0)
	if pg.HasNext || pg.HasPrev {
		t.Errorf("empty result should have no next/prev")
	}
}
