package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/okushnir/checkline-api/internal/domain/enum"
)

func newFilterContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/receipts?"+query, nil)
	return c
}

func TestParseReceiptFiltersDefaults(t *testing.T) {
	params, err := parseReceiptFilters(newFilterContext(t, ""))
	if err != nil {
		t.Fatalf("parseReceiptFilters() error = %v", err)
	}
	if params.Pagination.Page != 1 || params.Pagination.PerPage != 10 {
		t.Errorf("pagination = %d/%d, want 1/10", params.Pagination.Page, params.Pagination.PerPage)
	}
	if params.StartDate != nil || params.EndDate != nil || params.PaymentType != nil || params.MinTotal != nil || params.MaxTotal != nil {
		t.Error("filters should be nil when not supplied")
	}
}

func TestParseReceiptFiltersAll(t *testing.T) {
	query := "page=2&per_page=25&start_date=2024-07-01&end_date=2024-07-31T23:59:59Z&payment_type=card&min_total=10.5&max_total=200"
	params, err := parseReceiptFilters(newFilterContext(t, query))
	if err != nil {
		t.Fatalf("parseReceiptFilters() error = %v", err)
	}

	if params.Pagination.Page != 2 || params.Pagination.PerPage != 25 {
		t.Errorf("pagination = %d/%d, want 2/25", params.Pagination.Page, params.Pagination.PerPage)
	}
	wantStart := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	if params.StartDate == nil || !params.StartDate.Equal(wantStart) {
		t.Errorf("StartDate = %v, want %v", params.StartDate, wantStart)
	}
	if params.EndDate == nil || params.EndDate.Day() != 31 {
		t.Errorf("EndDate = %v, want July 31", params.EndDate)
	}
	if params.PaymentType == nil || *params.PaymentType != enum.PaymentTypeCard {
		t.Errorf("PaymentType = %v, want card", params.PaymentType)
	}
	if params.MinTotal == nil || params.MinTotal.String() != "10.5" {
		t.Errorf("MinTotal = %v, want 10.5", params.MinTotal)
	}
	if params.MaxTotal == nil || params.MaxTotal.String() != "200" {
		t.Errorf("MaxTotal = %v, want 200", params.MaxTotal)
	}
}

func TestParseReceiptFiltersInvalid(t *testing.T) {
	cases := []string{
		"page=abc",
		"per_page=abc",
		"start_date=July",
		"end_date=31-07-2024",
		"payment_type=check",
		"min_total=ten",
		"max_total=NaN-",
	}
	for _, query := range cases {
		if _, err := parseReceiptFilters(newFilterContext(t, query)); err == nil {
			t.Errorf("parseReceiptFilters(%q) should fail", query)
		}
	}
}
