package validations

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindStatus(t *testing.T, body any, dst any) int {
	t.Helper()
	gin.SetMode(gin.TestMode)
	RegisterCustom()

	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")

	if err := c.ShouldBindJSON(dst); err != nil {
		return http.StatusBadRequest
	}
	return http.StatusOK
}

func validBookingBody() map[string]any {
	return map[string]any{
		"clientName":  "Asha Verma",
		"source":      "NDLS",
		"destination": "BCT",
		"journeyDate": "2025-03-10",
		"classType":   "3A",
		"bookingType": "Tatkal",
		"passengers": []map[string]any{
			{"name": "Asha Verma", "age": 34, "gender": "F"},
		},
	}
}

func TestCreateBookingRequestValid(t *testing.T) {
	var req CreateBookingRequest
	if got := bindStatus(t, validBookingBody(), &req); got != http.StatusOK {
		t.Fatalf("bind failed for valid body")
	}
}

func TestCreateBookingRequestRejectsBadDate(t *testing.T) {
	body := validBookingBody()
	body["journeyDate"] = "10-03-2025"
	var req CreateBookingRequest
	if got := bindStatus(t, body, &req); got != http.StatusBadRequest {
		t.Fatalf("expected rejection for non YYYY-MM-DD journeyDate")
	}
}

func TestCreateBookingRequestRequiresPassengers(t *testing.T) {
	body := validBookingBody()
	body["passengers"] = []map[string]any{}
	var req CreateBookingRequest
	if got := bindStatus(t, body, &req); got != http.StatusBadRequest {
		t.Fatalf("expected rejection for empty passenger list")
	}
}

func TestCreateRecordRequestRejectsUnknownMethod(t *testing.T) {
	body := map[string]any{
		"bookingIds":            []string{"65f000000000000000000001"},
		"bookedBy":              "Ravi",
		"bookedAccountUsername": "pool-account-1",
		"amountCharged":         1540.0,
		"methodUsed":            "Cheque",
	}
	var req CreateRecordRequest
	if got := bindStatus(t, body, &req); got != http.StatusBadRequest {
		t.Fatalf("expected rejection for unknown payment method")
	}
}
