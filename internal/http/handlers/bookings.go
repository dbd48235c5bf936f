package handlers

import (
	"net/http"
	"strconv"
	"time"

	"railbook/internal/domain/models"
	"railbook/internal/http/middleware"
	"railbook/internal/repositories"
	"railbook/internal/services"
	"railbook/internal/validations"

	"github.com/gin-gonic/gin"
)

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{
		Repo:      repositories.BookingRepository{},
		Records:   repositories.BookingRecordRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// ListBookings serves three read shapes from one endpoint:
//
//	?view=buckets      pending/completed display groups
//	?q=<text>          free-text search
//	?cursor=&limit=    newest-first paginated feed (the default)
func ListBookings(c *gin.Context) {
	svc := bookingService(c)
	ctx := c.Request.Context()

	if c.Query("view") == "buckets" {
		out, err := svc.Buckets(ctx)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
		return
	}

	if q := c.Query("q"); q != "" {
		out, err := svc.Find(ctx, q)
		if err != nil {
			RespondDomainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": out, "count": len(out)})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 100 {
			respondError(c, http.StatusBadRequest, "bad_request", "limit must be between 1 and 100", nil)
			return
		}
		limit = n
	}

	var cursor *time.Time
	if raw := c.Query("cursor"); raw != "" {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, "bad_request", "cursor must be an RFC3339 timestamp", nil)
			return
		}
		cursor = &t
	}

	page, err := svc.Feed(ctx, cursor, limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	resp := gin.H{
		"bookings": page.Items,
		"hasMore":  page.HasMore,
	}
	if page.NextCursor != nil {
		resp["nextCursor"] = page.NextCursor.Format(time.RFC3339Nano)
	}
	c.JSON(http.StatusOK, resp)
}

func GetBooking(c *gin.Context) {
	repo := repositories.BookingRepository{}
	b, err := repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func CreateBooking(c *gin.Context) {
	var req validations.CreateBookingRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	passengers := make([]models.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passengers = append(passengers, models.Passenger{
			Name:   p.Name,
			Age:    p.Age,
			Gender: p.Gender,
			Berth:  p.Berth,
		})
	}

	b := models.Booking{
		ClientName:      req.ClientName,
		Source:          req.Source,
		Destination:     req.Destination,
		JourneyDate:     req.JourneyDate,
		BookingDate:     req.BookingDate,
		Passengers:      passengers,
		ClassType:       req.ClassType,
		BookingType:     req.BookingType,
		TrainPreference: req.TrainPreference,
		TimePreference:  req.TimePreference,
	}

	repo := repositories.BookingRepository{}
	if err := repo.Create(c.Request.Context(), &b); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

func UpdateBooking(c *gin.Context) {
	var upd models.BookingUpdate
	if !BindJSONOrError(c, &upd) {
		return
	}

	repo := repositories.BookingRepository{}
	if err := repo.Update(c.Request.Context(), c.Param("id"), upd); err != nil {
		RespondDomainError(c, err)
		return
	}
	b, err := repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ChangeBookingStatus moves a booking through its lifecycle. Backward moves
// to Requested need an explicit reopen flag.
func ChangeBookingStatus(c *gin.Context) {
	var req validations.ChangeStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := bookingService(c)
	if err := svc.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status, req.Reopen); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "status updated", "status": req.Status})
}

// AttachBookingRefund records a completed refund, which permanently removes
// the booking from the pending-refund queue.
func AttachBookingRefund(c *gin.Context) {
	var req validations.RefundRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	rd := models.RefundDetails{
		Amount:    req.Amount,
		Date:      req.Date,
		Method:    req.Method,
		AccountID: req.AccountID,
	}
	svc := bookingService(c)
	if err := svc.AttachRefund(c.Request.Context(), c.Param("id"), rd); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "refund recorded"})
}

func DeleteBooking(c *gin.Context) {
	svc := bookingService(c)
	if err := svc.Remove(c.Request.Context(), c.Param("id")); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}
