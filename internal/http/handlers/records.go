package handlers

import (
	"net/http"

	"railbook/internal/domain/models"
	"railbook/internal/http/middleware"
	"railbook/internal/repositories"
	"railbook/internal/utils"
	"railbook/internal/validations"

	"github.com/gin-gonic/gin"
)

func ListRecords(c *gin.Context) {
	repo := repositories.BookingRecordRepository{}
	recs, err := repo.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs, "count": len(recs)})
}

func ListRecordsForBooking(c *gin.Context) {
	repo := repositories.BookingRecordRepository{}
	recs, err := repo.ListByBookingID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": recs, "count": len(recs)})
}

// CreateRecord stores a payment receipt and bumps the paying account's
// last-booked date. The bump is best effort: a missing account only logs.
func CreateRecord(c *gin.Context) {
	var req validations.CreateRecordRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	rec := models.BookingRecord{
		BookingIDs:            req.BookingIDs,
		BookedBy:              req.BookedBy,
		BookedAccountUsername: req.BookedAccountUsername,
		AmountCharged:         req.AmountCharged,
		MethodUsed:            req.MethodUsed,
	}
	repo := repositories.BookingRecordRepository{}
	if err := repo.Create(c.Request.Context(), &rec); err != nil {
		RespondDomainError(c, err)
		return
	}

	accounts := repositories.AccountRepository{}
	if err := accounts.TouchLastBooked(c.Request.Context(), req.BookedAccountUsername, rec.CreatedAt); err != nil {
		utils.LogEvent(middleware.GetRequestID(c), "records", "touch_last_booked",
			"could not update account "+req.BookedAccountUsername+": "+err.Error())
	}

	c.JSON(http.StatusCreated, rec)
}
