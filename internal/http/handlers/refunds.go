package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PendingRefunds lists bookings still owed money, newest first.
func PendingRefunds(c *gin.Context) {
	svc := bookingService(c)
	out, err := svc.RefundQueue(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out, "count": len(out)})
}
