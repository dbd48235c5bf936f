package handlers

import (
	"net/http"

	"railbook/internal/http/middleware"
	"railbook/internal/repositories"
	"railbook/internal/services"

	"github.com/gin-gonic/gin"
)

func receiptService(c *gin.Context) services.ReceiptService {
	return services.ReceiptService{
		Bookings:  repositories.BookingRepository{},
		Records:   repositories.BookingRecordRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

func BookingReceipt(c *gin.Context) {
	svc := receiptService(c)
	pdf, filename, err := svc.GenerateReceipt(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func RefundVoucher(c *gin.Context) {
	svc := receiptService(c)
	pdf, filename, err := svc.GenerateRefundVoucher(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
