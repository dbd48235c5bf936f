package services

import (
	"context"
	"strings"
	"testing"

	"railbook/internal/domain"
	"railbook/internal/domain/models"
)

func TestReceiptServiceGenerate(t *testing.T) {
	loader := func(_ context.Context, id string) (receiptData, error) {
		return receiptData{
			BookingID:     id,
			ClientName:    "Ravi Kumar",
			Source:        "Chennai",
			Destination:   "Delhi",
			JourneyDate:   "2025-07-01",
			ClassType:     "3A",
			BookingType:   domain.BookingTatkal,
			Passengers:    2,
			Status:        domain.StatusBooked,
			AmountCharged: 3240.50,
			MethodUsed:    domain.MethodUPI,
			BookedBy:      "op1",
			AccountUsed:   "agent1",
		}, nil
	}
	svc := ReceiptService{Loader: loader}

	pdf, filename, err := svc.GenerateReceipt(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("GenerateReceipt error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("empty PDF output")
	}
	if !strings.HasPrefix(filename, "RECEIPT_abc123") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}

func TestReceiptServiceRefundVoucher(t *testing.T) {
	loader := func(_ context.Context, id string) (receiptData, error) {
		return receiptData{
			BookingID:   id,
			ClientName:  "Ravi Kumar",
			Source:      "Chennai",
			Destination: "Delhi",
			Status:      domain.StatusCNFCancelled,
			Refund: &models.RefundDetails{
				Amount: 1800, Date: "2025-07-05", Method: domain.MethodWallet, AccountID: "agent1",
			},
		}, nil
	}
	svc := ReceiptService{Loader: loader}

	pdf, filename, err := svc.GenerateRefundVoucher(context.Background(), "abc123")
	if err != nil {
		t.Fatalf("GenerateRefundVoucher error: %v", err)
	}
	if len(pdf) == 0 || !strings.HasPrefix(filename, "REFUND_abc123") {
		t.Fatalf("unexpected voucher output: %d bytes, %q", len(pdf), filename)
	}
}
