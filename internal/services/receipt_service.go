package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"railbook/internal/domain/models"
	"railbook/internal/repositories"
	"railbook/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders booking receipts and refund vouchers as PDFs.
type ReceiptService struct {
	Bookings  repositories.BookingRepository
	Records   repositories.BookingRecordRepository
	RequestID string
	Loader    func(context.Context, string) (receiptData, error)
}

type receiptData struct {
	BookingID   string
	ClientName  string
	Source      string
	Destination string
	JourneyDate string
	ClassType   string
	BookingType string
	Passengers  int
	Status      string

	// payment receipt, zero-valued when no record exists yet
	AmountCharged float64
	MethodUsed    string
	BookedBy      string
	AccountUsed   string

	Refund *models.RefundDetails
}

// GenerateReceipt builds a PDF receipt for a booking and its payment record.
func (s ReceiptService) GenerateReceipt(ctx context.Context, bookingID string) ([]byte, string, error) {
	data, err := s.loadReceiptData(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", "booking_id="+bookingID)
	return buildReceiptPDF(data)
}

// GenerateRefundVoucher builds a PDF voucher for a refunded booking.
func (s ReceiptService) GenerateRefundVoucher(ctx context.Context, bookingID string) ([]byte, string, error) {
	data, err := s.loadReceiptData(ctx, bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "receipt", "refund_voucher", "booking_id="+bookingID)
	return buildRefundVoucherPDF(data)
}

func (s ReceiptService) loadReceiptData(ctx context.Context, bookingID string) (receiptData, error) {
	if s.Loader != nil {
		return s.Loader(ctx, bookingID)
	}

	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return receiptData{}, err
	}
	out := receiptData{
		BookingID:   bookingID,
		ClientName:  b.ClientName,
		Source:      b.Source,
		Destination: b.Destination,
		JourneyDate: b.JourneyDate,
		ClassType:   b.ClassType,
		BookingType: b.BookingType,
		Passengers:  len(b.Passengers),
		Status:      b.Status,
		Refund:      b.RefundDetails,
	}

	// best effort: absence of a payment record still yields a receipt
	if recs, err := s.Records.ListByBookingID(ctx, bookingID); err == nil && len(recs) > 0 {
		rec := recs[0]
		out.AmountCharged = rec.AmountCharged
		out.MethodUsed = rec.MethodUsed
		out.BookedBy = rec.BookedBy
		out.AccountUsed = rec.BookedAccountUsername
	}
	return out, nil
}

func buildReceiptPDF(d receiptData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking      : #%s", d.BookingID),
		fmt.Sprintf("Client       : %s", orDash(d.ClientName)),
		fmt.Sprintf("Route        : %s -> %s", orDash(d.Source), orDash(d.Destination)),
		fmt.Sprintf("Journey Date : %s", orDash(d.JourneyDate)),
		fmt.Sprintf("Class        : %s (%s)", orDash(d.ClassType), orDash(d.BookingType)),
		fmt.Sprintf("Passengers   : %d", d.Passengers),
		fmt.Sprintf("Status       : %s", orDash(d.Status)),
	}
	if d.AmountCharged > 0 {
		lines = append(lines,
			fmt.Sprintf("Amount       : %s", utils.FormatINR(d.AmountCharged)),
			fmt.Sprintf("Paid Via     : %s", orDash(d.MethodUsed)),
			fmt.Sprintf("Booked By    : %s", orDash(d.BookedBy)),
			fmt.Sprintf("Account Used : %s", orDash(d.AccountUsed)),
		)
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "This receipt reflects the booking request as recorded; ticket confirmation is subject to railway availability.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("RECEIPT_%s_%s.pdf", d.BookingID, safeFilenamePart(d.ClientName))
	return buf.Bytes(), filename, nil
}

func buildRefundVoucherPDF(d receiptData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Refund Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "REFUND VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Booking      : #%s", d.BookingID))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Client       : %s", orDash(d.ClientName)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Route        : %s -> %s", orDash(d.Source), orDash(d.Destination)))
	pdf.Ln(7)
	pdf.Cell(0, 7, fmt.Sprintf("Status       : %s", orDash(d.Status)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	if d.Refund != nil {
		pdf.Cell(0, 7, "Refund Details:")
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 12)
		pdf.Cell(0, 7, fmt.Sprintf("Amount   : %s", utils.FormatINR(d.Refund.Amount)))
		pdf.Ln(7)
		pdf.Cell(0, 7, fmt.Sprintf("Date     : %s", orDash(d.Refund.Date)))
		pdf.Ln(7)
		pdf.Cell(0, 7, fmt.Sprintf("Method   : %s", orDash(d.Refund.Method)))
		pdf.Ln(7)
		pdf.Cell(0, 7, fmt.Sprintf("Account  : %s", orDash(d.Refund.AccountID)))
		pdf.Ln(7)
	} else {
		pdf.Cell(0, 7, "Refund pending - no refund recorded yet.")
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("REFUND_%s_%s.pdf", d.BookingID, safeFilenamePart(d.ClientName))
	return buf.Bytes(), filename, nil
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "booking"
	}
	repl := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-")
	return repl.Replace(s)
}
