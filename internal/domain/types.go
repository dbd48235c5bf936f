package domain

// Booking lifecycle statuses as stored. "Missed" can also appear as a
// view-time inference for past Requested bookings without ever being written.
const (
	StatusRequested     = "Requested"
	StatusBooked        = "Booked"
	StatusMissed        = "Missed"
	StatusFailedPaid    = "Booking Failed (Paid)"
	StatusFailedUnpaid  = "Booking Failed (Unpaid)"
	StatusCNFCancelled  = "CNF & Cancelled"
	StatusUserCancelled = "User Cancelled"
)

// Payment methods recorded on a BookingRecord.
const (
	MethodWallet = "Wallet"
	MethodUPI    = "UPI"
	MethodOthers = "Others"
)

// Booking types.
const (
	BookingTatkal  = "Tatkal"
	BookingGeneral = "General"
)

var knownStatuses = map[string]bool{
	StatusRequested:     true,
	StatusBooked:        true,
	StatusMissed:        true,
	StatusFailedPaid:    true,
	StatusFailedUnpaid:  true,
	StatusCNFCancelled:  true,
	StatusUserCancelled: true,
}

var knownMethods = map[string]bool{
	MethodWallet: true,
	MethodUPI:    true,
	MethodOthers: true,
}

func KnownStatus(s string) bool { return knownStatuses[s] }

func KnownMethod(m string) bool { return knownMethods[m] }

// TerminalStatus reports whether a status marks the end of a booking's
// lifecycle. Everything except Requested is terminal.
func TerminalStatus(s string) bool {
	return knownStatuses[s] && s != StatusRequested
}

// RefundEligible reports whether a booking in this status can owe the client
// money back: payment went through but no ticket outlived it.
func RefundEligible(s string) bool {
	return s == StatusFailedPaid || s == StatusCNFCancelled
}
