package validations

// Request payloads for the REST surface. Validation happens through gin's
// binding tags plus the custom dateymd rule for calendar-date fields.

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type PassengerRequest struct {
	Name   string `json:"name" binding:"required"`
	Age    int    `json:"age" binding:"required,gte=1,lte=120"`
	Gender string `json:"gender" binding:"required,oneof=M F O"`
	Berth  bool   `json:"berth"`
}

type CreateBookingRequest struct {
	ClientName      string             `json:"clientName" binding:"required"`
	Source          string             `json:"source" binding:"required"`
	Destination     string             `json:"destination" binding:"required"`
	JourneyDate     string             `json:"journeyDate" binding:"required,dateymd"`
	BookingDate     string             `json:"bookingDate" binding:"omitempty,dateymd"`
	Passengers      []PassengerRequest `json:"passengers" binding:"required,min=1,dive"`
	ClassType       string             `json:"classType" binding:"required"`
	BookingType     string             `json:"bookingType" binding:"required,oneof=Tatkal General"`
	TrainPreference string             `json:"trainPreference"`
	TimePreference  string             `json:"timePreference"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Reopen bool   `json:"reopen"`
}

type RefundRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Date      string  `json:"date" binding:"required,dateymd"`
	Method    string  `json:"method" binding:"required"`
	AccountID string  `json:"accountId"`
}

type CreateAccountRequest struct {
	Username     string  `json:"username" binding:"required,min=3"`
	Password     string  `json:"password" binding:"required"`
	WalletAmount float64 `json:"walletAmount" binding:"gte=0"`
	CreatedAt    any     `json:"createdAt"` // optional import timestamp, strict-parsed
}

type UpdateWalletRequest struct {
	WalletAmount float64 `json:"walletAmount" binding:"gte=0"`
}

type CreateHandlerRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateRecordRequest struct {
	BookingIDs            []string `json:"bookingIds" binding:"required,min=1"`
	BookedBy              string   `json:"bookedBy" binding:"required"`
	BookedAccountUsername string   `json:"bookedAccountUsername" binding:"required"`
	AmountCharged         float64  `json:"amountCharged" binding:"required,gt=0"`
	MethodUsed            string   `json:"methodUsed" binding:"required,oneof=Wallet UPI Others"`
}
