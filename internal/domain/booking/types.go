package booking

// DepositTrackState is derived from the deposit-side lifecycle markers.
// The security deposit is a chain of preauthorization holds that is
// either still live, permanently blocked from renewing, or released.
type DepositTrackState string

const (
	DepositTrackHeld      DepositTrackState = "held"
	DepositTrackBlocked   DepositTrackState = "blocked"
	DepositTrackCancelled DepositTrackState = "cancelled"
)

// PaymentTrackState is derived from the payment-side lifecycle markers.
// Each state implies every earlier one: funds cannot be transferred
// before capture nor paid out before transfer.
type PaymentTrackState string

const (
	PaymentTrackAuthorized  PaymentTrackState = "authorized"
	PaymentTrackCaptured    PaymentTrackState = "captured"
	PaymentTrackTransferred PaymentTrackState = "transferred"
	PaymentTrackPaidOut     PaymentTrackState = "paid_out"
	PaymentTrackCancelled   PaymentTrackState = "cancelled"
)
