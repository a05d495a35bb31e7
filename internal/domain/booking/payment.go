package booking

import (
	"fmt"
	"time"
)

const CurrencyINR = "INR"

// Payment is an informational record; no gateway is involved.
type Payment struct {
	Method        PaymentMethod
	TransactionID string
	Amount        int64
	Currency      string
	Status        PaymentStatus
	PaidAt        *time.Time
}

// NewPayment records the charge for amount. Cash on delivery stays pending.
func NewPayment(method PaymentMethod, amount int64, now time.Time) Payment {
	p := Payment{
		Method:        method,
		TransactionID: fmt.Sprintf("TXN_%d", now.UnixMilli()),
		Amount:        amount,
		Currency:      CurrencyINR,
		Status:        PaymentSucceeded,
	}
	if method == PaymentCOD {
		p.Status = PaymentPending
		return p
	}
	paidAt := now
	p.PaidAt = &paidAt
	return p
}
