// file: internals/features/finance/invoices/service/payment_service.go
package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	bookingModel "sukaza_backend/internals/features/bookings/booking/model"
	model "sukaza_backend/internals/features/finance/invoices/model"
)

var SnapClient snap.Client

// InitMidtrans initializes the Midtrans Snap client with the server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GeneratePaymentLink creates a Snap transaction for an issued invoice and
// returns the redirect URL the guest pays through. Amounts are sent in the
// gateway's integer minor-unit convention.
func GeneratePaymentLink(inv *model.InvoiceModel, booking *bookingModel.BookingModel) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  "INV-" + inv.InvoiceID.String(),
			GrossAmt: inv.InvoiceTotalAmount.Round(0).IntPart(),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: booking.BookingGuestName,
		},
	}
	if booking.BookingGuestEmail != nil {
		req.CustomerDetail.Email = *booking.BookingGuestEmail
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.RedirectURL, nil
}
