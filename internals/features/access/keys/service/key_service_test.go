// file: internals/features/access/keys/service/key_service_test.go
package service_test

import (
	"errors"
	"testing"

	model "sukaza_backend/internals/features/access/keys/model"
	"sukaza_backend/internals/features/access/keys/service"
)

func TestApplyTransferCheckout(t *testing.T) {
	next, err := service.ApplyTransfer(2, 3, model.TransferCheckout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if next != 1 {
		t.Fatalf("available = %d, want 1", next)
	}
}

func TestApplyTransferCheckoutNeverBelowZero(t *testing.T) {
	next, err := service.ApplyTransfer(0, 3, model.TransferCheckout)
	if !errors.Is(err, service.ErrNoneAvailable) {
		t.Fatalf("expected ErrNoneAvailable, got %v", err)
	}
	if next != 0 {
		t.Fatalf("available changed on rejected checkout: %d", next)
	}
}

func TestApplyTransferCheckinCappedAtTotal(t *testing.T) {
	next, err := service.ApplyTransfer(3, 3, model.TransferCheckin)
	if !errors.Is(err, service.ErrAllAccountedFor) {
		t.Fatalf("expected ErrAllAccountedFor, got %v", err)
	}
	if next != 3 {
		t.Fatalf("available changed on rejected checkin: %d", next)
	}
}

func TestApplyTransferRoundTrip(t *testing.T) {
	available := 2
	var err error
	available, err = service.ApplyTransfer(available, 2, model.TransferCheckout)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	available, err = service.ApplyTransfer(available, 2, model.TransferCheckin)
	if err != nil {
		t.Fatalf("checkin: %v", err)
	}
	if available != 2 {
		t.Fatalf("round trip should restore availability, got %d", available)
	}
}
