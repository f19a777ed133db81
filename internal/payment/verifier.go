// Package payment names the fake gateway integration point. Deposits in the
// original demo were trusted on sight; the stub verifier keeps that behavior
// behind an interface a real UPI/gateway client could replace.
package payment

import (
	"context"
	"errors"
)

var ErrVerificationFailed = errors.New("payment verification failed")

// PaymentVerifier checks that a claimed external payment really happened.
type PaymentVerifier interface {
	Verify(ctx context.Context, txnID string, amount int64) error
}

// StubVerifier accepts any non-empty transaction reference.
type StubVerifier struct{}

func NewStubVerifier() *StubVerifier {
	return &StubVerifier{}
}

func (v *StubVerifier) Verify(_ context.Context, txnID string, amount int64) error {
	if txnID == "" || amount <= 0 {
		return ErrVerificationFailed
	}
	return nil
}
