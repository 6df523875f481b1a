package domain

import "fmt"

// ErrValidation reports an invalid input, naming the offending field.
type ErrValidation struct {
	Field  string
	Reason string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrUnknownTaxYear reports a rate table lookup for an unpublished tax year.
// Lookups never fall back to a neighbouring year.
type ErrUnknownTaxYear struct {
	TaxYear string
}

func (e *ErrUnknownTaxYear) Error() string {
	return fmt.Sprintf("no rate table published for tax year %q", e.TaxYear)
}

// ErrLedger wraps a failure of the external ledger collaborator. The whole
// report computation is aborted; retries are the caller's business.
type ErrLedger struct {
	AccountKey string
	Err        error
}

func (e *ErrLedger) Error() string {
	return fmt.Sprintf("ledger aggregation failed for account %q: %v", e.AccountKey, e.Err)
}

func (e *ErrLedger) Unwrap() error { return e.Err }
