// Package ledger is the read model over all financial transactions
// recorded for one booking. A Ledger is rebuilt from the persisted
// records at the start of every orchestration call, mutated in memory as
// operations append entries, and discarded afterwards; only the appended
// records themselves are persisted.
package ledger

// Ledger answers the orchestrator's queries over one booking's records.
// Two query families exist on purpose: "last of kind" also returns
// superseded records (renewal chaining needs them), while the
// non-cancelled variants exclude anything with a reversal counterpart.
type Ledger struct {
	records  []Transaction
	reversed map[string]bool
}

// NewLedger builds the aggregate from the booking's records, oldest
// first, and derives the reversal index.
func NewLedger(records []Transaction) *Ledger {
	l := &Ledger{
		records:  make([]Transaction, 0, len(records)),
		reversed: make(map[string]bool, len(records)),
	}
	for _, tx := range records {
		l.Append(tx)
	}
	return l
}

// Append adds a record and keeps the reversal index current.
func (l *Ledger) Append(tx Transaction) {
	l.records = append(l.records, tx)
	if tx.IsReversal() && tx.ResourceID != "" {
		l.reversed[tx.ResourceID] = true
	}
}

// IsCancelled reports whether a reversal counterpart exists for the
// record, or the record carries the explicit gateway cancelled marker.
// This is a derived property, never a stored one. A reversal record is
// never cancelled itself, even though it shares the resource id of the
// record it reverses.
func (l *Ledger) IsCancelled(tx Transaction) bool {
	if tx.IsReversal() {
		return false
	}
	return tx.Cancelled || l.reversed[tx.ResourceID]
}

func (l *Ledger) All() []Transaction {
	out := make([]Transaction, len(l.records))
	copy(out, l.records)
	return out
}

// Deposit returns the most recent deposit preauthorization, cancelled or
// not. Existence checks must not depend on cancellation state.
func (l *Ledger) Deposit() *Transaction {
	return l.last(func(tx Transaction) bool {
		return tx.Action == ActionPreauthorization && tx.Label == LabelDeposit
	})
}

// LastRenewDeposit returns the most recent renewal preauthorization even
// when it has been superseded; the renewal chain links through it.
func (l *Ledger) LastRenewDeposit() *Transaction {
	return l.last(func(tx Transaction) bool {
		return tx.Action == ActionPreauthorization && tx.Label == LabelDepositRenew
	})
}

// Payin returns the most recent capture of the rental payment.
func (l *Ledger) Payin() *Transaction {
	return l.last(func(tx Transaction) bool {
		return tx.Action == ActionPayin && tx.Label == LabelPayment
	})
}

// Transfer returns the most recent wallet-to-wallet transfer.
func (l *Ledger) Transfer() *Transaction {
	return l.last(func(tx Transaction) bool {
		return tx.Action == ActionTransfer && tx.Label == LabelPayment
	})
}

// Payout returns the most recent bank payout.
func (l *Ledger) Payout() *Transaction {
	return l.last(func(tx Transaction) bool {
		return tx.Action == ActionPayout && tx.Label == LabelPayment
	})
}

// CurrentPreauthorization returns the latest preauthorization of any
// label that has no reversal counterpart, or nil when nothing is
// outstanding.
func (l *Ledger) CurrentPreauthorization() *Transaction {
	return l.last(func(tx Transaction) bool {
		return tx.Action == ActionPreauthorization && !l.IsCancelled(tx)
	})
}

// NonCancelledRenewDeposits returns every renewal hold still
// outstanding, oldest first. Gateway-side failures during best-effort
// cancellation can legitimately leave more than one.
func (l *Ledger) NonCancelledRenewDeposits() []Transaction {
	var out []Transaction
	for _, tx := range l.records {
		if tx.Action == ActionPreauthorization && tx.Label == LabelDepositRenew && !l.IsCancelled(tx) {
			out = append(out, tx)
		}
	}
	return out
}

// NonCancelledDepositHolds returns every outstanding deposit-labeled
// preauthorization (original and renewals), oldest first. Releasing the
// deposit must cancel all of them, not just the latest.
func (l *Ledger) NonCancelledDepositHolds() []Transaction {
	var out []Transaction
	for _, tx := range l.records {
		if tx.isDepositHold() && !l.IsCancelled(tx) {
			out = append(out, tx)
		}
	}
	return out
}

func (l *Ledger) last(match func(Transaction) bool) *Transaction {
	for i := len(l.records) - 1; i >= 0; i-- {
		if match(l.records[i]) {
			tx := l.records[i]
			return &tx
		}
	}
	return nil
}
