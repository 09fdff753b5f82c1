package model

const (
	EventDropLogged  = "drop.logged"
	EventDropRemoved = "drop.removed"
	EventLedgerClear = "drop.cleared"
)

// DropEvent is published whenever the ledger changes.
type DropEvent struct {
	Kind string    `json:"kind"`
	Drop *ItemDrop `json:"drop,omitempty"`
	// LedgerSize is the number of records after the change.
	LedgerSize int `json:"ledgerSize"`
}
