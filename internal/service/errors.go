package service

import "errors"

// Sentinel errors returned by the services. Repository and domain sentinels
// pass through unchanged and are checked with errors.Is.
var (
	// ErrAlreadyMinted is returned when minting an achievement that already
	// carries a ledger receipt.
	// API layer should map this to HTTP 409 Conflict.
	ErrAlreadyMinted = errors.New("achievement already minted")

	// ErrMintFailed wraps a failure reported by the Minter.
	// API layer should map this to HTTP 502 Bad Gateway.
	ErrMintFailed = errors.New("mint failed")

	// ErrInvalidReceipt is returned when the Minter reports success without
	// a transaction id.
	ErrInvalidReceipt = errors.New("minter returned an empty receipt")
)
