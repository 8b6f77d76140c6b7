package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrInvalidFormat is returned before any remote call when an address or token id is malformed
	ErrInvalidFormat = errors.New("invalid collection address or token id format")
	// ErrNotFound is returned when a remote record does not exist
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrInvalidToken is returned when the contract reverts because the token id does not exist
	ErrInvalidToken = errors.New("token id does not exist")
	// ErrTxRejected is returned when a transaction can't be signed, sent or was reverted on chain
	ErrTxRejected = errors.New("transaction rejected")
	// ErrNetworkUnavailable wraps any other failure of a remote call
	ErrNetworkUnavailable = errors.New("network unavailable")
	// ErrEmptyResult is returned when a remote query succeeds without anything usable
	ErrEmptyResult = errors.New("empty result")
	// ErrUploadFailed is returned when content can't be stored in content addressed storage
	ErrUploadFailed = errors.New("upload failed")
	// ErrWalletNotConnected is returned by operations that need a connected account
	ErrWalletNotConnected = errors.New("wallet not connected")

	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")
)
