package attendance

import "errors"

var (
	ErrRecordNotFound = errors.New("attendance record not found")

	// ErrInvalidQRToken covers unknown, expired and wrong-branch tokens.
	ErrInvalidQRToken = errors.New("invalid or expired QR token")

	// ErrAlreadyCheckedIn is returned on a second check-in for the same
	// personnel and date.
	ErrAlreadyCheckedIn = errors.New("already checked in today")

	// ErrNotCheckedIn is returned on check-out without a prior check-in.
	ErrNotCheckedIn = errors.New("no open check-in found for today")
)
