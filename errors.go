package fdbs58

import "github.com/lbryio/lbry.go/v2/extras/errors"

// Decoding errors. Encoding cannot fail, since every value of a fixed byte
// count has an encoding. Decode returns these sentinels unwrapped, so they
// compare directly as well as through errors.Is.
var (
	// ErrInvalidCharacter is returned when the input contains a byte
	// outside the 58-character alphabet.
	ErrInvalidCharacter = errors.Base("invalid base58 character")

	// ErrInputTooLong is returned when the input is longer than the longest
	// possible encoding for the byte count, or starts with more '1' digits
	// than the decoded value has leading zero bytes.
	ErrInputTooLong = errors.Base("base58 input too long")

	// ErrInputTooShort is returned when the input starts with fewer '1'
	// digits than the decoded value has leading zero bytes.
	ErrInputTooShort = errors.Base("base58 input too short")

	// ErrInvalidByteAmount is returned when the decoded value does not fit
	// the fixed byte count.
	ErrInvalidByteAmount = errors.Base("base58 value has the wrong byte count")
)
