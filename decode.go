package fdbs58

import "encoding/binary"

// decode converts base58 text into out, which must hold exactly
// l.byteCount bytes.
func (l *layout) decode(encoded string, out []byte) error {
	if len(encoded) > l.maxEnc {
		return ErrInputTooLong
	}
	for i := 0; i < len(encoded); i++ {
		if inverse[encoded[i]] == invalidChar {
			return ErrInvalidCharacter
		}
	}

	// Right-align the digits so the five-digit groups line up; the zero
	// digits in front only pad.
	var raw [maxRaw58Sz]byte
	pad := l.rawSz - len(encoded)
	for i := 0; i < len(encoded); i++ {
		raw[pad+i] = inverse[encoded[i]]
	}

	var inter [maxInterSz]uint64
	for i := 0; i < l.interSz; i++ {
		inter[i] = uint64(raw[5*i])*11316496 +
			uint64(raw[5*i+1])*195112 +
			uint64(raw[5*i+2])*3364 +
			uint64(raw[5*i+3])*58 +
			uint64(raw[5*i+4])
	}

	// Accumulate each intermediate limb into the binary form through the
	// table. Limbs run over 2^32 during this pass; even with every digit at
	// maximum the largest accumulator stays (barely) below 2^64.
	var bin [maxBinarySz]uint64
	for j := 0; j < l.binarySz; j++ {
		var acc uint64
		for i := 0; i < l.interSz; i++ {
			acc += inter[i] * uint64(l.decTable[i][j])
		}
		bin[j] = acc
	}

	// One carry pass brings every limb below 2^32. The accumulation bound
	// leaves room for the incoming carry, so this cannot overflow.
	for i := l.binarySz - 1; i > 0; i-- {
		bin[i-1] += bin[i] >> 32
		bin[i] &= 0xFFFFFFFF
	}

	// Whatever is still above 32 bits in the top limb did not fit in
	// byteCount bytes.
	if bin[0] > 0xFFFFFFFF {
		return ErrInvalidByteAmount
	}

	for i := 0; i < l.binarySz; i++ {
		binary.BigEndian.PutUint32(out[4*i:], uint32(bin[i]))
	}

	// The text is canonical only if its leading '1' digits match the
	// decoded leading zero bytes one for one.
	zeros := 0
	for zeros < l.byteCount && out[zeros] == 0 {
		if zeros >= len(encoded) || encoded[zeros] != alphabet[0] {
			return ErrInputTooShort
		}
		zeros++
	}
	if zeros < len(encoded) && encoded[zeros] == alphabet[0] {
		return ErrInputTooLong
	}
	return nil
}
