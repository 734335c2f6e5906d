package fdbs58

import "encoding/binary"

// encode converts data, exactly l.byteCount bytes, to base58 text. All
// scratch space lives on the stack; the returned string is the only
// allocation.
func (l *layout) encode(data []byte) string {
	inZeros := 0
	for inZeros < l.byteCount && data[inZeros] == 0 {
		inZeros++
	}

	var bin [maxBinarySz]uint32
	for i := 0; i < l.binarySz; i++ {
		bin[i] = binary.BigEndian.Uint32(data[4*i:])
	}

	// Accumulate each binary limb into the intermediate form through the
	// table. Limbs run past 58^5 during this pass; they must stay below
	// 2^64, which for the 64 byte layout requires reducing the most loaded
	// limb partway through.
	var inter [maxInterSz]uint64
	for i := 0; i < l.binarySz; i++ {
		if l.foldAt > 0 && i == l.foldAt {
			inter[l.interSz-3] += inter[l.interSz-2] / interBase
			inter[l.interSz-2] %= interBase
		}
		b := uint64(bin[i])
		for j, m := range l.encTable[i] {
			inter[j+1] += b * uint64(m)
		}
	}

	// Carry right to left so every limb becomes a proper base 58^5 digit.
	// inter[0] needs no reduction: the value is below 58^(5*interSz), so
	// after the pass its top digit is already in range.
	for i := l.interSz - 1; i > 0; i-- {
		inter[i-1] += inter[i] / interBase
		inter[i] %= interBase
	}

	// Unpack five base58 digits per limb. Each limb is below 58^5 < 2^32
	// now, so the divisions run in 32 bits.
	var raw [maxRaw58Sz]byte
	for i := 0; i < l.interSz; i++ {
		v := uint32(inter[i])
		raw[5*i+4] = byte(v % 58)
		raw[5*i+3] = byte(v / 58 % 58)
		raw[5*i+2] = byte(v / 3364 % 58)
		raw[5*i+1] = byte(v / 195112 % 58)
		raw[5*i] = byte(v / 11316496)
	}

	rawZeros := 0
	for rawZeros < l.rawSz && raw[rawZeros] == 0 {
		rawZeros++
	}

	// Zero digits ahead of the value are padding, except one '1' per
	// leading zero byte of the input. rawZeros is never less than inZeros;
	// the digits of the remaining value always fit their slots.
	skip := rawZeros - inZeros
	n := l.rawSz - skip
	var out [maxRaw58Sz]byte
	for i := 0; i < n; i++ {
		out[i] = alphabet[raw[skip+i]]
	}
	return string(out[:n])
}
