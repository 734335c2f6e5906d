package fdbs58

// The base58 alphabet. The visually ambiguous characters 0, O, I and l are
// excluded; '1' is the zero digit.
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// interBase is 58^5, the largest power of 58 below 2^32. One intermediate
// limb packs five base58 digits.
const interBase = 58 * 58 * 58 * 58 * 58

// invalidChar marks bytes outside the alphabet in the inverse table.
const invalidChar = 0xFF

// inverse maps an input byte to its base58 digit value, or invalidChar.
var inverse = func() (t [256]byte) {
	for i := range t {
		t[i] = invalidChar
	}
	for i := 0; i < len(alphabet); i++ {
		t[alphabet[i]] = byte(i)
	}
	return t
}()

// Scratch buffer capacities, sized for the wider of the two layouts so the
// conversion routines can keep everything on the stack.
const (
	maxBinarySz = 16
	maxInterSz  = 18
	maxRaw58Sz  = 90
)

// layout describes one supported byte count: its limb geometry and the
// conversion tables between base 2^32 and base 58^5.
//
// A value X of byteCount bytes is carried through three positional forms,
// all most significant limb first:
//
//	X = sum of bin[i]   * 2^(32*(binarySz-1-i))   binary limbs
//	X = sum of inter[i] * 58^(5*(interSz-1-i))    intermediate limbs
//	X = sum of raw[i]   * 58^(rawSz-1-i)          base58 digits
type layout struct {
	byteCount int // decoded length in bytes
	binarySz  int // 32-bit binary limbs, byteCount/4
	interSz   int // base 58^5 intermediate limbs
	rawSz     int // base58 digit slots, 5*interSz
	maxEnc    int // longest possible encoding in characters

	// foldAt > 0 makes encoding reduce the most loaded intermediate limb
	// after this many binary limbs, keeping the accumulator below 2^64.
	foldAt int

	// encTable[i] is the base 58^5 representation of 2^(32*(binarySz-1-i)),
	// padded to interSz-1 limbs. decTable[i] is the base 2^32 representation
	// of 58^(5*(interSz-1-i)), padded to binarySz limbs.
	encTable [][]uint32
	decTable [][]uint32
}

var (
	layout32 = newLayout(32, MaxEncodedLen32, 0)
	layout64 = newLayout(64, MaxEncodedLen64, 8)
)

// newLayout derives the limb geometry for a byte count and builds its
// tables. maxEnc is the digit count of the largest byteCount-byte value; the
// raw digit buffer rounds it up to whole intermediate limbs.
func newLayout(byteCount, maxEnc, foldAt int) *layout {
	l := &layout{
		byteCount: byteCount,
		binarySz:  byteCount / 4,
		rawSz:     (maxEnc + 4) / 5 * 5,
		maxEnc:    maxEnc,
		foldAt:    foldAt,
	}
	l.interSz = l.rawSz / 5
	l.encTable = buildEncTable(l.binarySz, l.interSz)
	l.decTable = buildDecTable(l.binarySz, l.interSz)
	return l
}

// buildEncTable builds one row per binary limb, from the lowest power of
// 2^32 up, by multiplying the previous row by 2^32 and propagating carries
// in base 58^5. Every product here stays well below 2^64.
func buildEncTable(binarySz, interSz int) [][]uint32 {
	cols := interSz - 1
	table := make([][]uint32, binarySz)
	row := make([]uint64, cols)
	row[cols-1] = 1
	for i := binarySz - 1; i >= 0; i-- {
		table[i] = make([]uint32, cols)
		for j, v := range row {
			table[i][j] = uint32(v)
		}
		if i == 0 {
			break
		}
		var carry uint64
		for j := cols - 1; j >= 0; j-- {
			v := row[j]<<32 + carry
			row[j] = v % interBase
			carry = v / interBase
		}
		if carry != 0 {
			panic("fdbs58: binary limb does not fit the intermediate form")
		}
	}
	return table
}

// buildDecTable builds one row per intermediate limb, from the lowest power
// of 58^5 up, by multiplying the previous row by 58^5 and propagating
// carries in base 2^32.
func buildDecTable(binarySz, interSz int) [][]uint32 {
	table := make([][]uint32, interSz)
	row := make([]uint64, binarySz)
	row[binarySz-1] = 1
	for i := interSz - 1; i >= 0; i-- {
		table[i] = make([]uint32, binarySz)
		for j, v := range row {
			table[i][j] = uint32(v)
		}
		if i == 0 {
			break
		}
		var carry uint64
		for j := binarySz - 1; j >= 0; j-- {
			v := row[j]*interBase + carry
			row[j] = v & 0xFFFFFFFF
			carry = v >> 32
		}
		if carry != 0 {
			panic("fdbs58: intermediate limb does not fit the binary form")
		}
	}
	return table
}
