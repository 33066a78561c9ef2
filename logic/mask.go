package logic

// ChannelMask describes which bits of a packed sample row belong to enabled
// channels. Apply clears every other bit so consumers never see data for
// channels they did not request.
type ChannelMask struct {
	row   []byte
	first int
}

// NewChannelMask builds a mask for rows of unitSize bytes where enabled[i]
// reports whether channel i is enabled. Channels beyond len(enabled) are
// treated as disabled.
func NewChannelMask(unitSize int, enabled []bool) ChannelMask {
	row := make([]byte, unitSize)
	for i, on := range enabled {
		if !on || i/8 >= unitSize {
			continue
		}
		row[i/8] |= 1 << (i % 8)
	}
	return newMask(row)
}

// PrefixMask builds the mask for an enabled set that stops being byte aligned
// at byte index: bytes before index are kept, byte index is ANDed with mask
// and all following bytes are cleared. An index at or past unitSize keeps
// the whole row.
func PrefixMask(unitSize, index int, mask byte) ChannelMask {
	row := make([]byte, unitSize)
	for i := range row {
		switch {
		case i < index:
			row[i] = 0xff
		case i == index:
			row[i] = mask
		}
	}
	return newMask(row)
}

// PrefixMaskForCount is PrefixMask for the first enabled channels of a row.
func PrefixMaskForCount(unitSize, enabled int) ChannelMask {
	return PrefixMask(unitSize, enabled/8, byte(1<<(enabled%8))-1)
}

func newMask(row []byte) ChannelMask {
	first := len(row)
	for i, b := range row {
		if b != 0xff {
			first = i
			break
		}
	}
	return ChannelMask{row: row, first: first}
}

// UnitSize returns the row width the mask was built for.
func (m ChannelMask) UnitSize() int { return len(m.row) }

// Full reports whether every bit of a row is kept, making Apply a no-op.
func (m ChannelMask) Full() bool { return m.first >= len(m.row) }

// Partial returns the first byte index that is not fully kept together with
// the bit mask applied to it. For a full mask index equals UnitSize.
func (m ChannelMask) Partial() (int, byte) {
	if m.Full() {
		return len(m.row), 0xff
	}
	return m.first, m.row[m.first]
}

// Row returns a copy of the per-row byte mask.
func (m ChannelMask) Row() []byte {
	out := make([]byte, len(m.row))
	copy(out, m.row)
	return out
}

// Apply masks data in place. data is laid out as consecutive rows of
// UnitSize bytes; a trailing partial row is left untouched.
func (m ChannelMask) Apply(data []byte) {
	unit := len(m.row)
	if unit == 0 || m.Full() {
		return
	}
	for off := 0; off+unit <= len(data); off += unit {
		sample := data[off : off+unit]
		for idx := m.first; idx < unit; idx++ {
			sample[idx] &= m.row[idx]
		}
	}
}
