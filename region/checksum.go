package region

// CRC-16-CCITT parameters.
const (
	// CRC16Polynomial is the CRC-16-CCITT polynomial (0x1021)
	CRC16Polynomial = 0x1021

	// CRC16InitialValue is the CRC-16 initial value
	CRC16InitialValue = 0xFFFF

	// CRC16HighBitMask is the high bit mask for CRC-16 calculations
	CRC16HighBitMask = 0x8000

	// BitsPerByte is the number of bits per byte
	BitsPerByte = 8
)

// CRC16 computes the CRC-16-CCITT of data.
//
// CRC-16-CCITT parameters:
//   - Polynomial: CRC16Polynomial
//   - Initial value: CRC16InitialValue
//   - No final XOR
func CRC16(data []byte) uint16 {
	return crc16Update(CRC16InitialValue, data)
}

// crc16Update continues a CRC-16-CCITT computation over data.
// The region checksum spans two disjoint byte ranges, so it is fed in parts.
func crc16Update(crc uint16, data []byte) uint16 {
	for _, b := range data {
		crc ^= uint16(b) << BitsPerByte
		for i := 0; i < BitsPerByte; i++ {
			if crc&CRC16HighBitMask != 0 {
				crc = (crc << 1) ^ CRC16Polynomial
			} else {
				crc = crc << 1
			}
		}
	}

	return crc
}

// Checksum computes the integrity check stored in a region buffer.
// It covers the header bytes before the checksum field and the covered
// payload after it. buf must be at least CoveredEnd bytes long.
func Checksum(buf []byte) uint16 {
	crc := crc16Update(CRC16InitialValue, buf[:OffsetChecksum])
	return crc16Update(crc, buf[OffsetPendingReason:CoveredEnd])
}
