package common

// WipeByteArray zeroes buf in place so sensitive material (passwords) does
// not linger in memory longer than needed. Safe to call with nil.
func WipeByteArray(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
}
