package abnffsm

import "github.com/felixgeelhaar/abnffsm/internal/charclass"

// CharClass is a 256-bit membership predicate over bytes, with boolean
// algebra and a fixed catalogue of RFC 2234 named classes (§4.1).
type CharClass = charclass.CharClass

// Byte builds a class matching exactly one byte value.
func Byte(b byte) CharClass { return charclass.Byte(b) }

// ByteRange builds a class matching the inclusive range [start, end].
// Panics if start > end (§4.1, a construction-time violation).
func ByteRange(start, end byte) CharClass { return charclass.Range(start, end) }

// ByteSet builds a class matching any of the given byte values.
func ByteSet(values ...byte) CharClass { return charclass.Set(values...) }

// Named RFC 2234 core rules (§6).
func Alpha() CharClass  { return charclass.Alpha() }
func Bit() CharClass    { return charclass.Bit() }
func Char() CharClass   { return charclass.Char() }
func CR() CharClass     { return charclass.CR() }
func LF() CharClass     { return charclass.LF() }
func CRLF() CharClass   { return charclass.CRLF() }
func CTL() CharClass    { return charclass.CTL() }
func Digit() CharClass  { return charclass.Digit() }
func DQuote() CharClass { return charclass.DQuote() }
func HexDig() CharClass { return charclass.HexDig() }
func HTab() CharClass   { return charclass.HTab() }
func LWSP() CharClass   { return charclass.LWSP() }
func Octet() CharClass  { return charclass.Octet() }
func SP() CharClass     { return charclass.SP() }
func VChar() CharClass  { return charclass.VChar() }
func WSP() CharClass    { return charclass.WSP() }
