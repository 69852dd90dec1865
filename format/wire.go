package format

// MessagePack wire tags. Every multi-byte field that follows a tag is
// big-endian. Tags 0x00-0x7f and 0xe0-0xff are fixints carrying their own
// value; the fix-family tags below carry a length in their low bits.
const (
	TagNil      byte = 0xc0
	TagReserved byte = 0xc1 // never used by the format; decoding must fail
	TagFalse    byte = 0xc2
	TagTrue     byte = 0xc3

	TagBin8  byte = 0xc4
	TagBin16 byte = 0xc5
	TagBin32 byte = 0xc6

	TagExt8  byte = 0xc7
	TagExt16 byte = 0xc8
	TagExt32 byte = 0xc9

	TagFloat32 byte = 0xca
	TagFloat64 byte = 0xcb

	TagUint8  byte = 0xcc
	TagUint16 byte = 0xcd
	TagUint32 byte = 0xce
	TagUint64 byte = 0xcf

	TagInt8  byte = 0xd0
	TagInt16 byte = 0xd1
	TagInt32 byte = 0xd2
	TagInt64 byte = 0xd3

	TagFixExt1  byte = 0xd4
	TagFixExt2  byte = 0xd5
	TagFixExt4  byte = 0xd6
	TagFixExt8  byte = 0xd7
	TagFixExt16 byte = 0xd8

	TagStr8  byte = 0xd9
	TagStr16 byte = 0xda
	TagStr32 byte = 0xdb

	TagArray16 byte = 0xdc
	TagArray32 byte = 0xdd

	TagMap16 byte = 0xde
	TagMap32 byte = 0xdf
)

// Fix-family bases and range bounds.
const (
	PosFixintMax byte = 0x7f // 0x00-0x7f: value is the byte itself
	NegFixintMin byte = 0xe0 // 0xe0-0xff: value is byte-256

	FixmapBase   byte = 0x80 // 0x80-0x8f: low nibble is the entry count
	FixmapMax    byte = 0x8f
	FixarrayBase byte = 0x90 // 0x90-0x9f: low nibble is the element count
	FixarrayMax  byte = 0x9f
	FixstrBase   byte = 0xa0 // 0xa0-0xbf: low 5 bits are the byte length
	FixstrMax    byte = 0xbf

	FixstrMaxLen   = 31 // longest string encodable as fixstr
	FixarrayMaxLen = 15 // longest array encodable as fixarray
	FixmapMaxLen   = 15 // most entries encodable as fixmap
)
