package mpack

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"

	"github.com/mpkit/mpack/format"
)

// String renders the value for humans: nil as `nil`, booleans and numbers in
// their default textual form, strings in double quotes, binary and extension
// payloads as hex, arrays as `[a, b]`, maps as `{k: v}`. The output is for
// display and logs, not for parsing back.
func (v Value) String() string {
	var sb strings.Builder
	v.render(&sb)

	return sb.String()
}

func (v Value) render(sb *strings.Builder) {
	switch v.kind {
	case format.KindNil:
		sb.WriteString("nil")
	case format.KindBool:
		sb.WriteString(strconv.FormatBool(v.num != 0))
	case format.KindInt:
		sb.WriteString(strconv.FormatInt(int64(v.num), 10)) //nolint:gosec
	case format.KindUint:
		sb.WriteString(strconv.FormatUint(v.num, 10))
	case format.KindFloat:
		sb.WriteString(strconv.FormatFloat(math.Float64frombits(v.num), 'g', -1, 64))
	case format.KindString:
		sb.WriteByte('"')
		sb.WriteString(v.str)
		sb.WriteByte('"')
	case format.KindBinary:
		sb.WriteString("bin:")
		sb.WriteString(hex.EncodeToString(v.bin))
	case format.KindExtension:
		sb.WriteString("ext:")
		sb.WriteString(strconv.Itoa(int(v.extType)))
		sb.WriteByte(':')
		sb.WriteString(hex.EncodeToString(v.bin))
	case format.KindArray:
		sb.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				sb.WriteString(", ")
			}
			elem.render(sb)
		}
		sb.WriteByte(']')
	case format.KindMap:
		sb.WriteByte('{')
		for i, entry := range v.entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			entry.Key.render(sb)
			sb.WriteString(": ")
			entry.Value.render(sb)
		}
		sb.WriteByte('}')
	default:
		sb.WriteString("<invalid>")
	}
}
