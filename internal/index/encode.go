package index

import "bytes"

const dateKeySep = 0xFF

// key = ^date... + 0xFF + slug
//
// Inverting every date byte makes an ascending cursor walk dates newest first.
// The 0xFF separator sorts after any inverted byte, so a longer date sharing a
// prefix ("2024-01" vs "2024") still comes first. Dates must not contain 0x00.
func makeDateSlugKey(date, slug string) []byte {
	buf := make([]byte, 0, len(date)+1+len(slug))
	for i := 0; i < len(date); i++ {
		buf = append(buf, ^date[i])
	}
	buf = append(buf, dateKeySep)
	buf = append(buf, slug...)
	return buf
}

func slugFromDateSlugKey(k []byte) string {
	i := bytes.IndexByte(k, dateKeySep)
	if i < 0 || i+1 >= len(k) {
		return ""
	}
	return string(k[i+1:])
}
