package gmail

import (
	"mime"

	"github.com/emersion/go-message/charset"
)

// wordDecoder decodes RFC 2047 encoded-words, delegating non-UTF-8
// charsets to the go-message charset registry.
var wordDecoder = &mime.WordDecoder{CharsetReader: charset.Reader}

// DecodeHeader decodes a possibly MIME-encoded header value into plain
// text. Decoding is best-effort: undecodable input is returned
// unchanged and an empty input yields an empty string. It never fails.
func DecodeHeader(value string) string {
	if value == "" {
		return ""
	}
	decoded, err := wordDecoder.DecodeHeader(value)
	if err != nil {
		return value
	}
	return decoded
}
