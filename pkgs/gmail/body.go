package gmail

import (
	"bytes"
	"io"
	"strings"

	gomessage "github.com/emersion/go-message"
)

// PreviewLimit caps body previews at 500 characters.
const PreviewLimit = 500

// extractPreview returns the body preview of a raw RFC 5322 message:
// the first text/plain part of a multipart message (scanning nested
// parts in order), or the direct payload of a single-part message.
// Transfer-encoding and charset decoding is lossy and never fails; a
// multipart message with no text/plain part yields an empty string.
func extractPreview(raw []byte) string {
	entity, err := gomessage.Read(bytes.NewReader(raw))
	if err != nil && !gomessage.IsUnknownCharset(err) {
		return ""
	}

	if mr := entity.MultipartReader(); mr != nil {
		text, _ := scanPlainText(mr)
		return truncateRunes(text, PreviewLimit)
	}

	body, err := io.ReadAll(entity.Body)
	if err != nil {
		return ""
	}
	return truncateRunes(string(body), PreviewLimit)
}

// scanPlainText walks multipart parts in order and returns the first
// part whose content type is exactly text/plain.
func scanPlainText(mr gomessage.MultipartReader) (string, bool) {
	for {
		part, err := mr.NextPart()
		if err != nil {
			break
		}
		ct, _, _ := part.Header.ContentType()

		switch {
		case ct == "text/plain":
			body, err := io.ReadAll(part.Body)
			if err != nil {
				continue
			}
			return string(body), true

		case strings.HasPrefix(ct, "multipart/"):
			if nested := part.MultipartReader(); nested != nil {
				if text, ok := scanPlainText(nested); ok {
					return text, true
				}
			}
		}
	}
	return "", false
}

// summarize builds a Summary from a raw message: Subject and From are
// decoded, Date is kept exactly as received.
func summarize(seqNum uint32, raw []byte) Summary {
	sum := Summary{SeqNum: seqNum}

	entity, err := gomessage.Read(bytes.NewReader(raw))
	if err != nil && !gomessage.IsUnknownCharset(err) {
		return sum
	}

	sum.Subject = DecodeHeader(entity.Header.Get("Subject"))
	sum.From = DecodeHeader(entity.Header.Get("From"))
	sum.Date = entity.Header.Get("Date")
	return sum
}

// truncateRunes truncates a string to limit characters, preserving
// UTF-8 boundaries.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
