package transcript

import (
	"regexp"
	"strings"
)

// mediaMarker is the placeholder WhatsApp writes in place of attachments.
const mediaMarker = "<Media omitted>"

// urlRe matches http/https URLs, including percent-encoded triples.
var urlRe = regexp.MustCompile(`https?://(?:[a-zA-Z0-9$-_@.&+!*(),]|%[0-9a-fA-F]{2})+`)

// Policy controls how media placeholders and links are handled.
// An empty replacement string means "no replacement configured": with the
// matching filter disabled the body is left untouched.
type Policy struct {
	FilterMedia      bool
	FilterLinks      bool
	MediaReplacement string
	LinkReplacement  string
}

// ContainsLink reports whether the body contains a URL.
func ContainsLink(body string) bool {
	return urlRe.MatchString(body)
}

// ContainsMedia reports whether the body contains the media placeholder.
func ContainsMedia(body string) bool {
	return strings.Contains(body, mediaMarker)
}

// Sanitize applies the media and link policy to each message and drops
// messages that end up empty. The media policy runs before the link policy,
// and the link check sees the body as left by the media step; a media
// replacement without a URL shields the message from the link filter.
// Remaining newlines are collapsed to single spaces so every body is a
// single line. The input slice is not modified.
func Sanitize(msgs []Message, p Policy) []Message {
	var out []Message

	for _, msg := range msgs {
		if ContainsMedia(msg.Body) {
			if p.FilterMedia {
				continue
			}
			if p.MediaReplacement != "" {
				msg.Body = p.MediaReplacement
			}
		}

		if ContainsLink(msg.Body) {
			if p.FilterLinks {
				continue
			}
			if p.LinkReplacement != "" {
				msg.Body = p.LinkReplacement
			}
		}

		if strings.TrimSpace(msg.Body) == "" {
			continue
		}

		msg.Body = strings.ReplaceAll(msg.Body, "\n", " ")
		msg.Body = strings.ReplaceAll(msg.Body, "\r", " ")

		out = append(out, msg)
	}

	return out
}
