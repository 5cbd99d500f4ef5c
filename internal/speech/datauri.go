package speech

import "encoding/base64"

// DataURI encodes an MPEG audio stream as a self-contained data URI the
// browser can bind directly to an audio element.
func DataURI(audio []byte) string {
	return "data:audio/mpeg;base64," + base64.StdEncoding.EncodeToString(audio)
}
