// Package assets embeds the static files shipped with the binary.
package assets

import _ "embed"

// BeepWAV is the feedback clip played on every balance change.
//
//go:embed beep-07a.wav
var BeepWAV []byte
