// Package appfs exposes static assets compiled into the binary.
package appfs

import "embed"

//go:embed templates/email templates/email/_base.txt common-passwords.txt
var FS embed.FS
