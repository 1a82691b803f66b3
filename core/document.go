package core

import "bytes"

// Document is a rendered file ready to be written or served.
type Document struct {
	Content     *bytes.Buffer
	ContentType string
	Filename    string
}
