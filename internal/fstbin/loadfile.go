package fstbin

import (
	"fmt"
	"os"

	"github.com/gabriel-vasile/mimetype"

	"github.com/alpino-nl/alpinotok/internal/fst"
)

// binaryMIMEPrefixes lists the detected MIME types a genuine compiled
// transducer file is expected to sniff as: binary data that matches no
// more specific signature is reported as application/octet-stream.
// Anything else (text, image, etc.) is almost certainly the wrong file
// handed to the CLI.
var binaryMIMEPrefixes = []string{"application/octet-stream"}

// LoadFile opens path and decodes it with Load, first sniffing its
// content type so a human pointing the CLI at an accidentally-text file
// (an HTML error page saved in place of the real download, a stray
// README) gets an immediate, readable ErrRead instead of a confusing
// mid-stream ErrDecode several fields into the first record.
func LoadFile(path string) (*fst.Transducer, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: sniffing %s: %v", ErrRead, path, err)
	}
	if !isRecognizedBinary(mtype) {
		return nil, fmt.Errorf("%w: %s does not look like a compiled transducer (detected %s)",
			ErrRead, path, mtype.String())
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}
	defer f.Close()

	return Load(f)
}

// isRecognizedBinary compares only the detected type itself, not its
// parents: every type's parent chain ends at application/octet-stream.
func isRecognizedBinary(mtype *mimetype.MIME) bool {
	for _, prefix := range binaryMIMEPrefixes {
		if mtype.Is(prefix) {
			return true
		}
	}
	return false
}
