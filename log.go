package huffman

import (
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("huffman")

// The default go-logging backend prints everything down to DEBUG.  Programs
// that want this package's debug output install their own backend.
func init() {
	logging.SetLevel(logging.WARNING, "huffman")
}
