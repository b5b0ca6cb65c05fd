package huffman

import (
	"testing"

	"github.com/op/go-logging"
)

func TestLog_QuietByDefault(t *testing.T) {
	if log.IsEnabledFor(logging.DEBUG) || log.IsEnabledFor(logging.INFO) {
		t.Errorf("expected default backend to hide debug output, level is %v", logging.GetLevel("huffman"))
	}
	if !log.IsEnabledFor(logging.WARNING) {
		t.Errorf("expected warnings to be enabled, level is %v", logging.GetLevel("huffman"))
	}
}
