package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"github.com/glavchev79/xExpEff/logging"
)

var errEmpty = errors.New("nothing to copy")

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// sequence when no native clipboard utility is available (e.g. over SSH).
func Copy(text string) error {
	if text == "" {
		return errEmpty
	}
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied via system clipboard")
			return nil
		}
		logging.Warnf("Clipboard: system clipboard failed: %v", err)
	}
	return copyOSC52(text)
}
