package clipboard

import (
	"encoding/base64"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/glavchev79/xExpEff/logging"
)

var errNoOSC52 = errors.New("clipboard unavailable (OSC52 unsupported by terminal)")

func copyOSC52(text string) error {
	if !osc52Supported(os.Getenv("TERM"), os.Stdout) {
		logging.Warnf("Clipboard: OSC52 unavailable (stdout not TTY or TERM=dumb)")
		return errNoOSC52
	}
	if err := writeOSC52(os.Stdout, text); err != nil {
		logging.Warnf("Clipboard: OSC52 write failed: %v", err)
		return err
	}
	logging.Infof("Clipboard: copied via OSC52")
	return nil
}

// osc52Sequence wraps text in the "set clipboard" terminal escape.
func osc52Sequence(text string) string {
	return "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"
}

func writeOSC52(w io.Writer, text string) error {
	_, err := io.WriteString(w, osc52Sequence(text))
	return err
}

func osc52Supported(term string, out *os.File) bool {
	if term == "" || strings.EqualFold(term, "dumb") {
		return false
	}
	return isTTY(out)
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
