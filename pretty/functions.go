package pretty

import (
	"fmt"
	"os"

	"github.com/joshyorko/heron/common"
)

var exit = os.Exit

func csi(code string) string {
	return "\x1b[" + code
}

func csif(form string, details ...interface{}) string {
	return csi(fmt.Sprintf(form, details...))
}

func Ok() {
	common.Log("%sOK.%s", Green, Reset)
}

func Warning(format string, rest ...interface{}) {
	niceform := fmt.Sprintf("%sWarning: %s%s", Yellow, format, Reset)
	common.Log(niceform, rest...)
}

func Exit(code int, format string, rest ...interface{}) {
	var niceform string
	if code > 1 {
		niceform = fmt.Sprintf("%s%s%s", Red, format, Reset)
	} else {
		niceform = fmt.Sprintf("%s%s%s", Yellow, format, Reset)
	}
	common.Log(niceform, rest...)
	common.WaitLogs()
	exit(code)
}

func Guard(truth bool, code int, format string, rest ...interface{}) {
	if !truth {
		Exit(code, format, rest...)
	}
}
