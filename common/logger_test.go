package common_test

import (
	"bytes"
	"testing"

	"github.com/joshyorko/heron/common"
	"github.com/joshyorko/heron/hamlet"
)

func TestLogLevelsFollowVerbosity(t *testing.T) {
	must_be, wont_be := hamlet.Specifications(t)

	sink := &bytes.Buffer{}
	restore := common.SetLogOutput(sink)
	defer restore()
	defer common.DefineVerbosity(false, false, false)

	common.DefineVerbosity(false, false, false)
	common.Log("normal %d", 1)
	common.Debug("hidden %d", 2)
	common.WaitLogs()
	must_be.Text("normal 1\n", sink.String())

	sink.Reset()
	common.DefineVerbosity(false, true, false)
	common.Debug("visible %d", 3)
	common.Trace("hidden %d", 4)
	common.WaitLogs()
	must_be.Text("[D] visible 3\n", sink.String())

	sink.Reset()
	common.DefineVerbosity(true, false, false)
	common.Log("quiet")
	common.Error("context", nil)
	common.WaitLogs()
	must_be.Equal(0, sink.Len())
	wont_be.True(common.DebugFlag())
}

func TestErrorsAreLoggedWithContext(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sink := &bytes.Buffer{}
	restore := common.SetLogOutput(sink)
	defer restore()

	common.Error("settings", bytes.ErrTooLarge)
	common.WaitLogs()
	must_be.Text("Error [settings]: bytes.Buffer: too large\n", sink.String())
}

func TestInterceptorHoldsBackOutput(t *testing.T) {
	must_be, _ := hamlet.Specifications(t)

	sink := &bytes.Buffer{}
	restore := common.SetLogOutput(sink)
	defer restore()

	seen := []string{}
	common.SetLogInterceptor(func(message string) bool {
		seen = append(seen, message)
		return true
	})
	common.Log("captured %d", 1)
	common.ClearLogInterceptor()
	common.Log("released")
	common.WaitLogs()

	must_be.Equal([]string{"captured 1"}, seen)
	must_be.Text("released\n", sink.String())
}
