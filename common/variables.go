package common

const (
	Version = `v1.2.0`
)

type Verbosity uint8

const (
	Undefined Verbosity = 0
	Silently  Verbosity = 1
	Normal    Verbosity = 2
	Debugging Verbosity = 3
	Tracing   Verbosity = 4
)

var (
	LogLinenumbers bool
	NoColorFlag    bool
	verbosity      Verbosity = Normal
)

func DefineVerbosity(silent, debug, trace bool) {
	override := Normal
	switch {
	case silent:
		override = Silently
	case trace:
		override = Tracing
	case debug:
		override = Debugging
	}
	verbosity = override
	resetLogger()
}

func Silent() bool {
	return verbosity == Silently
}

func DebugFlag() bool {
	return verbosity >= Debugging
}

func TraceFlag() bool {
	return verbosity >= Tracing
}
