//go:build !windows

package pretty

func localSetup(interactive bool) bool {
	return true
}
