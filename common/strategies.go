package common

import (
	"os"
	"path/filepath"
)

const (
	HERON_HOME_VARIABLE = `HERON_HOME`
	HERON_PRODUCT_NAME  = `HERON_PRODUCT_NAME`
	HERON_NAME          = `Heron`

	defaultHomeLocation = "$HOME/.heron"
	settingsFilename    = "heron.yaml"
)

type (
	ProductStrategy interface {
		Name() string
		Home() string
		SettingsFile() string
	}

	heronStrategy struct{}
)

func HeronMode() ProductStrategy {
	return &heronStrategy{}
}

func (it *heronStrategy) Name() string {
	if value := os.Getenv(HERON_PRODUCT_NAME); len(value) > 0 {
		return value
	}
	return HERON_NAME
}

func (it *heronStrategy) Home() string {
	home := os.Getenv(HERON_HOME_VARIABLE)
	if len(home) > 0 {
		return ExpandPath(home)
	}
	return ExpandPath(defaultHomeLocation)
}

func (it *heronStrategy) SettingsFile() string {
	return filepath.Join(it.Home(), settingsFilename)
}

func ExpandPath(entry string) string {
	intermediate := os.ExpandEnv(entry)
	result, err := filepath.Abs(intermediate)
	if err != nil {
		return intermediate
	}
	return result
}
