// Package xviper serializes access to a single viper instance.
package xviper

import (
	"errors"
	"io/fs"
	"strings"
	"sync"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	lock     sync.RWMutex
	instance *viper.Viper
)

func init() {
	Reset()
}

// Reset replaces the configuration with an empty one reading HERON_* variables.
func Reset() {
	lock.Lock()
	defer lock.Unlock()
	instance = viper.New()
	instance.SetEnvPrefix("HERON")
	instance.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	instance.AutomaticEnv()
}

// Load reads given configuration file. Missing file is not an error when
// optional is true.
func Load(filename string, optional bool) (bool, error) {
	lock.Lock()
	defer lock.Unlock()
	instance.SetConfigFile(filename)
	instance.SetConfigType("yaml")
	err := instance.ReadInConfig()
	if err == nil {
		return true, nil
	}
	if optional && missing(err) {
		return false, nil
	}
	return false, err
}

func missing(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func BindPFlag(key string, flag *pflag.Flag) error {
	lock.Lock()
	defer lock.Unlock()
	return instance.BindPFlag(key, flag)
}

func SetDefault(key string, value interface{}) {
	lock.Lock()
	defer lock.Unlock()
	instance.SetDefault(key, value)
}

func ConfigFileUsed() string {
	lock.RLock()
	defer lock.RUnlock()
	return instance.ConfigFileUsed()
}

func GetBool(key string) bool {
	lock.RLock()
	defer lock.RUnlock()
	return instance.GetBool(key)
}

func GetInt(key string) int {
	lock.RLock()
	defer lock.RUnlock()
	return instance.GetInt(key)
}

func GetString(key string) string {
	lock.RLock()
	defer lock.RUnlock()
	return instance.GetString(key)
}

func AllSettings() map[string]interface{} {
	lock.RLock()
	defer lock.RUnlock()
	return instance.AllSettings()
}
