package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshyorko/heron/common"
	"github.com/joshyorko/heron/session"
	"github.com/joshyorko/heron/xviper"
)

const (
	UnitKey      = `unit`
	UnitNameKey  = `unit_name`
	PrecisionKey = `precision`
	PauseKey     = `pause`
	RedrawKey    = `redraw`
	BannerKey    = `banner`

	RedrawAuto   = `auto`
	RedrawAlways = `always`
	RedrawNever  = `never`

	defaultUnit     = `m`
	defaultUnitName = `metres`

	maxPrecision = 15
)

var (
	ErrInvalidSetting = errors.New("invalid setting")

	Global *Settings
)

type Settings struct {
	Unit      string `yaml:"unit"`
	UnitName  string `yaml:"unit_name"`
	Precision int    `yaml:"precision"`
	Pause     bool   `yaml:"pause"`
	Redraw    string `yaml:"redraw"`
	Banner    bool   `yaml:"banner"`
}

func init() {
	Defaults()
}

// Defaults registers default values for every known key.
func Defaults() {
	xviper.SetDefault(UnitKey, defaultUnit)
	xviper.SetDefault(UnitNameKey, "")
	xviper.SetDefault(PrecisionKey, -1)
	xviper.SetDefault(PauseKey, true)
	xviper.SetDefault(RedrawKey, RedrawAuto)
	xviper.SetDefault(BannerKey, true)
}

// LoadFile reads configuration from given file, or from the optional
// settings file in product home when filename is empty.
func LoadFile(filename string) error {
	optional := len(filename) == 0
	if optional {
		filename = common.HeronMode().SettingsFile()
	}
	found, err := xviper.Load(filename, optional)
	if err != nil {
		return fmt.Errorf("reading settings %q: %w", filename, err)
	}
	if found {
		common.Debug("Settings loaded from %q.", xviper.ConfigFileUsed())
	} else {
		common.Trace("No settings file at %q, using defaults.", filename)
	}
	return nil
}

// SummonSettings validates current configuration and makes it Global.
func SummonSettings() (*Settings, error) {
	result := &Settings{
		Unit:      strings.TrimSpace(xviper.GetString(UnitKey)),
		UnitName:  strings.TrimSpace(xviper.GetString(UnitNameKey)),
		Precision: xviper.GetInt(PrecisionKey),
		Pause:     xviper.GetBool(PauseKey),
		Redraw:    strings.ToLower(strings.TrimSpace(xviper.GetString(RedrawKey))),
		Banner:    xviper.GetBool(BannerKey),
	}
	err := result.Validate()
	if err != nil {
		return nil, err
	}
	Global = result
	return result, nil
}

func (it *Settings) Validate() error {
	if it.Precision < -1 || it.Precision > maxPrecision {
		return fmt.Errorf("%w: %s must be between -1 and %d, not %d", ErrInvalidSetting, PrecisionKey, maxPrecision, it.Precision)
	}
	switch it.Redraw {
	case RedrawAuto, RedrawAlways, RedrawNever:
	default:
		return fmt.Errorf("%w: %s must be one of %s, %s or %s, not %q", ErrInvalidSetting, RedrawKey, RedrawAuto, RedrawAlways, RedrawNever, it.Redraw)
	}
	if len(it.Unit) == 0 {
		it.Unit = defaultUnit
	}
	if len(it.UnitName) == 0 {
		it.UnitName = unitNameOf(it.Unit)
	}
	return nil
}

// unitNameOf spells out the default unit; any other unit is named by its symbol.
func unitNameOf(unit string) string {
	if unit == defaultUnit {
		return defaultUnitName
	}
	return unit
}

// UseTerminal tells if cursor redraws should be used.
func (it *Settings) UseTerminal(interactive bool) bool {
	switch it.Redraw {
	case RedrawAlways:
		return true
	case RedrawNever:
		return false
	default:
		return interactive
	}
}

func (it *Settings) SessionOptions() session.Options {
	return session.Options{
		Unit:      it.Unit,
		UnitName:  it.UnitName,
		Precision: it.Precision,
		Pause:     it.Pause,
		Banner:    it.Banner,
	}
}
