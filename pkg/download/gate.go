package download

import "github.com/Interzoneism/Simple-Mod-Manager-sub004/pkg/errors"

// StaticGate is an AccessGate backed by a fixed setting, typically the
// "internet access disabled" switch from the configuration file.
type StaticGate struct {
	disabled bool
}

// NewStaticGate creates a gate that blocks network access when disabled is true.
func NewStaticGate(disabled bool) *StaticGate {
	return &StaticGate{disabled: disabled}
}

// Check implements AccessGate.
func (g *StaticGate) Check() error {
	if g.disabled {
		return errors.ErrInternetDisabled
	}
	return nil
}
