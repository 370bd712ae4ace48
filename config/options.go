package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/elafonizi/yara/logger"
)

// Options contains the host-facing configuration for the library.
// Hosts usually populate it through Load, then hand it to the lifecycle
// manager, which applies it to the registry during initialization.
type Options struct {
	// StackSize is the maximum evaluation stack depth for the scanning
	// engine.
	StackSize uint32 `yaml:"stack_size" mapstructure:"stack_size" validate:"gt=0"`

	// Logging configures the library's structured logging.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults fills in zero-valued fields.
func (o *Options) ApplyDefaults() {
	if o.StackSize == 0 {
		o.StackSize = DefaultStackSize
	}
	o.Logging.ApplyDefaults()
}

// Validate checks the options. Call ApplyDefaults first.
func (o *Options) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(o); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := o.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

// Apply writes the options into a registry.
func (o *Options) Apply(r *Registry) error {
	return r.Set(StackSize, Uint32(o.StackSize))
}
