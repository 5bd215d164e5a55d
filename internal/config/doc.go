// Package config defines the runtime configuration for aiready.
//
// Configuration comes from CLI flags layered over documented defaults,
// plus an optional .aiready YAML file that can override scoring weight
// profiles and per-page-type recommendation tuning. The Config struct is
// passed explicitly through the application; there is no global state.
package config
