// Package config provides the library's typed configuration registry
// and the loader that seeds it.
//
// The registry is a fixed table indexed by a closed enumeration of
// setting names. Each wired setting stores exactly one kind of value;
// using an unwired name or the wrong kind is a caller bug and fails
// with an invalid-argument error, never silently.
//
// The loader reads an optional YAML file and environment overrides
// (Viper + godotenv) into an Options struct, validates it, and applies
// it to a registry before the library is initialized.
package config
