// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use and
// uses github.com/caarlos0/env for parsing variables into struct fields:
//
//	type StorageConfig struct {
//		Root     string `env:"DATA_DIR" envDefault:"data"`
//		TestRoot string `env:"TEST_DATA_DIR" envDefault:"testdata/data"`
//	}
//
//	var cfg StorageConfig
//	config.MustLoad(&cfg)
//
// Nested structs are parsed recursively, so an application config can embed
// the configs of the packages it wires (server.Config, cookie.Config, ...).
//
// Parse skips the cache, which is what tests that vary the environment with
// t.Setenv want. LoadEnvFiles loads extra dotenv files (the CLI --env-file
// flag) before the first Load.
package config
