// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment
//     (the default ./.env is optional and loaded once automatically).
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so the parse happens once per process.
//   - WithPrefix namespaces every tag, e.g. STUFFKIT_LOG_TAG.
//   - MustLoad panics on failure for configuration the program cannot run without.
//   - ResetCache clears the cache, which tests use after changing the environment.
//
// # Usage
//
//	type Config struct {
//	    Capacity int    `env:"CHUNK_CAPACITY" envDefault:"50"`
//	    LogTag   string `env:"LOG_TAG" envDefault:"stuffkit"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("config: %v", err)
//	}
//
// # Error Handling
//
// Errors wrap the sentinels ErrParsingConfig, ErrLoadingEnvFile,
// ErrConfigNotLoaded and ErrNilPointer and can be matched with errors.Is.
// A failed parse is not cached.
package config
