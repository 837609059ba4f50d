package config

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
}

// ServerConfig contains the HTTP server and logging settings.
type ServerConfig struct {
	Addr      string `mapstructure:"addr" validate:"required,hostname_port"`
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`
}

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverBolt     = "bolt"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"required,oneof=memory bolt sqlite postgres"`
	// Path is the database file for bolt and sqlite. Empty means the
	// driver's default under the home directory.
	Path string `mapstructure:"path"`
	// URL is the connection string for postgres.
	URL string `mapstructure:"url" validate:"required_if=Driver postgres"`
	// Prefix namespaces every stored key.
	Prefix string `mapstructure:"prefix" validate:"required,max=32"`
}

// EngineConfig tunes repository behaviour.
type EngineConfig struct {
	// StrictWishRefs rejects focus records and board items that reference a
	// wish id the planet does not have.
	StrictWishRefs bool `mapstructure:"strict_wish_refs"`
	// MaxWishes bounds the wish list of a planet.
	MaxWishes int `mapstructure:"max_wishes" validate:"gte=1,lte=100"`
}
