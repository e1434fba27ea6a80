package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig   `envPrefix:"SERVER_"`
	Storage  StorageConfig  `envPrefix:"STORAGE_"`
	Database DatabaseConfig `envPrefix:"DB_"`
	JWT      JWTConfig      `envPrefix:"JWT_"`
	Admin    AdminConfig    `envPrefix:"ADMIN_"`
	Logger   LoggerConfig   `envPrefix:"LOG_"`
}

type LoggerConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

type ServerConfig struct {
	Port         string        `env:"PORT" envDefault:"5000"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"30s"`
	BodyLimit    int           `env:"BODY_LIMIT" envDefault:"16777216"` // 16 MiB
	StaticDir    string        `env:"STATIC_DIR" envDefault:"static"`
	SecureCookie bool          `env:"SECURE_COOKIE" envDefault:"true"`
}

// StorageConfig selects where the knowledge base and the unresolved-query
// log live. Uploads, feedback and activity logs always stay on disk.
type StorageConfig struct {
	Driver     string `env:"DRIVER" envDefault:"file"`
	DataDir    string `env:"DATA_DIR" envDefault:"data"`
	PDFDir     string `env:"PDF_DIR" envDefault:"static/pdfs"`
	GalleryDir string `env:"GALLERY_DIR" envDefault:"static/images/gallery"`
}

type DatabaseConfig struct {
	Host         string        `env:"HOST" envDefault:"localhost"`
	Port         string        `env:"PORT" envDefault:"5432"`
	User         string        `env:"USER" envDefault:"postgres"`
	Password     string        `env:"PASSWORD" envDefault:"postgres"`
	DBName       string        `env:"NAME" envDefault:"saicollege"`
	SSLMode      string        `env:"SSLMODE" envDefault:"disable"`
	ConnAttempts uint          `env:"CONN_ATTEMPTS" envDefault:"5"`
	ConnDelay    time.Duration `env:"CONN_DELAY" envDefault:"1s"`
}

type JWTConfig struct {
	SecretKey  string        `env:"SECRET_KEY" envDefault:"fallback-secret-key"`
	Expiration time.Duration `env:"EXPIRATION" envDefault:"24h"`
}

type AdminConfig struct {
	ConfigFile  string        `env:"CONFIG_FILE" envDefault:"admin_config.json"`
	MaxAttempts int           `env:"MAX_LOGIN_ATTEMPTS" envDefault:"5"`
	BlockWindow time.Duration `env:"BLOCK_WINDOW" envDefault:"15m"`

	// used only when ConfigFile does not exist yet
	DefaultUsername   string `env:"DEFAULT_USERNAME" envDefault:"Admin"`
	DefaultPassword   string `env:"DEFAULT_PASSWORD" envDefault:"SaiCollege@123"`
	DefaultSecretCode string `env:"DEFAULT_SECRET_CODE" envDefault:"MasterKey2024"`
}

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
)

func Load() (*Config, error) {
	// .env is optional, plain environment variables work the same way
	for _, envFile := range []string{".env", "../.env", "../../.env"} {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// URL returns the connection string in the form golang-migrate expects.
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + c.Port + "/" + c.DBName + "?sslmode=" + c.SSLMode
}
