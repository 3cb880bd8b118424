package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config configuração global da aplicação
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig servidor HTTP
type ServerConfig struct {
	Port      int        `mapstructure:"port"`
	MaxBodyMB int64      `mapstructure:"max_body_mb"`
	CORS      CORSConfig `mapstructure:"cors"`
}

// CORSConfig origens liberadas
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig banco PostgreSQL
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutos
	Debug           bool   `mapstructure:"debug"`
}

// DSN monta a string de conexão do PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// StorageConfig armazenamento dos arquivos enviados
type StorageConfig struct {
	Driver     string   `mapstructure:"driver"` // "local" | "b2"
	Dir        string   `mapstructure:"dir"`
	PublicPath string   `mapstructure:"public_path"`
	B2         B2Config `mapstructure:"b2"`
}

// B2Config credenciais Backblaze B2
type B2Config struct {
	AccountID string `mapstructure:"account_id"`
	AppKey    string `mapstructure:"app_key"`
	Bucket    string `mapstructure:"bucket"`
}

// AuthConfig hash de senha
type AuthConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

// LogConfig logs
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load carrega a configuração.
// Prioridade: variáveis de ambiente > arquivo > padrões. Um .env, se existir, alimenta o ambiente.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// ── padrões ──
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.max_body_mb", 32)
	v.SetDefault("server.cors.allow_origins", []string{"*"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "sistema_cadastro")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "America/Sao_Paulo")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)
	v.SetDefault("db.debug", false)

	v.SetDefault("storage.driver", "local")
	v.SetDefault("storage.dir", "uploads")
	v.SetDefault("storage.public_path", "/uploads")
	// sem padrão o AutomaticEnv não enxerga SISCAD_STORAGE_B2_*
	v.SetDefault("storage.b2.account_id", "")
	v.SetDefault("storage.b2.app_key", "")
	v.SetDefault("storage.b2.bucket", "")

	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── arquivo ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── ambiente ──
	v.SetEnvPrefix("SISCAD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("falha ao ler arquivo de configuração: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("falha ao interpretar configuração: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate confere os itens críticos
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("configuração inválida: server.port deve estar entre 1 e 65535")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("configuração inválida: auth.bcrypt_cost deve estar entre %d e %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	switch c.Storage.Driver {
	case "local":
		if c.Storage.Dir == "" {
			return fmt.Errorf("configuração inválida: storage.dir não pode ser vazio")
		}
	case "b2":
		if c.Storage.B2.AccountID == "" || c.Storage.B2.AppKey == "" || c.Storage.B2.Bucket == "" {
			return fmt.Errorf("configuração inválida: storage.b2 exige account_id, app_key e bucket")
		}
	default:
		return fmt.Errorf("configuração inválida: storage.driver %q desconhecido", c.Storage.Driver)
	}
	return nil
}
