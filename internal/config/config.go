package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

var ErrMissingSecretKey = errors.New("config: SECRET_KEY é obrigatória")

type Config struct {
	App       App      `mapstructure:",squash"`
	Server    Server   `mapstructure:",squash"`
	Database  Database `mapstructure:",squash"`
	Auth      Auth     `mapstructure:",squash"`
	Data      Data     `mapstructure:",squash"`
	Cache     Cache    `mapstructure:",squash"`
	SecretKey string   `mapstructure:"secret_key"`
}

type Server struct {
	Host               string   `mapstructure:"host"`
	Port               string   `mapstructure:"port"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	StaticDir          string   `mapstructure:"static_dir"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	UsersFile       string        `mapstructure:"users_file"`
	TokenTTL        time.Duration `mapstructure:"token_ttl"`
	BcryptPasswords bool          `mapstructure:"auth_bcrypt_passwords"`
}

type Data struct {
	Source               string `mapstructure:"metrics_source"`
	MetricsFile          string `mapstructure:"metrics_file"`
	MetricsTable         string `mapstructure:"metrics_table"`
	MaxRecordsPerRequest int    `mapstructure:"max_records_per_request"`
	DefaultPageSize      int    `mapstructure:"default_page_size"`
	StatsSampleSize      int    `mapstructure:"stats_sample_size"`
}

type Cache struct {
	Enabled        bool   `mapstructure:"metrics_cache_enabled"`
	RefreshEnabled bool   `mapstructure:"metrics_cache_refresh_enabled"`
	RefreshCron    string `mapstructure:"metrics_cache_refresh_cron"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("STATIC_DIR", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/marketing?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Sem valor padrão: o segredo precisa vir do ambiente
	viper.SetDefault("SECRET_KEY", "")

	viper.SetDefault("USERS_FILE", "data/users.csv")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_BCRYPT_PASSWORDS", false)

	viper.SetDefault("METRICS_SOURCE", SourceCSV)
	viper.SetDefault("METRICS_FILE", "data/metrics.csv")
	viper.SetDefault("METRICS_TABLE", "metrics")
	viper.SetDefault("MAX_RECORDS_PER_REQUEST", 1000)
	viper.SetDefault("DEFAULT_PAGE_SIZE", 25)
	viper.SetDefault("STATS_SAMPLE_SIZE", 5000)

	viper.SetDefault("METRICS_CACHE_ENABLED", false)
	viper.SetDefault("METRICS_CACHE_REFRESH_ENABLED", false)
	viper.SetDefault("METRICS_CACHE_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	config, err := load()
	if err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// NewToolConfig carrega a configuração para ferramentas de linha de comando que não
// sobem a API (importador): SECRET_KEY e limites de paginação não são exigidos.
func NewToolConfig() (*Config, error) {
	return load()
}

func load() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.SecretKey) == "" {
		return ErrMissingSecretKey
	}

	c.Data.Source = strings.ToLower(strings.TrimSpace(c.Data.Source))
	if c.Data.Source != SourceCSV && c.Data.Source != SourcePostgres {
		return fmt.Errorf("config: METRICS_SOURCE inválida: %q", c.Data.Source)
	}

	if c.Data.MaxRecordsPerRequest < 1 {
		return fmt.Errorf("config: MAX_RECORDS_PER_REQUEST deve ser positivo: %d", c.Data.MaxRecordsPerRequest)
	}

	if c.Data.DefaultPageSize < 1 || c.Data.DefaultPageSize > c.Data.MaxRecordsPerRequest {
		c.Data.DefaultPageSize = min(25, c.Data.MaxRecordsPerRequest)
	}

	if c.Data.StatsSampleSize < 1 {
		return fmt.Errorf("config: STATS_SAMPLE_SIZE deve ser positivo: %d", c.Data.StatsSampleSize)
	}

	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("config: TOKEN_TTL deve ser positivo: %s", c.Auth.TokenTTL)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
