package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DataSourceDatabase = "database"
	DataSourcePlatform = "platform"
)

type Config struct {
	App                  App                  `mapstructure:",squash"`
	Server               Server               `mapstructure:",squash"`
	Database             Database             `mapstructure:",squash"`
	Redis                Redis                `mapstructure:",squash"`
	Platform             Platform             `mapstructure:",squash"`
	Auth                 Auth                 `mapstructure:",squash"`
	RateLimit            RateLimit            `mapstructure:",squash"`
	Cache                Cache                `mapstructure:",squash"`
	Reporting            Reporting            `mapstructure:",squash"`
	DailyPerformanceSync DailyPerformanceSync `mapstructure:",squash"`
	StoreRankingSync     StoreRankingSync     `mapstructure:",squash"`
}

type App struct {
	LogLevel   string `mapstructure:"log_level"`
	DataSource string `mapstructure:"data_source"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
	Enabled  bool   `mapstructure:"redis_enabled"`
}

// Platform é a API REST da plataforma hospedada (fonte alternativa de eventos)
type Platform struct {
	URL     string        `mapstructure:"platform_url"`
	APIKey  string        `mapstructure:"platform_api_key"`
	Timeout time.Duration `mapstructure:"platform_timeout"`
}

// Auth guarda o segredo usado pela plataforma para assinar os tokens de sessão
type Auth struct {
	Secret     string   `mapstructure:"auth_secret"`
	AdminRoles []string `mapstructure:"auth_admin_roles"`
}

type RateLimit struct {
	RequestsPerSecond float64 `mapstructure:"rate_limit_rps"`
	Burst             int     `mapstructure:"rate_limit_burst"`
	Enabled           bool    `mapstructure:"rate_limit_enabled"`
}

type Cache struct {
	TTL time.Duration `mapstructure:"cache_ttl"`
}

type Reporting struct {
	DefaultTopN     int    `mapstructure:"reporting_default_top_n"`
	OverviewDays    int    `mapstructure:"reporting_overview_days"`
	MaxOverviewDays int    `mapstructure:"reporting_max_overview_days"`
	Timezone        string `mapstructure:"reporting_timezone"`
}

type DailyPerformanceSync struct {
	CronSchedule string `mapstructure:"daily_performance_sync_cron"`
	Enabled      bool   `mapstructure:"daily_performance_sync_enabled"`
}

type StoreRankingSync struct {
	CronSchedule string `mapstructure:"store_ranking_sync_cron"`
	Enabled      bool   `mapstructure:"store_ranking_sync_enabled"`
}

// Location retorna o fuso configurado para os buckets diários (UTC quando inválido)
func (r Reporting) Location() *time.Location {
	if r.Timezone == "" {
		return time.UTC
	}

	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido %q, usando UTC", r.Timezone)
		return time.UTC
	}

	return loc
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("DATA_SOURCE", DataSourceDatabase)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/delivery?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_ENABLED", false)

	viper.SetDefault("PLATFORM_URL", "http://localhost:54321/rest/v1")
	viper.SetDefault("PLATFORM_API_KEY", "your_api_key") // ONLY LOCAL
	viper.SetDefault("PLATFORM_TIMEOUT", "10s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ADMIN_ROLES", "admin,super_admin")

	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("RATE_LIMIT_ENABLED", true)

	viper.SetDefault("CACHE_TTL", "5m")

	viper.SetDefault("REPORTING_DEFAULT_TOP_N", 5)
	viper.SetDefault("REPORTING_OVERVIEW_DAYS", 7)
	viper.SetDefault("REPORTING_MAX_OVERVIEW_DAYS", 90)
	viper.SetDefault("REPORTING_TIMEZONE", "Asia/Kolkata")

	viper.SetDefault("DAILY_PERFORMANCE_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DAILY_PERFORMANCE_SYNC_ENABLED", false)

	viper.SetDefault("STORE_RANKING_SYNC_CRON", "0 6 * * *") // Todos os dias às 6h da manhã
	viper.SetDefault("STORE_RANKING_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
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

// Validate confere os valores que não têm padrão seguro
func (c *Config) Validate() error {
	switch c.App.DataSource {
	case DataSourceDatabase, DataSourcePlatform:
	default:
		return fmt.Errorf("config: invalid DATA_SOURCE %q", c.App.DataSource)
	}

	if c.Reporting.DefaultTopN <= 0 {
		return fmt.Errorf("config: REPORTING_DEFAULT_TOP_N must be positive")
	}

	if c.Reporting.OverviewDays < 2 || c.Reporting.OverviewDays > c.Reporting.MaxOverviewDays {
		return fmt.Errorf("config: REPORTING_OVERVIEW_DAYS must be between 2 and %d", c.Reporting.MaxOverviewDays)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("config: rate limit requires positive RATE_LIMIT_RPS and RATE_LIMIT_BURST")
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
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
