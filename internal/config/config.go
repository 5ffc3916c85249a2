package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App      App      `mapstructure:",squash"`
	Server   Server   `mapstructure:",squash"`
	Database Database `mapstructure:",squash"`
	Telegram Telegram `mapstructure:",squash"`
	Report   Report   `mapstructure:",squash"`
	Render   Render   `mapstructure:",squash"`
	Auth     Auth     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver" validate:"required"`
	Host     string `mapstructure:"database_host" validate:"required"`
	Port     int    `mapstructure:"database_port" validate:"required"`
	Name     string `mapstructure:"database_name" validate:"required"`
	User     string `mapstructure:"database_user" validate:"required"`
	Password string `mapstructure:"database_password"`
	SSLMode  string `mapstructure:"database_sslmode"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns" validate:"gte=1"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime" validate:"gte=0"`
	ConnectTimeout  time.Duration `mapstructure:"database_connect_timeout" validate:"gt=0"`
}

type Telegram struct {
	Token       string `mapstructure:"telegram_bot_token" validate:"required"`
	ChatID      int64  `mapstructure:"telegram_chat_id" validate:"required"`
	APIEndpoint string `mapstructure:"telegram_api_endpoint" validate:"required"`
}

type Report struct {
	CronSchedule string         `mapstructure:"report_cron" validate:"required"`
	Enabled      bool           `mapstructure:"report_enabled"`
	Timezone     string         `mapstructure:"report_timezone" validate:"required"`
	EventsTable  string         `mapstructure:"report_events_table" validate:"required"`
	Retries      int            `mapstructure:"report_retries" validate:"gte=0"`
	RetryDelay   time.Duration  `mapstructure:"report_retry_delay" validate:"gte=0"`
	Location     *time.Location `mapstructure:"-"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
	BaseURL   string `mapstructure:"render_base_url"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Nomes dos secret files no Render usados para preencher credenciais ausentes
const (
	SecretTelegramBotToken = "telegram_bot_token"
	SecretDatabasePassword = "database_password"
	SecretAuth             = "auth_secret"
)

func SetDefaults(v *viper.Viper) {
	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8000")

	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", 5432)
	v.SetDefault("DATABASE_NAME", "feed")
	v.SetDefault("DATABASE_USER", "postgres")
	v.SetDefault("DATABASE_PASSWORD", "")
	v.SetDefault("DATABASE_SSLMODE", "disable")
	// uma consulta por execução do relatório, não há motivo para um pool grande
	v.SetDefault("DATABASE_MAX_OPEN_CONNS", 2)
	v.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	v.SetDefault("DATABASE_CONNECT_TIMEOUT", "10s")

	// Token e canal nunca têm valor padrão: vêm do ambiente ou do Render
	v.SetDefault("TELEGRAM_BOT_TOKEN", "")
	v.SetDefault("TELEGRAM_CHAT_ID", 0)
	v.SetDefault("TELEGRAM_API_ENDPOINT", "https://api.telegram.org/bot%s/%s")

	v.SetDefault("REPORT_CRON", "0 11 * * *") // Todos os dias às 11h
	v.SetDefault("REPORT_ENABLED", true)
	v.SetDefault("REPORT_TIMEZONE", "UTC")
	v.SetDefault("REPORT_EVENTS_TABLE", "feed_actions")
	v.SetDefault("REPORT_RETRIES", 2)         // 2 novas tentativas após a primeira falha
	v.SetDefault("REPORT_RETRY_DELAY", "5m") // 5 minutos entre tentativas

	v.SetDefault("RENDER_API_KEY", "")
	v.SetDefault("RENDER_SERVICE_ID", "")
	v.SetDefault("RENDER_BASE_URL", "https://api.render.com/v1")

	v.SetDefault("AUTH_SECRET", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	v := viper.New()
	SetDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Render.ServiceID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
		defer cancel()

		var storage SecretStorage = NewRenderClient(config)
		secretsByName, err := storage.ListSecrets(ctx, config.Render.ServiceID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter secrets do Render")
			return nil, err
		}
		applySecrets(config, secretsByName)
	}

	// o nome do fuso também vai para o Postgres (AT TIME ZONE), então "Local" não serve
	if config.Report.Timezone == "Local" {
		return nil, fmt.Errorf("config: fuso horário inválido %q: use um nome IANA", config.Report.Timezone)
	}
	config.Report.Location, err = time.LoadLocation(config.Report.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: fuso horário inválido %q: %w", config.Report.Timezone, err)
	}

	config.Database.DSN = buildDSN(config.Database)

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("config: configuração inválida: %w", err)
	}

	return config, nil
}

// applySecrets preenche apenas os valores que não vieram do ambiente
func applySecrets(config *Config, secretsByName map[string]string) {
	if token, ok := secretsByName[SecretTelegramBotToken]; ok && config.Telegram.Token == "" {
		config.Telegram.Token = token
	}
	if password, ok := secretsByName[SecretDatabasePassword]; ok && config.Database.Password == "" {
		config.Database.Password = password
	}
	if secret, ok := secretsByName[SecretAuth]; ok && config.Auth.Secret == "" {
		config.Auth.Secret = secret
	}
}

func buildDSN(db Database) string {
	dsn := url.URL{
		Scheme: db.Driver,
		User:   url.UserPassword(db.User, db.Password),
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}
	if db.SSLMode != "" {
		dsn.RawQuery = url.Values{"sslmode": []string{db.SSLMode}}.Encode()
	}
	return dsn.String()
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de: ", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
