package log

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger é a interface de log usada pelo bot
type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger
	WithStep(step string) Logger

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
}

type contextKey string

const (
	// CorrelationIDKey guarda o ID de correlação de uma requisição HTTP
	CorrelationIDKey contextKey = "correlation_id"
	// RunIDKey guarda o ID da execução do relatório
	RunIDKey contextKey = "run_id"
)

const (
	correlationIDField = "correlation_id"
	runIDField         = "run_id"
	stepField          = "step"
)

// Campos mantidos mesmo em desenvolvimento
var developmentFields = map[string]bool{
	correlationIDField: true,
	runIDField:         true,
	stepField:          true,
	"attempt":          true,
	"day":              true,
	"method":           true,
	"path":             true,
	"status_code":      true,
	"duration_ms":      true,
	"error":            true,
}

// logger herda Debug, Info, Warn e Error da entry do logrus e só redefine os métodos que criam campos
type logger struct {
	*logrus.Entry
}

// L é o logger global, recriado por Configure e SetupTestLogger
var L Logger = newLogger()

func newLogger() Logger {
	return &logger{Entry: logrus.NewEntry(logrus.StandardLogger())}
}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	switch os.Getenv("APP_ENV") {
	case "", "development", "dev":
		return true
	}
	return false
}

// Configure define formato e nível do logrus a partir da configuração
func Configure(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	L = newLogger()
}

// SetupTestLogger configura um logger simplificado para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = newLogger()
}

// relevant descarta, em desenvolvimento, os campos que só interessam em produção
func relevant(fields Fields) logrus.Fields {
	if !IsDevelopment() {
		return logrus.Fields(fields)
	}

	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if developmentFields[k] {
			kept[k] = v
		}
	}
	return kept
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *logger) WithFields(fields Fields) Logger {
	kept := relevant(fields)
	if len(kept) == 0 {
		return l
	}
	return &logger{Entry: l.Entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{Entry: l.Entry.WithError(err)}
}

// WithStep marca as linhas com a etapa do relatório em andamento
func (l *logger) WithStep(step string) Logger {
	return l.WithField(stepField, step)
}

// WithContext copia para o logger os IDs de correlação e de execução presentes no contexto
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	fields := Fields{}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		fields[correlationIDField] = correlationID
	}
	if runID := GetRunID(ctx); runID != "" {
		fields[runIDField] = runID
	}

	return l.WithFields(fields)
}

// WithCorrelationID adiciona um ID de correlação ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	correlationID, _ := ctx.Value(CorrelationIDKey).(string)
	return correlationID
}

// WithRunID associa o ID de uma execução do relatório ao contexto
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

func GetRunID(ctx context.Context) string {
	runID, _ := ctx.Value(RunIDKey).(string)
	return runID
}

// ForContext cria um logger com os IDs presentes no contexto
func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
