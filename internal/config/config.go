package config

import (
	"os"
	"strconv"
	"time"
)

// Common configuration types used across all services

// ServiceConfig holds basic service information
type ServiceConfig struct {
	Name    string
	Version string
	Port    string
}

// MetricsConfig holds metrics server configuration
type MetricsConfig struct {
	Port string
}

// NATSConfig holds NATS connection configuration
type NATSConfig struct {
	URL string
}

// TracingConfig holds tracing configuration
type TracingConfig struct {
	ServiceName string
	ZipkinURL   string
}

// DynamoDBConfig holds DynamoDB connection configuration
type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// HTTPServerConfig holds HTTP server configuration
type HTTPServerConfig struct {
	Addr string
}

// HTTPClientConfig holds HTTP client configuration
type HTTPClientConfig struct {
	Timeout       time.Duration
	MaxConcurrent int
}

// WebSocketConfig holds WebSocket configuration
type WebSocketConfig struct {
	MaxConnections int
	ReadTimeout    int // seconds
	WriteTimeout   int // seconds
}

// ModelConfig holds prediction model configuration
type ModelConfig struct {
	Dir       string
	Threshold float64
}

// WhoisConfig holds WHOIS lookup configuration
type WhoisConfig struct {
	Timeout time.Duration
}

// CacheConfig holds prediction cache configuration
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// LocaleConfig holds i18n configuration
type LocaleConfig struct {
	Default string
}

// Common environment variable parsing functions

// GetEnv gets an environment variable with a default value
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetIntEnv gets an integer environment variable with a default value
func GetIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetFloatEnv gets a float environment variable with a default value
func GetFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// GetDurationEnv gets a duration environment variable with a default value
func GetDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetBoolEnv gets a boolean environment variable with a default value
func GetBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Common configuration builders

// NewServiceConfig creates a ServiceConfig with common defaults
func NewServiceConfig(serviceName string) ServiceConfig {
	return ServiceConfig{
		Name:    GetEnv("SERVICE_NAME", serviceName),
		Version: GetEnv("SERVICE_VERSION", "1.0.0"),
		Port:    GetEnv("PORT", "8080"),
	}
}

// NewMetricsConfig creates a MetricsConfig with common defaults
func NewMetricsConfig(defaultPort string) MetricsConfig {
	return MetricsConfig{
		Port: GetEnv("METRICS_PORT", defaultPort),
	}
}

// NewNATSConfig creates a NATSConfig with common defaults
func NewNATSConfig() NATSConfig {
	return NATSConfig{
		URL: GetEnv("NATS_URL", "nats://localhost:4222"),
	}
}

// NewTracingConfig creates a TracingConfig with common defaults
func NewTracingConfig(serviceName string) TracingConfig {
	return TracingConfig{
		ServiceName: GetEnv("TRACING_SERVICE_NAME", serviceName),
		ZipkinURL:   GetEnv("ZIPKIN_URL", "http://localhost:9411/api/v2/spans"),
	}
}

// NewDynamoDBConfig creates a DynamoDBConfig with common defaults
func NewDynamoDBConfig() DynamoDBConfig {
	return DynamoDBConfig{
		Region:          GetEnv("DYNAMODB_REGION", "us-east-1"),
		Endpoint:        GetEnv("DYNAMODB_ENDPOINT", "http://localhost:8000"),
		AccessKeyID:     GetEnv("DYNAMODB_ACCESS_KEY_ID", "local"),
		SecretAccessKey: GetEnv("DYNAMODB_SECRET_ACCESS_KEY", "local"),
	}
}

// NewHTTPServerConfig creates an HTTPServerConfig with common defaults
func NewHTTPServerConfig(defaultAddr string) HTTPServerConfig {
	return HTTPServerConfig{
		Addr: GetEnv("HTTP_ADDR", defaultAddr),
	}
}

// NewHTTPClientConfig creates an HTTPClientConfig with common defaults
func NewHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		Timeout:       GetDurationEnv("HTTP_CLIENT_TIMEOUT", 20*time.Second),
		MaxConcurrent: GetIntEnv("HTTP_MAX_CONCURRENT", 10),
	}
}

// NewWebSocketConfig creates a WebSocketConfig with common defaults
func NewWebSocketConfig() WebSocketConfig {
	return WebSocketConfig{
		MaxConnections: GetIntEnv("WS_MAX_CONNECTIONS", 1000),
		ReadTimeout:    GetIntEnv("WS_READ_TIMEOUT", 60),
		WriteTimeout:   GetIntEnv("WS_WRITE_TIMEOUT", 10),
	}
}

// NewModelConfig creates a ModelConfig with common defaults
func NewModelConfig() ModelConfig {
	return ModelConfig{
		Dir:       GetEnv("MODEL_DIR", "./models"),
		Threshold: GetFloatEnv("MODEL_THRESHOLD", 0.5),
	}
}

// NewWhoisConfig creates a WhoisConfig with common defaults
func NewWhoisConfig() WhoisConfig {
	return WhoisConfig{
		Timeout: GetDurationEnv("WHOIS_TIMEOUT", 5*time.Second),
	}
}

// NewCacheConfig creates a CacheConfig with common defaults
func NewCacheConfig() CacheConfig {
	return CacheConfig{
		Size: GetIntEnv("PREDICTION_CACHE_SIZE", 1024),
		TTL:  GetDurationEnv("PREDICTION_CACHE_TTL", 10*time.Minute),
	}
}

// NewLocaleConfig creates a LocaleConfig with common defaults
func NewLocaleConfig() LocaleConfig {
	return LocaleConfig{
		Default: GetEnv("DEFAULT_LOCALE", "en"),
	}
}
