package config

// APIConfig holds all configuration for the API service
type APIConfig struct {
	Service  ServiceConfig
	HTTP     HTTPServerConfig
	Client   HTTPClientConfig
	Metrics  MetricsConfig
	Tracing  TracingConfig
	DynamoDB DynamoDBConfig
	NATS     NATSConfig
	Model    ModelConfig
	Whois    WhoisConfig
	Cache    CacheConfig
	Locale   LocaleConfig
}

// LoadAPI loads the configuration for the API service
func LoadAPI() *APIConfig {
	return &APIConfig{
		Service:  NewServiceConfig("api"),
		HTTP:     NewHTTPServerConfig(":8080"),
		Client:   NewHTTPClientConfig(),
		Metrics:  NewMetricsConfig("9090"),
		Tracing:  NewTracingConfig("api"),
		DynamoDB: NewDynamoDBConfig(),
		NATS:     NewNATSConfig(),
		Model:    NewModelConfig(),
		Whois:    NewWhoisConfig(),
		Cache:    NewCacheConfig(),
		Locale:   NewLocaleConfig(),
	}
}

// DetectorConfig holds all configuration for the detector service
type DetectorConfig struct {
	Service  ServiceConfig
	Client   HTTPClientConfig
	Metrics  MetricsConfig
	Tracing  TracingConfig
	DynamoDB DynamoDBConfig
	NATS     NATSConfig
	Model    ModelConfig
	Whois    WhoisConfig
	Cache    CacheConfig
}

// LoadDetector loads the configuration for the detector service
func LoadDetector() *DetectorConfig {
	return &DetectorConfig{
		Service:  NewServiceConfig("detector"),
		Client:   NewHTTPClientConfig(),
		Metrics:  NewMetricsConfig("9091"),
		Tracing:  NewTracingConfig("detector"),
		DynamoDB: NewDynamoDBConfig(),
		NATS:     NewNATSConfig(),
		Model:    NewModelConfig(),
		Whois:    NewWhoisConfig(),
		Cache:    NewCacheConfig(),
	}
}

// NotificationsConfig holds all configuration for the notifications service
type NotificationsConfig struct {
	Service   ServiceConfig
	HTTP      HTTPServerConfig
	WebSocket WebSocketConfig
	Metrics   MetricsConfig
	Tracing   TracingConfig
	NATS      NATSConfig
}

// LoadNotifications loads the configuration for the notifications service
func LoadNotifications() *NotificationsConfig {
	return &NotificationsConfig{
		Service:   NewServiceConfig("notifications"),
		HTTP:      NewHTTPServerConfig(":8081"),
		WebSocket: NewWebSocketConfig(),
		Metrics:   NewMetricsConfig("9092"),
		Tracing:   NewTracingConfig("notifications"),
		NATS:      NewNATSConfig(),
	}
}
