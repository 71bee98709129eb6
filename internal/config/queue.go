package config

// QueueConfig controls the optional RabbitMQ integration: publishing
// tickets.refreshed events and running the log-writing consumer. Disabled
// by default since the broker is a pure observability add-on.
type QueueConfig struct {
	Enabled bool
}

// LoadQueueConfig reads QUEUE_ENABLED from the environment.
func LoadQueueConfig() QueueConfig {
	return QueueConfig{Enabled: envBool("QUEUE_ENABLED", false)}
}
