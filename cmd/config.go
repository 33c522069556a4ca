package cmd

// Config holds the runtime settings of the application, populated from
// environment variables (optionally seeded from a .env file).
type Config struct {
	HTTPPort        string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel        string `envconfig:"LOG_LEVEL" default:"info"`
	SummarySchedule string `envconfig:"SUMMARY_SCHEDULE" default:"0 * * * * *"`
}
