package config

import (
	"github.com/spf13/viper"
)

// Logger logger config struct
type Logger struct {
	Level      string // DEBUG, INFO, WARNING, ERROR or CRITICAL
	Format     string // json or text
	Output     string // stdout, stderr or file
	OutputFile string
	// DBLevel is the lowest level persisted to the logs database, empty disables it.
	DBLevel string
}

func getLoggerConfig(v *viper.Viper) *Logger {
	return &Logger{
		Level:      v.GetString("logger.level"),
		Format:     v.GetString("logger.format"),
		Output:     v.GetString("logger.output"),
		OutputFile: v.GetString("logger.output_file"),
		DBLevel:    v.GetString("logger.db_level"),
	}
}
