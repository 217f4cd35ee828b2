package config

import (
	"time"

	"github.com/spf13/viper"
)

// Server server config struct
type Server struct {
	Host            string
	Port            int
	APIPrefix       string
	CORSOrigins     []string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

func getServerConfig(v *viper.Viper) *Server {
	return &Server{
		Host:            v.GetString("server.host"),
		Port:            v.GetInt("server.port"),
		APIPrefix:       v.GetString("server.api_prefix"),
		CORSOrigins:     getStringList(v, "server.cors_origins"),
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		IdleTimeout:     v.GetDuration("server.idle_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
	}
}
