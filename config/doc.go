// Package config loads the service configuration with Viper.
//
// Values come, in increasing priority, from built-in defaults, a config file
// named config.{yaml,json,toml} (searched in /etc/monoapi, $HOME/.monoapi, the
// working directory and the executable directory, or given with -conf), a .env
// file and the process environment.
//
// The familiar environment names are honoured:
//
//	MYSQL_HOST, MYSQL_PORT, MYSQL_USER, MYSQL_PASSWORD, MYSQL_DATABASE
//	MYSQL_ANALYTICS_*, MYSQL_LOGS_*
//	DB_POOL_SIZE, DB_MAX_OVERFLOW, DB_POOL_TIMEOUT, DB_POOL_RECYCLE
//	BACKEND_CORS_ORIGINS, LOG_LEVEL, API_V1_STR, PROJECT_NAME
//
// # Example
//
//	app_name: monoapi
//	server:
//	  port: 8000
//	  cors_origins: [http://localhost:3000]
//	data:
//	  database:
//	    main:
//	      driver: sqlite
//	      source: file:main.db?_foreign_keys=on
//	    pool_size: 10
//	  redis:
//	    addr: localhost:6379
//
// # Hot Reload
//
//	config.Watch(func(c *config.Config) {
//	    logger.StdLogger().SetLevelName(c.Logger.Level)
//	})
package config
