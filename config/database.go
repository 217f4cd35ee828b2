package config

import (
	"time"

	"github.com/spf13/viper"
)

// Data data config struct
type Data struct {
	Database *Database
	Redis    *Redis
}

// Database holds one node per logical database.
type Database struct {
	Main      *DBNode
	Analytics *DBNode
	Logs      *DBNode
	Migrate   bool
}

// DBNode represents a single database connection configuration.
// Source, when set, is used verbatim as the DSN.
type DBNode struct {
	Name            string
	Driver          string
	Source          string
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	Logging         bool
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifeTime time.Duration
	ConnectTimeout  time.Duration
}

// Redis redis config struct
type Redis struct {
	Addr     string
	Username string
	Password string
	Db       int
	ItemTTL  time.Duration
}

func getDataConfig(v *viper.Viper) *Data {
	return &Data{
		Database: &Database{
			Main:      getDBNode(v, "main"),
			Analytics: getDBNode(v, "analytics"),
			Logs:      getDBNode(v, "logs"),
			Migrate:   v.GetBool("data.database.migrate"),
		},
		Redis: &Redis{
			Addr:     v.GetString("data.redis.addr"),
			Username: v.GetString("data.redis.username"),
			Password: v.GetString("data.redis.password"),
			Db:       v.GetInt("data.redis.db"),
			ItemTTL:  v.GetDuration("data.redis.item_ttl"),
		},
	}
}

// getDBNode reads a database node; pool settings are shared by all nodes.
func getDBNode(v *viper.Viper, name string) *DBNode {
	prefix := "data.database." + name
	poolSize := v.GetInt("data.database.pool_size")
	maxOverflow := v.GetInt("data.database.max_overflow")

	return &DBNode{
		Name:            name,
		Driver:          v.GetString(prefix + ".driver"),
		Source:          v.GetString(prefix + ".source"),
		Host:            v.GetString(prefix + ".host"),
		Port:            v.GetInt(prefix + ".port"),
		User:            v.GetString(prefix + ".user"),
		Password:        v.GetString(prefix + ".password"),
		Database:        v.GetString(prefix + ".database"),
		Logging:         v.GetBool(prefix + ".logging"),
		MaxIdleConn:     poolSize,
		MaxOpenConn:     poolSize + maxOverflow,
		ConnMaxLifeTime: time.Duration(v.GetInt("data.database.pool_recycle")) * time.Second,
		ConnectTimeout:  time.Duration(v.GetInt("data.database.pool_timeout")) * time.Second,
	}
}
