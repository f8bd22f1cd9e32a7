package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"aeon/config"
)

// setting is one configuration value as shown by the env command.
type setting struct {
	key    string
	value  string
	secret bool
}

func (s setting) String() string {
	if s.value == "" {
		return fmt.Sprintf("%s: (empty)", s.key)
	}

	shown := s.value
	if s.secret {
		shown = strings.Repeat("*", 8)
	}

	return fmt.Sprintf("%s: %s (length %d)", s.key, shown, utf8.RuneCountInString(s.value))
}

func describeDatabase(cfg *config.Config) []setting {
	settings := []setting{
		{key: "database.driver", value: cfg.Database.Driver},
		{key: "http.port", value: strconv.Itoa(cfg.HTTP.Port)},
	}

	switch {
	case cfg.Database.Driver == config.DriverMySQL && cfg.Database.MySQL != nil:
		mysqlCfg := cfg.Database.MySQL
		settings = append(settings,
			setting{key: "database.mysql.host", value: mysqlCfg.Host},
			setting{key: "database.mysql.port", value: strconv.Itoa(mysqlCfg.Port)},
			setting{key: "database.mysql.user", value: mysqlCfg.User},
			setting{key: "database.mysql.password", value: mysqlCfg.Password, secret: true},
			setting{key: "database.mysql.database", value: mysqlCfg.Database},
			setting{key: "database.mysql.replicas", value: strconv.Itoa(len(mysqlCfg.Replicas))},
		)
	case cfg.Database.Driver == config.DriverPostgres && cfg.Database.Postgres != nil:
		settings = append(settings,
			setting{key: "database.postgres.replicas", value: strconv.Itoa(len(cfg.Database.Postgres.Replicas))},
		)
	}

	settings = append(settings, setting{key: "secretKey.access", value: cfg.SecretKey.Access, secret: true})

	return settings
}

func printSettings(w io.Writer, settings []setting) {
	for _, s := range settings {
		fmt.Fprintln(w, s.String())
	}
}
