package main

import (
	"bytes"
	"testing"

	"aeon/config"
	"aeon/internal/domain/entity"
	"aeon/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestSetting_String(t *testing.T) {
	tests := []struct {
		name    string
		setting setting
		want    string
	}{
		{name: "plain", setting: setting{key: "database.mysql.host", value: "localhost"}, want: "database.mysql.host: localhost (length 9)"},
		{name: "secret", setting: setting{key: "database.mysql.password", value: "pw", secret: true}, want: "database.mysql.password: ******** (length 2)"},
		{name: "empty secret", setting: setting{key: "secretKey.access", secret: true}, want: "secretKey.access: (empty)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.setting.String())
		})
	}
}

func TestDescribeDatabase_MasksPassword(t *testing.T) {
	cfg := &config.Config{}
	cfg.HTTP.Port = 4000
	cfg.Database.Driver = config.DriverMySQL
	cfg.Database.MySQL = &config.MySQLConfig{Host: "db", Port: 3306, User: "root", Password: "hunter22", Database: "aeon_db"}

	var out bytes.Buffer
	printSettings(&out, describeDatabase(cfg))

	assert.Contains(t, out.String(), "database.mysql.password: ******** (length 8)")
	assert.Contains(t, out.String(), "database.mysql.database: aeon_db (length 7)")
	assert.NotContains(t, out.String(), "hunter22")
}

func TestPrintTables(t *testing.T) {
	var out bytes.Buffer
	printTables(&out, []entity.TableInfo{{
		Name: "brands",
		Columns: []entity.ColumnInfo{
			{Name: "id", Type: "int", Nullable: false},
			{Name: "img", Type: "varchar(255)", Nullable: true},
		},
	}}, true)

	assert.Contains(t, out.String(), "brands\n")
	assert.Regexp(t, `id\s+int\s+NOT NULL`, out.String())
	assert.Regexp(t, `img\s+varchar\(255\)\s+NULL`, out.String())

	out.Reset()
	printTables(&out, nil, true)
	assert.Equal(t, "No tables found.\n", out.String())
}

func TestPrintSeeded(t *testing.T) {
	var out bytes.Buffer
	printSeeded(&out, []usecase.SeededUser{
		{Username: "admin", Role: entity.RoleAdmin, Created: true},
		{Username: "user", Role: entity.RoleCustomer},
	})

	assert.Regexp(t, `admin\s+admin\s+created`, out.String())
	assert.Regexp(t, `user\s+customer\s+updated`, out.String())
}
