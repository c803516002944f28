package server

import (
	"os"
	"testing"

	"github.com/packagewjx/labor-demand/internal/datasource"
	"github.com/stretchr/testify/assert"
)

const testDataFile = "../../test/csv/base_data.csv"

func TestServerConfig_Complete(t *testing.T) {
	config := ServerConfig{
		Port:   DefaultPort,
		Source: datasource.SourceConfig{DataFile: testDataFile},
	}
	assert.NoError(t, config.Complete())

	configCopy := config
	configCopy.Port = 80
	assert.Error(t, configCopy.Complete())

	if os.Getenv("MYSQL_SERVICE_HOST") == "" {
		configCopy = config
		configCopy.Source = datasource.SourceConfig{}
		assert.Error(t, configCopy.Complete())
	}

	// 不输出密码
	configCopy = config
	configCopy.Source.MysqlPassword = "secret"
	assert.NotContains(t, configCopy.String(), "secret")
	assert.Equal(t, "secret", configCopy.Source.MysqlPassword)
}

func TestNewServer(t *testing.T) {
	config := ServerConfig{
		Port:   DefaultPort,
		Source: datasource.SourceConfig{DataFile: testDataFile},
	}
	s, err := NewServer(&config)
	assert.NoError(t, err)
	assert.NotNil(t, s.Handler())

	configCopy := config
	configCopy.Source = datasource.SourceConfig{DataFile: "../../test/csv/not_exist.csv"}
	_, err = NewServer(&configCopy)
	assert.Error(t, err)

	configCopy = config
	configCopy.Port = 0
	_, err = NewServer(&configCopy)
	assert.Error(t, err)
}
