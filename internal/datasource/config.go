package datasource

import (
	"fmt"

	"github.com/pkg/errors"
)

const DefaultDatabase = "labor_demand"

// SourceConfig 数据来源配置。MysqlHost不为空时从数据库读取，否则读取DataFile。
type SourceConfig struct {
	DataFile      string
	MysqlHost     string
	MysqlUser     string
	MysqlPassword string
	MysqlDatabase string
}

func (c *SourceConfig) Complete() error {
	if c.MysqlHost == "" && c.DataFile == "" {
		return fmt.Errorf("数据文件与数据库地址不能同时为空")
	}
	if c.MysqlDatabase == "" {
		c.MysqlDatabase = DefaultDatabase
	}
	return nil
}

func (c *SourceConfig) DSN() string {
	return MysqlDSN(c.MysqlHost, c.MysqlUser, c.MysqlPassword, c.MysqlDatabase)
}

// Open 根据配置创建数据源
func (c *SourceConfig) Open() (Source, error) {
	if err := c.Complete(); err != nil {
		return nil, err
	}
	if c.MysqlHost == "" {
		return NewCsvFileSource(c.DataFile), nil
	}

	dao, err := NewDao(c.DSN())
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("连接数据库%s失败", c.MysqlHost))
	}
	return NewMysqlSource(dao), nil
}
