package datasource

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"os"
	"reflect"

	"github.com/go-gota/gota/dataframe"
	"github.com/packagewjx/labor-demand/internal/utils"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Dao interface {
	DB() *gorm.DB
	SaveAllRecords(arr []*core.OperationalRecord) error
	QueryAllRecords() ([]*core.OperationalRecord, error)
	// 永久删除所有记录
	RemoveAllRecords() error
}

type daoImpl struct {
	db     *gorm.DB
	logger zerolog.Logger
}

var _ Dao = &daoImpl{}

// MysqlDSN 根据主机端口与认证信息生成连接串。user为空时使用root。
func MysqlDSN(host, user, password, database string) string {
	if user == "" {
		user = "root"
	}
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, database)
}

func NewDao(dsn string) (Dao, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "", 0), logger.Config{
			LogLevel: logger.Silent,
		}),
	})
	if err != nil {
		return nil, errors.Wrap(err, "连接数据库错误")
	}
	return NewDaoWithDB(db)
}

// NewDaoWithDB 使用已打开的连接创建Dao，并创建表格
func NewDaoWithDB(db *gorm.DB) (Dao, error) {
	err := db.AutoMigrate(&OperationalRecordDO{})
	if err != nil {
		return nil, errors.Wrap(err, "创建表格时出现异常")
	}

	return &daoImpl{
		db:     db,
		logger: utils.NewLogger("dao"),
	}, nil
}

func (d *daoImpl) SaveAllRecords(arr []*core.OperationalRecord) error {
	const MaxOneRun = 5000

	doArr := make([]*OperationalRecordDO, len(arr))
	for i, record := range arr {
		doArr[i] = recordToDO(record)
	}

	d.logger.Info().Int("count", len(doArr)).Msg("插入运营记录到数据库")

	for i := 0; i < len(doArr); i += MaxOneRun {
		end := i + MaxOneRun
		if end > len(doArr) {
			end = len(doArr)
		}
		err := d.db.Create(doArr[i:end]).Error
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("插入第%d到%d条运营记录出错", i, end))
		}
	}

	return nil
}

func (d *daoImpl) QueryAllRecords() ([]*core.OperationalRecord, error) {
	doArr := make([]*OperationalRecordDO, 0)
	err := d.db.Order("id asc").Find(&doArr).Error
	if err != nil {
		return nil, errors.Wrap(err, "查询运营记录出错")
	}

	result := make([]*core.OperationalRecord, len(doArr))
	for i, do := range doArr {
		result[i] = doToRecord(do)
	}
	return result, nil
}

func (d *daoImpl) RemoveAllRecords() error {
	return d.db.Model(&OperationalRecordDO{}).Unscoped().Where("1 = 1").Delete(&OperationalRecordDO{}).Error
}

func (d *daoImpl) DB() *gorm.DB {
	return d.db
}

func recordToDO(record *core.OperationalRecord) *OperationalRecordDO {
	do := &OperationalRecordDO{}
	recordVal := reflect.ValueOf(record).Elem()
	doVal := reflect.ValueOf(do).Elem()
	typ := recordVal.Type()
	for fi := 0; fi < typ.NumField(); fi++ {
		f := recordVal.Field(fi).Float()
		nullable := sql.NullFloat64{Float64: f, Valid: !math.IsNaN(f) && !math.IsInf(f, 0)}
		if !nullable.Valid {
			nullable.Float64 = 0
		}
		doVal.FieldByName(typ.Field(fi).Name).Set(reflect.ValueOf(nullable))
	}
	return do
}

func doToRecord(do *OperationalRecordDO) *core.OperationalRecord {
	record := &core.OperationalRecord{}
	recordVal := reflect.ValueOf(record).Elem()
	doVal := reflect.ValueOf(do).Elem()
	typ := recordVal.Type()
	for fi := 0; fi < typ.NumField(); fi++ {
		nullable := doVal.FieldByName(typ.Field(fi).Name).Interface().(sql.NullFloat64)
		if nullable.Valid {
			recordVal.Field(fi).SetFloat(nullable.Float64)
		} else {
			recordVal.Field(fi).SetFloat(math.NaN())
		}
	}
	return record
}

// NewMysqlSource 从数据库读取全部运营记录作为数据来源
func NewMysqlSource(dao Dao) Source {
	return &mysqlSource{dao: dao}
}

type mysqlSource struct {
	dao Dao
}

func (m *mysqlSource) Load() (dataframe.DataFrame, error) {
	records, err := m.dao.QueryAllRecords()
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrap(core.ErrDataUnavailable, err.Error())
	}
	if len(records) == 0 {
		return dataframe.DataFrame{}, errors.Wrap(core.ErrDataUnavailable, "数据库中没有运营记录")
	}
	return FrameFromRecords(records), nil
}
