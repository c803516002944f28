package datasource

import (
	"database/sql"

	"gorm.io/gorm"
)

// OperationalRecordDO 历史运营数据表。字段名与core.OperationalRecord一一对应，缺失值为NULL。
type OperationalRecordDO struct {
	gorm.Model
	ExpectedArrival      sql.NullFloat64
	ActualArrival        sql.NullFloat64
	CarryForward         sql.NullFloat64
	VehiclesInPlan       sql.NullFloat64
	LoadingLabor         sql.NullFloat64
	BJOperators          sql.NullFloat64
	TrueBJPlan           sql.NullFloat64
	PalletSorters        sql.NullFloat64
	TruckInspectors      sql.NullFloat64
	TotalCasesDispatched sql.NullFloat64
	PFCasesDispatched    sql.NullFloat64
	TotalOutboundProd    sql.NullFloat64
	TotalPFProd          sql.NullFloat64
	PFLineItems          sql.NullFloat64
	Orders               sql.NullFloat64
	PFItemsPerOBD        sql.NullFloat64
}
