package core

import (
	"reflect"

	"github.com/pkg/errors"
)

// 历史数据表中的列名，必须与数据文件表头完全一致（包括末尾空格）
const (
	ColExpectedArrival      = "Expected Arrival"
	ColActualArrival        = "Actual Arrival"
	ColCarryForward         = "Carry Forward "
	ColVehiclesInPlan       = "Vehicles in Plan"
	ColLoadingLabor         = "Loading Labor"
	ColBJOperators          = "BJ Operators"
	ColTrueBJPlan           = "True BJ Plan"
	ColPalletSorters        = "Pallet Sorters"
	ColTruckInspectors      = "Truck Inspectors"
	ColTotalCasesDispatched = "Total Cases Dispatched"
	ColPFCasesDispatched    = "PF Cases Dispatched"
	ColTotalOutboundProd    = "Total Outbound Prod."
	ColTotalPFProd          = "Total PF Prod."
	ColPFLineItems          = "PF Line Items"
	ColOrders               = "Orders"
	ColPFItemsPerOBD        = "PF Items/OBD"

	// 派生列
	ColPFPercentage = "PF%"
)

// 需要转换为数字的列
var NumericColumns = []string{
	ColExpectedArrival, ColActualArrival, ColCarryForward,
	ColVehiclesInPlan, ColLoadingLabor, ColBJOperators,
	ColTrueBJPlan, ColPalletSorters, ColTruckInspectors,
	ColTotalCasesDispatched, ColPFCasesDispatched,
	ColTotalOutboundProd, ColTotalPFProd, ColPFLineItems,
	ColOrders, ColPFItemsPerOBD,
}

// 使用IQR方法截断异常值的列
var OutlierColumns = []string{
	ColTotalCasesDispatched, ColPFCasesDispatched, ColTotalOutboundProd,
	ColTotalPFProd, ColPFLineItems, ColOrders,
}

// 主模型的特征列，顺序固定
var FeatureColumns = []string{
	ColVehiclesInPlan, ColTotalCasesDispatched, ColPFCasesDispatched,
	ColTotalOutboundProd, ColTotalPFProd, ColPFLineItems, ColOrders, ColPFItemsPerOBD,
}

const TargetColumn = ColTrueBJPlan

// 估计模型的输入列，顺序固定
var EstimationColumns = []string{ColOrders, ColVehiclesInPlan}

// 需要计算75分位数的列
var PercentileColumns = []string{
	ColTotalOutboundProd, ColTotalPFProd, ColPFLineItems, ColPFItemsPerOBD,
}

const ReferencePercentile = 0.75

// OperationalRecord 历史运营数据中的一行。缺失值为NaN。
type OperationalRecord struct {
	ExpectedArrival      float64 `column:"Expected Arrival" json:"expectedArrival"`
	ActualArrival        float64 `column:"Actual Arrival" json:"actualArrival"`
	CarryForward         float64 `column:"Carry Forward " json:"carryForward"`
	VehiclesInPlan       float64 `column:"Vehicles in Plan" json:"vehiclesInPlan"`
	LoadingLabor         float64 `column:"Loading Labor" json:"loadingLabor"`
	BJOperators          float64 `column:"BJ Operators" json:"bjOperators"`
	TrueBJPlan           float64 `column:"True BJ Plan" json:"trueBJPlan"`
	PalletSorters        float64 `column:"Pallet Sorters" json:"palletSorters"`
	TruckInspectors      float64 `column:"Truck Inspectors" json:"truckInspectors"`
	TotalCasesDispatched float64 `column:"Total Cases Dispatched" json:"totalCasesDispatched"`
	PFCasesDispatched    float64 `column:"PF Cases Dispatched" json:"pfCasesDispatched"`
	TotalOutboundProd    float64 `column:"Total Outbound Prod." json:"totalOutboundProd"`
	TotalPFProd          float64 `column:"Total PF Prod." json:"totalPFProd"`
	PFLineItems          float64 `column:"PF Line Items" json:"pfLineItems"`
	Orders               float64 `column:"Orders" json:"orders"`
	PFItemsPerOBD        float64 `column:"PF Items/OBD" json:"pfItemsPerOBD"`
}

var NumRecordFields = reflect.TypeOf(OperationalRecord{}).NumField()

// RecordColumnTag 字段上标记列名的tag
const RecordColumnTag = "column"

// PercentileReference 列名到其历史75分位数的映射。计算后只读。
type PercentileReference map[string]float64

// Get 返回列的分位数，不存在时返回0
func (p PercentileReference) Get(column string) float64 {
	if v, ok := p[column]; ok {
		return v
	}
	return 0
}

// RunningPlants 当前运行的工厂
type RunningPlants struct {
	PLE    bool `json:"ple" form:"ple"`       // Dairy & Juice
	E1     bool `json:"e1" form:"e1"`         // Egron-1
	E2     bool `json:"e2" form:"e2"`         // Egron-2
	Waters bool `json:"waters" form:"waters"` // Waters
}

// LiveInput 单次请求的输入，全部为非负数
type LiveInput struct {
	Plants               RunningPlants `json:"plants"`
	FBExpectedArrival    int           `json:"fbExpectedArrival" form:"fbExpectedArrival" binding:"min=0"` // 即Vehicles in Plan
	FBOrders             int           `json:"fbOrders" form:"fbOrders" binding:"min=0"`
	NWPETExpectedArrival int           `json:"nwpetExpectedArrival" form:"nwpetExpectedArrival" binding:"min=0"`
	DRPPendingLoads      int           `json:"drpPendingLoads" form:"drpPendingLoads" binding:"min=0"`
	ManualVehicles       int           `json:"manualVehicles" form:"manualVehicles" binding:"min=0"`
}

// LaborDemand 一次计算的全部输出
type LaborDemand struct {
	OutboundFBJacks     Prediction `json:"outboundFBBatteryJack"`
	DRPJacks            int        `json:"drpBatteryJack"`
	InboundJacks        int        `json:"inboundBatteryJack"`
	PalletHandlingJacks int        `json:"palletHandlingBatteryJack"`
	ManualLabor         int        `json:"manualLabor"`
	NWPETJacks          int        `json:"nwpetBatteryJack"`
	NWPETLabor          int        `json:"nwpetLabor"`
}

// Validate 所有数量必须为非负数
func (in *LiveInput) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"fbExpectedArrival", in.FBExpectedArrival},
		{"fbOrders", in.FBOrders},
		{"nwpetExpectedArrival", in.NWPETExpectedArrival},
		{"drpPendingLoads", in.DRPPendingLoads},
		{"manualVehicles", in.ManualVehicles},
	}
	for _, f := range fields {
		if f.value < 0 {
			return errors.Wrapf(ErrInvalidInput, "%s不能为负数，现在为%d", f.name, f.value)
		}
	}
	return nil
}
