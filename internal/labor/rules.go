package labor

import (
	"math"

	"github.com/packagewjx/labor-demand/pkg/core"
)

// 托盘搬运电动叉车数量固定为1
const PalletHandlingJacks = 1

// 入库电动叉车：每个运行中的工厂一台
func InboundJacks(plants core.RunningPlants) int {
	count := 0
	for _, running := range []bool{plants.PLE, plants.E1, plants.E2, plants.Waters} {
		if running {
			count++
		}
	}
	return count
}

// NW PET电动叉车：每3辆车一台，向下取整
func NWPETJacks(expectedArrival int) int {
	return int(math.Floor(float64(expectedArrival) / 3))
}

// DRP电动叉车：每4个待装载一台，向上取整
func DRPJacks(pendingLoads int) int {
	return int(math.Ceil(float64(pendingLoads) / 4))
}

// 人工卸货：每辆车2人
func ManualLabor(vehicles int) int {
	return int(math.Ceil(float64(vehicles) * 2))
}

// NW PET人工：每4辆车2人，向下取整
func NWPETLabor(expectedArrival int) int {
	return int(math.Floor(float64(expectedArrival) / 4 * 2))
}

// Calculate 计算所有规则类输出。OutboundFBJacks由预测器负责，这里保持为不可用。
func Calculate(input core.LiveInput) *core.LaborDemand {
	return &core.LaborDemand{
		OutboundFBJacks:     core.Unavailable(nil),
		DRPJacks:            DRPJacks(input.DRPPendingLoads),
		InboundJacks:        InboundJacks(input.Plants),
		PalletHandlingJacks: PalletHandlingJacks,
		ManualLabor:         ManualLabor(input.ManualVehicles),
		NWPETJacks:          NWPETJacks(input.NWPETExpectedArrival),
		NWPETLabor:          NWPETLabor(input.NWPETExpectedArrival),
	}
}
