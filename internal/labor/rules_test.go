package labor

import (
	"strings"
	"testing"

	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestInboundJacks(t *testing.T) {
	assert.Equal(t, 2, InboundJacks(core.RunningPlants{PLE: true, E1: true}))
	assert.Equal(t, 0, InboundJacks(core.RunningPlants{}))
	assert.Equal(t, 4, InboundJacks(core.RunningPlants{PLE: true, E1: true, E2: true, Waters: true}))
	assert.Equal(t, 1, InboundJacks(core.RunningPlants{Waters: true}))

	// 所有组合都等于开启的数量
	for mask := 0; mask < 16; mask++ {
		plants := core.RunningPlants{
			PLE:    mask&1 != 0,
			E1:     mask&2 != 0,
			E2:     mask&4 != 0,
			Waters: mask&8 != 0,
		}
		expected := 0
		for m := mask; m != 0; m >>= 1 {
			expected += m & 1
		}
		assert.Equal(t, expected, InboundJacks(plants))
	}
}

func TestNWPETJacks(t *testing.T) {
	assert.Equal(t, 1, NWPETJacks(5))
	assert.Equal(t, 3, NWPETJacks(9))
	assert.Equal(t, 0, NWPETJacks(0))
	assert.Equal(t, 0, NWPETJacks(2))
}

func TestDRPJacks(t *testing.T) {
	assert.Equal(t, 3, DRPJacks(10))
	assert.Equal(t, 2, DRPJacks(8))
	assert.Equal(t, 1, DRPJacks(1))
	assert.Equal(t, 0, DRPJacks(0))
}

func TestManualLabor(t *testing.T) {
	assert.Equal(t, 6, ManualLabor(3))
	assert.Equal(t, 0, ManualLabor(0))
}

func TestNWPETLabor(t *testing.T) {
	assert.Equal(t, 4, NWPETLabor(8))
	assert.Equal(t, 2, NWPETLabor(5))
	assert.Equal(t, 0, NWPETLabor(1))
	assert.Equal(t, 1, NWPETLabor(2))
}

func TestCalculate(t *testing.T) {
	demand := Calculate(core.LiveInput{
		Plants:               core.RunningPlants{PLE: true, E2: true},
		NWPETExpectedArrival: 9,
		DRPPendingLoads:      10,
		ManualVehicles:       3,
	})
	assert.False(t, demand.OutboundFBJacks.Available())
	assert.Equal(t, 3, demand.DRPJacks)
	assert.Equal(t, 2, demand.InboundJacks)
	assert.Equal(t, 1, demand.PalletHandlingJacks)
	assert.Equal(t, 6, demand.ManualLabor)
	assert.Equal(t, 3, demand.NWPETJacks)
	assert.Equal(t, 4, demand.NWPETLabor)
}

func TestWriteReport(t *testing.T) {
	demand := Calculate(core.LiveInput{DRPPendingLoads: 10, ManualVehicles: 3, NWPETExpectedArrival: 8})
	builder := &strings.Builder{}
	err := WriteReport(builder, demand)
	assert.NoError(t, err)

	report := builder.String()
	assert.Contains(t, report, "Outbound F&B Battery Jack: unavailable\n")
	assert.Contains(t, report, "DRP Battery Jack: 3\n")
	assert.Contains(t, report, "Pallet Handling Battery Jack: 1\n")
	assert.Contains(t, report, "Manual Labor: 6\n")
	assert.Contains(t, report, "NW PET Labor: 4\n")
	assert.Less(t, strings.Index(report, "F&B"), strings.Index(report, "Waters"))

	demand.OutboundFBJacks = core.Predicted(5)
	builder.Reset()
	assert.NoError(t, WriteReport(builder, demand))
	assert.Contains(t, builder.String(), "Outbound F&B Battery Jack: 5\n")
}
