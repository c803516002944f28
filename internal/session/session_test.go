package session

import (
	"strings"
	"sync"
	"testing"

	"github.com/packagewjx/labor-demand/internal/datasource"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFile = "../../test/csv/base_data.csv"

func TestSession(t *testing.T) {
	s, err := New(datasource.NewCsvFileSource(testFile), &Config{Evaluate: true})
	require.NoError(t, err)
	assert.NoError(t, s.Models().Validate())
	assert.Equal(t, len(core.PercentileColumns), len(s.Reference()))
	require.NotNil(t, s.Evaluation())
	assert.Equal(t, 8, s.Evaluation().TestSize)

	input := core.LiveInput{
		Plants:               core.RunningPlants{PLE: true, E1: true, E2: false, Waters: true},
		FBExpectedArrival:    26,
		FBOrders:             41,
		NWPETExpectedArrival: 7,
		DRPPendingLoads:      5,
		ManualVehicles:       3,
	}
	demand := s.LaborDemand(input)
	assert.True(t, demand.OutboundFBJacks.Available())
	assert.Equal(t, 2, demand.DRPJacks)
	assert.Equal(t, 3, demand.InboundJacks)
	assert.Equal(t, 1, demand.PalletHandlingJacks)
	assert.Equal(t, 6, demand.ManualLabor)
	assert.Equal(t, 2, demand.NWPETJacks)
	assert.Equal(t, 3, demand.NWPETLabor)

	/*
		并发读取结果一致
	*/
	wg := sync.WaitGroup{}
	results := make([]*core.LaborDemand, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.LaborDemand(input)
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, demand, r)
	}
}

func TestSessionWithoutModels(t *testing.T) {
	// 缺少Orders等列，模型全部不可用，规则输出不受影响
	data := "Vehicles in Plan,True BJ Plan\n10,3\n12,4\n15,5\n"
	s, err := New(datasource.NewCsvSource(strings.NewReader(data)), nil)
	require.NoError(t, err)
	assert.Error(t, s.Models().Validate())
	assert.Nil(t, s.Evaluation())
	assert.Equal(t, 0, len(s.Reference()))

	demand := s.LaborDemand(core.LiveInput{DRPPendingLoads: 9, ManualVehicles: 2, NWPETExpectedArrival: 12})
	assert.False(t, demand.OutboundFBJacks.Available())
	assert.True(t, errors.Is(demand.OutboundFBJacks.Err, core.ErrPredictionFailed))
	assert.Equal(t, 3, demand.DRPJacks)
	assert.Equal(t, 0, demand.InboundJacks)
	assert.Equal(t, 4, demand.ManualLabor)
	assert.Equal(t, 4, demand.NWPETJacks)
	assert.Equal(t, 6, demand.NWPETLabor)
}

func TestSessionDataUnavailable(t *testing.T) {
	_, err := New(datasource.NewCsvFileSource("../../test/csv/not_exist.csv"), nil)
	assert.True(t, errors.Is(err, core.ErrDataUnavailable))
}
