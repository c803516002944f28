package server

import (
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/packagewjx/labor-demand/pkg/server"
)

var _ server.API = &serverImpl{}

func (s *serverImpl) LaborDemand(input *core.LiveInput) (*core.LaborDemand, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	demand := s.demander.LaborDemand(*input)
	if !demand.OutboundFBJacks.Available() {
		s.logger.Warn().Err(demand.OutboundFBJacks.Err).Msg("Outbound F&B Battery Jack不可用")
	}
	return demand, nil
}
