package server

import (
	"github.com/packagewjx/labor-demand/pkg/core"
)

const (
	LaborDemandPath = "/api/v1/labor-demand"
	HealthzPath     = "/healthz"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type API interface {
	// LaborDemand 输入含负数时返回包装core.ErrInvalidInput的错误
	LaborDemand(input *core.LiveInput) (*core.LaborDemand, error)
}
