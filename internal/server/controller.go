package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/packagewjx/labor-demand/internal/labor"
	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/packagewjx/labor-demand/pkg/server"
	"github.com/pkg/errors"
)

// indexPage 表单页面的数据。Sections为空时只显示表单。
type indexPage struct {
	Input    core.LiveInput
	Sections []labor.Section
	Error    string
}

func (s *serverImpl) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplateName, &indexPage{})
}

func (s *serverImpl) handleForm(c *gin.Context) {
	page := &indexPage{}
	if err := c.ShouldBind(&page.Input); err != nil {
		s.logger.Debug().Err(err).Msg("表单解析失败")
		page.Error = "所有输入必须为非负整数"
		c.HTML(http.StatusBadRequest, indexTemplateName, page)
		return
	}

	demand, err := s.LaborDemand(&page.Input)
	if err != nil {
		page.Error = err.Error()
		c.HTML(http.StatusBadRequest, indexTemplateName, page)
		return
	}
	page.Sections = labor.Sections(demand)
	c.HTML(http.StatusOK, indexTemplateName, page)
}

func (s *serverImpl) handleLaborDemand(c *gin.Context) {
	input := &core.LiveInput{}
	if err := c.ShouldBindJSON(input); err != nil {
		c.JSON(http.StatusBadRequest, &server.ErrorResponse{Error: err.Error()})
		return
	}

	demand, err := s.LaborDemand(input)
	if errors.Is(err, core.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, &server.ErrorResponse{Error: err.Error()})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, &server.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, demand)
}
