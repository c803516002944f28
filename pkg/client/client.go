package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/packagewjx/labor-demand/pkg/core"
	"github.com/packagewjx/labor-demand/pkg/server"
	"github.com/pkg/errors"
)

const DefaultApiHostBaseUrl = "http://localhost:2000"

func NewApiClient(baseUrl string) server.API {
	if baseUrl == "" {
		baseUrl = DefaultApiHostBaseUrl
	}
	return &apiClient{
		baseUrl: strings.TrimSuffix(baseUrl, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

var _ server.API = &apiClient{}

type apiClient struct {
	baseUrl string
	client  *http.Client
}

func (a *apiClient) LaborDemand(input *core.LiveInput) (*core.LaborDemand, error) {
	marshal, err := json.Marshal(input)
	if err != nil {
		return nil, errors.Wrap(err, "序列化输入出错")
	}

	response, err := a.client.Post(a.baseUrl+server.LaborDemandPath, "application/json", bytes.NewReader(marshal))
	if err != nil {
		return nil, errors.Wrap(err, "请求时出现异常")
	}
	defer func() {
		_ = response.Body.Close()
	}()

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return nil, errors.Wrap(err, "读取时出现异常")
	}

	switch response.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest:
		return nil, errors.Wrap(core.ErrInvalidInput, errorMessage(body))
	default:
		return nil, fmt.Errorf("请求失败，状态码%d：%s", response.StatusCode, errorMessage(body))
	}

	dest := &core.LaborDemand{}
	err = json.Unmarshal(body, dest)
	if err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("解析json异常，json为\n%s", string(body)))
	}

	return dest, nil
}

func errorMessage(body []byte) string {
	resp := &server.ErrorResponse{}
	if err := json.Unmarshal(body, resp); err != nil || resp.Error == "" {
		return string(body)
	}
	return resp.Error
}
