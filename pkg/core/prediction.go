package core

import (
	"encoding/json"
	"strconv"
)

const UnavailableText = "unavailable"

// Prediction 预测结果。Err不为nil时Value无意义，调用方不能将其当作0使用。
type Prediction struct {
	Value int
	Err   error
}

func Predicted(value int) Prediction {
	return Prediction{Value: value}
}

func Unavailable(err error) Prediction {
	if err == nil {
		err = ErrPredictionFailed
	}
	return Prediction{Err: err}
}

func (p Prediction) Available() bool {
	return p.Err == nil
}

func (p Prediction) String() string {
	if !p.Available() {
		return UnavailableText
	}
	return strconv.Itoa(p.Value)
}

type predictionJSON struct {
	Available bool   `json:"available"`
	Value     *int   `json:"value"`
	Error     string `json:"error,omitempty"`
}

func (p Prediction) MarshalJSON() ([]byte, error) {
	out := predictionJSON{Available: p.Available()}
	if p.Available() {
		v := p.Value
		out.Value = &v
	} else {
		out.Error = p.Err.Error()
	}
	return json.Marshal(out)
}

func (p *Prediction) UnmarshalJSON(data []byte) error {
	in := predictionJSON{}
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if in.Available && in.Value != nil {
		*p = Predicted(*in.Value)
		return nil
	}
	reason := in.Error
	if reason == "" {
		reason = UnavailableText
	}
	*p = Unavailable(&remoteError{msg: reason})
	return nil
}

// remoteError 从JSON还原的错误，保留原始信息并归类为预测失败
type remoteError struct {
	msg string
}

func (r *remoteError) Error() string {
	return r.msg
}

func (r *remoteError) Unwrap() error {
	return ErrPredictionFailed
}
