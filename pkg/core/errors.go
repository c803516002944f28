package core

import "github.com/pkg/errors"

var ErrDataUnavailable = errors.New("data source unavailable")

var ErrFeaturesUnavailable = errors.New("features unavailable")

var ErrTrainingDataInvalid = errors.New("training data invalid")

var ErrPredictionFailed = errors.New("prediction failed")

var ErrInvalidInput = errors.New("invalid input")
