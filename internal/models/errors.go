package models

import "errors"

// ErrUnknownStatus indicates a lane name that does not map to any ProjectStatus
var ErrUnknownStatus = errors.New("unknown project status")
