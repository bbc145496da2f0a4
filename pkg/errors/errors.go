package errors

import "fmt"

var ErrKeyNotFound = fmt.Errorf("key not found")
var ErrRankOutOfRange = fmt.Errorf("rank out of range")
var ErrInvalidKey = fmt.Errorf("invalid key")
var ErrUnknownCommand = fmt.Errorf("unknown command")
