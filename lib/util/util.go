package util

import "github.com/go-i2p/go-casc/lib/util/logger"

var log = logger.GetGoCascLogger()
