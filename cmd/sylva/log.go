package main

import "github.com/sirupsen/logrus"

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	if !rcc.verbose {
		return
	}
	logrus.Infof(format, a...)
}
