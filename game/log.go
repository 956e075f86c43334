package game

import "github.com/sirupsen/logrus"

// Log receives all game events. Callers may swap its level, output or hooks.
var Log = logrus.New()
