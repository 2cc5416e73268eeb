// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package scram

import "go.uber.org/zap"

// configs is used to store the values of the optional parameters of an
// Analyzer, set with the option functions accepted by New.
type configs struct {
	log      *zap.Logger // structured logger used to trace an analysis
	progress int         // worklist iterations between two progress traces, 0 to disable
}

func makeconfigs() *configs {
	return &configs{log: zap.NewNop()}
}

// Logger is a configuration option (function). Used as a parameter in New it
// sets the structured logger used to trace the phases of an analysis. The
// default is a no-op logger, so an Analyzer is silent unless asked
// otherwise.
func Logger(log *zap.Logger) func(*configs) {
	return func(c *configs) {
		if log != nil {
			c.log = log
		}
	}
}

// Progress is a configuration option (function). Used as a parameter in New
// it enables a debug trace of the cut-set generation every n worklist
// iterations. The default value (0) disables the trace.
func Progress(n int) func(*configs) {
	return func(c *configs) {
		if n > 0 {
			c.progress = n
		}
	}
}
