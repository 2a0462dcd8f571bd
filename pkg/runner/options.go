// Package runner processes several explicitly named files, each one through
// rewrite.Run, with a bounded number of concurrent workers.
package runner

import "github.com/yaklabco/rescript/pkg/rewrite"

// Options controls a multi-file run.
type Options struct {
	// Paths are the files to process, in report order.
	Paths []string

	// Jobs caps concurrent workers. 0 or negative means runtime.NumCPU().
	Jobs int

	// Rewrite is passed unchanged to every per-file run.
	Rewrite rewrite.Options
}
