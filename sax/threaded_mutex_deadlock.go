//go:build orcus_deadlock

package sax

import "github.com/sasha-s/go-deadlock"

// mutex is the deadlock-checked guard used when the module is built
// with -tags orcus_deadlock, for diagnosing hangs during development;
// ThreadedParser locks it only around MergeInto's pool merge.
type mutex = deadlock.Mutex
