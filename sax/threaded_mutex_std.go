//go:build !orcus_deadlock

package sax

import "sync"

// mutex is the ordinary, zero-overhead guard used for normal builds.
type mutex = sync.Mutex
