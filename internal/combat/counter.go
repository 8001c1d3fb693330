package combat

import "sync/atomic"

// queuedCastCounter is the process-wide monotonic source for
// QueuedCast.QueuedID: it must never reset between rounds, only on
// process restart. Uses the same sync/atomic counter idiom as a
// lock-free sequence generator.
var queuedCastCounter uint64

func nextQueuedCastID() uint64 {
	return atomic.AddUint64(&queuedCastCounter, 1)
}

// The event sequence counter (Runtime.seq) is per-Runtime, not
// process-wide: each ExecuteRound call starts its own sequence at 1 so
// event streams are comparable across independent rounds in tests.
