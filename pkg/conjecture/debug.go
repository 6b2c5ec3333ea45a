package conjecture

import "os"

// debugEnabled is read once at process start: a plain on/off toggle
// rather than a leveled logger, plus fmt.Fprintf at the call sites
// that care.
var debugEnabled = os.Getenv("CONJECTURE_DEBUG") == "true"
