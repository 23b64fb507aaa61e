// loggen emits sample JSON log lines for demos and manual testing. A small
// fraction of lines is deliberately malformed to exercise the viewer's
// silent-drop policy.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"
)

var levels = []string{"debug", "info", "info", "info", "warn", "error"}

var messages = []string{
	"server started",
	"request handled",
	"connection reset by peer",
	"cache miss",
	"slow query detected",
	"user login ok",
	"payment declined",
	"retrying upstream call",
	"shutting down worker",
}

func main() {
	count := flag.Int("n", 1000, "number of lines to generate")
	brokenPct := flag.Int("broken", 2, "percentage of malformed lines")
	seed := flag.Int64("seed", 0, "random seed (0 = time-based)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	ts := time.Now().Add(-time.Duration(*count) * time.Second)
	for i := 0; i < *count; i++ {
		ts = ts.Add(time.Duration(500+rng.Intn(1500)) * time.Millisecond)
		if rng.Intn(100) < *brokenPct {
			fmt.Fprintln(w, "this is not json at all {{{")
			continue
		}
		rec := map[string]any{
			"timestamp": ts.UTC().Format(time.RFC3339),
			"level":     levels[rng.Intn(len(levels))],
			"message":   messages[rng.Intn(len(messages))],
		}
		// Roughly half the records carry extra fields.
		if rng.Intn(2) == 0 {
			rec["request_id"] = fmt.Sprintf("req-%06d", rng.Intn(1000000))
			rec["latency_ms"] = rng.Intn(900)
			if rng.Intn(4) == 0 {
				rec["user"] = map[string]any{
					"id":   rng.Intn(5000),
					"name": fmt.Sprintf("user%d", rng.Intn(100)),
				}
			}
		}
		b, _ := json.Marshal(rec)
		w.Write(b)
		w.WriteByte('\n')
	}
}
