package service

import (
	"encoding/json"
	"log"
	"time"
)

// logWarn emits a one-line JSON warning, matching the structured log format
// used by the HTTP logger middleware.
func logWarn(event string, fields map[string]any) {
	entry := map[string]any{
		"ts":    time.Now().UTC().Format(time.RFC3339Nano),
		"level": "warn",
		"event": event,
	}
	for k, v := range fields {
		entry[k] = v
	}
	if b, err := json.Marshal(entry); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
