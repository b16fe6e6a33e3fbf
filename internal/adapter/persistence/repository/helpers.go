package repository

import (
	"encoding/json"
	"os"
	"time"

	"github.com/Irtizzasmartlog/AIFuneral/internal/domain/entities"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func timeToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}

func stringToTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, *s)
	if err != nil {
		return nil
	}
	return &t
}

// marshalJSONString serializes a nested value to a JSON string attribute.
// Flat items keep table scans and console debugging readable.
func marshalJSONString(v any) *string {
	b, err := json.Marshal(v)
	if err != nil || string(b) == "null" {
		return nil
	}
	s := string(b)
	return &s
}

func unmarshalAddOns(s *string) *entities.AddOnFlags {
	if s == nil || *s == "" {
		return nil
	}
	var flags entities.AddOnFlags
	if err := json.Unmarshal([]byte(*s), &flags); err != nil {
		return nil
	}
	return &flags
}
