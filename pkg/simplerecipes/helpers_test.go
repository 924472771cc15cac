package simplerecipes_test

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/tendant/simple-recipes/pkg/simplerecipes"
)

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func entryAt(id, title string, created time.Time) simplerecipes.Entry {
	e := simplerecipes.Entry{
		Sys:    simplerecipes.EntrySys{ID: id},
		Fields: simplerecipes.EntryFields{Title: title},
	}
	if !created.IsZero() {
		e.Sys.CreatedAt = created.Format(time.RFC3339Nano)
	}
	return e
}

func numberedEntries(n int) []simplerecipes.Entry {
	out := make([]simplerecipes.Entry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entryAt(fmt.Sprintf("post-%02d", i), fmt.Sprintf("Post %02d", i), baseTime.Add(time.Duration(i)*time.Hour)))
	}
	return out
}

func ids(items []simplerecipes.BlogEntrySummary) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func rawString(s string) json.RawMessage {
	b, _ := json.Marshal(s)
	return b
}
