package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRegionEnd(t *testing.T) {
	r := Region{Start: 4, Length: 6, Kind: RegionLine}
	if got := r.End(); got != 10 {
		t.Fatalf("End()=%d want 10", got)
	}
}

func TestRegionJSONOmitsTerminatedFlag(t *testing.T) {
	data, err := json.Marshal(Region{Start: 0, Length: 2, Kind: RegionBlock})
	if err != nil {
		t.Fatalf("marshal region: %v", err)
	}
	if strings.Contains(string(data), "unterminated") {
		t.Fatalf("unterminated should be omitted when false: %s", data)
	}
	data, err = json.Marshal(Region{Start: 0, Length: 2, Kind: RegionBlock, Unterminated: true})
	if err != nil {
		t.Fatalf("marshal region: %v", err)
	}
	if !strings.Contains(string(data), `"unterminated":true`) {
		t.Fatalf("unterminated flag missing: %s", data)
	}
}
