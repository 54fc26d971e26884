package assets

import "testing"

func TestReadDefaultConfig(t *testing.T) {
	b, err := Read("config.yaml")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(b) == 0 {
		t.Fatalf("embedded config is empty")
	}
}

func TestReadMissing(t *testing.T) {
	if _, err := Read("nope.yaml"); err == nil {
		t.Fatalf("expected error for missing asset")
	}
}
