package catalog

import "testing"

func TestBuiltin(t *testing.T) {
	c := Builtin()

	if c.Len() != 10 {
		t.Fatalf("builtin catalog has %d entries, want 10", c.Len())
	}

	seen := make(map[string]bool)
	for _, d := range c.Entries() {
		if d.Key == "" || d.DisplayName == "" || d.ProviderModelID == "" {
			t.Errorf("descriptor %+v has empty identity fields", d)
		}
		if len(d.Tags) == 0 {
			t.Errorf("descriptor %s has no tags", d.Key)
		}
		if seen[d.Key] {
			t.Errorf("duplicate key %s", d.Key)
		}
		seen[d.Key] = true
	}
}

func TestLookup(t *testing.T) {
	c := Builtin()

	d, ok := c.Lookup("mistral-small")
	if !ok {
		t.Fatal("mistral-small not found")
	}
	if d.DisplayName != "Mistral Small" {
		t.Errorf("display name = %q", d.DisplayName)
	}
	if d.ProviderModelID != "mistralai/mistral-small-3.2-24b-instruct:free" {
		t.Errorf("provider model ID = %q", d.ProviderModelID)
	}

	if _, ok := c.Lookup("no-such-model"); ok {
		t.Error("unexpected hit for unknown key")
	}
}

func TestDefault(t *testing.T) {
	d := Builtin().Default()
	if d.Key != DefaultKey {
		t.Errorf("default key = %q, want %q", d.Key, DefaultKey)
	}
	if d.DisplayName != "Llama Nemotron Ultra" {
		t.Errorf("default display name = %q", d.DisplayName)
	}
}

func TestEntriesOrderIsStable(t *testing.T) {
	first := Builtin().Entries()
	second := Builtin().Entries()
	for i := range first {
		if first[i].Key != second[i].Key {
			t.Fatalf("entry %d differs across constructions: %q vs %q",
				i, first[i].Key, second[i].Key)
		}
	}
	if first[0].Key != "mistral-small" {
		t.Errorf("first entry = %q, want mistral-small", first[0].Key)
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	c := Builtin()
	entries := c.Entries()
	entries[0].Key = "mutated"

	if d, _ := c.Lookup("mistral-small"); d.Key != "mistral-small" {
		t.Error("mutating the returned slice affected the catalog")
	}
}
