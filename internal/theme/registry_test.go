package theme

import (
	"fmt"
	"sync"
	"testing"

	appErrors "scopestyle/internal/errors"
)

func TestRegistryFirstWriteWins(t *testing.T) {
	reg := NewRegistry(8)

	first := testDocument("same-uuid", entry("", Attributes{"foreground": "#FFFFFF", "background": "#000000"}))
	first.Name = "first"
	second := testDocument("same-uuid", entry("", Attributes{"foreground": "#000000", "background": "#FFFFFF"}))
	second.Name = "second"

	t1, err := reg.GetOrCreate(first)
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	t2, err := reg.GetOrCreate(second)
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	if t1 != t2 {
		t.Fatal("same uuid should return the same Theme instance")
	}
	if t2.Name() != "first" || !t2.IsDark() {
		t.Errorf("second document must not replace the first: name=%q dark=%v", t2.Name(), t2.IsDark())
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegistryRejectsInvalidDocument(t *testing.T) {
	reg := NewRegistry(8)
	_, err := reg.GetOrCreate(Document{Name: "nameless"})
	if !appErrors.IsCode(err, appErrors.CodeInvalidTheme) {
		t.Fatalf("expected invalid theme error, got %v", err)
	}
	if reg.Len() != 0 {
		t.Errorf("invalid document must not be registered, Len() = %d", reg.Len())
	}

	if _, err := reg.GetOrCreate(testDocument("valid")); err != nil {
		t.Fatalf("registry should keep working after a failure: %v", err)
	}
}

func TestRegistryConcurrentFirstAccess(t *testing.T) {
	reg := NewRegistry(8)
	doc := monokaiLike()

	const workers = 32
	results := make([]*Theme, workers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			th, err := reg.GetOrCreate(doc)
			if err != nil {
				t.Errorf("GetOrCreate returned error: %v", err)
				return
			}
			results[i] = th
		}(i)
	}
	close(start)
	wg.Wait()

	for i, th := range results {
		if th != results[0] {
			t.Fatalf("worker %d got a different Theme instance", i)
		}
	}
	if reg.Len() != 1 {
		t.Errorf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegistryIsBounded(t *testing.T) {
	reg := NewRegistry(2)
	themes := make([]*Theme, 3)
	for i := range themes {
		th, err := reg.GetOrCreate(testDocument(fmt.Sprintf("uuid-%d", i)))
		if err != nil {
			t.Fatalf("GetOrCreate returned error: %v", err)
		}
		themes[i] = th
	}

	if reg.Len() != 2 {
		t.Fatalf("Len() = %d, want capacity 2", reg.Len())
	}
	if _, ok := reg.Get("uuid-0"); ok {
		t.Fatal("least recently used theme should have been evicted")
	}
	got := reg.UUIDs()
	if len(got) != 2 || got[0] != "uuid-1" || got[1] != "uuid-2" {
		t.Errorf("UUIDs() = %v", got)
	}

	again, err := reg.GetOrCreate(testDocument("uuid-0"))
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	if again == themes[0] {
		t.Error("an evicted theme is rebuilt, not resurrected")
	}
}

func TestRegistryFont(t *testing.T) {
	reg := NewRegistry(0, WithFont("Hack", 15))
	th, err := reg.GetOrCreate(testDocument("font"))
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	if th.FontName() != "Hack" || th.FontSize() != 15 {
		t.Errorf("registry font not applied: %q %v", th.FontName(), th.FontSize())
	}
	reg.Purge()
	if reg.Len() != 0 {
		t.Errorf("Purge left %d themes", reg.Len())
	}
}

func TestDefaultRegistry(t *testing.T) {
	doc := testDocument("process-wide-registry-test")
	t1, err := GetOrCreate(doc)
	if err != nil {
		t.Fatalf("GetOrCreate returned error: %v", err)
	}
	t2, ok := DefaultRegistry().Get(doc.UUID)
	if !ok || t1 != t2 {
		t.Error("package-level GetOrCreate should populate the default registry")
	}
}
