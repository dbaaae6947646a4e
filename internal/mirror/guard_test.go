package mirror

import "testing"

func TestGuard_IdleByDefault(t *testing.T) {
	g := NewGuard()
	if g.Active() {
		t.Error("new guard should be idle")
	}
}

func TestGuard_ActiveDuringBatch(t *testing.T) {
	g := NewGuard()
	ran := false

	g.Run(func() {
		ran = true
		if !g.Active() {
			t.Error("guard should be active inside Run")
		}
	})

	if !ran {
		t.Fatal("Run did not execute the batch")
	}
	if g.Active() {
		t.Error("guard should return to idle after Run")
	}
}

func TestGuard_ReleasedOnPanic(t *testing.T) {
	g := NewGuard()

	func() {
		defer func() { _ = recover() }()
		g.Run(func() { panic("batch failed") })
	}()

	if g.Active() {
		t.Error("guard must return to idle even when the batch panics")
	}
}

func TestGuard_NestedRun(t *testing.T) {
	g := NewGuard()

	g.Run(func() {
		g.Run(func() {
			if !g.Active() {
				t.Error("guard should stay active in a nested batch")
			}
		})
		if !g.Active() {
			t.Error("inner Run must not release the outer batch")
		}
	})

	if g.Active() {
		t.Error("guard should be idle after the outer batch")
	}
}

func TestGuard_SuppressesEchoes(t *testing.T) {
	// Models the widget-changed handler: writes reach the "host" only
	// when the guard is idle.
	g := NewGuard()
	writes := 0
	onChanged := func() {
		if g.Active() {
			return
		}
		writes++
	}

	// Programmatic batch touching five widgets: zero writes.
	g.Run(func() {
		for i := 0; i < 5; i++ {
			onChanged()
		}
	})
	if writes != 0 {
		t.Errorf("batch update caused %d writes, want 0", writes)
	}

	// A real user edit afterwards goes through.
	onChanged()
	if writes != 1 {
		t.Errorf("user edit caused %d writes, want 1", writes)
	}
}
