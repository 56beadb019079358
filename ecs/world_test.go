package ecs

import "testing"

type testEvent struct{ n int }

func (testEvent) Type() EventType { return "test" }

type countingSystem struct {
	calls int
	dt    float64
	log   *[]string
	name  string
}

func (s *countingSystem) Update(world *World, dt float64) {
	s.calls++
	s.dt = dt
	if s.log != nil {
		*s.log = append(*s.log, s.name)
	}
}

func TestCreateEntityIDs(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()

	if a.ID == 0 || b.ID == 0 {
		t.Fatal("entity IDs must be non-zero")
	}
	if a.ID == b.ID {
		t.Fatal("entity IDs must be unique")
	}

	// IDs are per-world
	other := NewWorld().CreateEntity()
	if other.ID != a.ID {
		t.Errorf("first ID in a fresh world = %d, want %d", other.ID, a.ID)
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	w.AddComponent(e.ID, 1, "hello")
	if !w.HasComponent(e.ID, 1) {
		t.Fatal("HasComponent() = false after AddComponent")
	}

	s, ok := Get[string](w, e.ID, 1)
	if !ok || s != "hello" {
		t.Errorf("Get[string]() = %q, %v", s, ok)
	}
	if _, ok := Get[int](w, e.ID, 1); ok {
		t.Error("Get[int]() on a string component returned ok")
	}
	if _, ok := Get[string](w, e.ID, 2); ok {
		t.Error("Get() on a missing component returned ok")
	}

	w.RemoveComponent(e.ID, 1)
	if w.HasComponent(e.ID, 1) {
		t.Error("HasComponent() = true after RemoveComponent")
	}

	// Unknown entities are ignored
	w.AddComponent(999, 1, "x")
	if w.HasComponent(999, 1) {
		t.Error("component attached to unknown entity")
	}
}

func TestTags(t *testing.T) {
	w := NewWorld()
	a := w.CreateEntity()
	b := w.CreateEntity()
	c := w.CreateEntity()
	w.TagEntity(c.ID, "player")
	w.TagEntity(a.ID, "player")
	w.TagEntity(b.ID, "camera")

	players := w.GetEntitiesWithTag("player")
	if len(players) != 2 || players[0].ID != a.ID || players[1].ID != c.ID {
		t.Fatalf("GetEntitiesWithTag(player) = %v", players)
	}
	first, ok := w.FirstWithTag("player")
	if !ok || first.ID != a.ID {
		t.Errorf("FirstWithTag(player) = %v, %v", first, ok)
	}
	if !a.HasTag("player") {
		t.Error("entity does not report its tag")
	}

	w.RemoveEntity(a.ID)
	if got := w.GetEntitiesWithTag("player"); len(got) != 1 {
		t.Errorf("after RemoveEntity, %d players remain, want 1", len(got))
	}
	if w.GetEntity(a.ID) != nil {
		t.Error("removed entity still returned")
	}
	if w.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, want 2", w.EntityCount())
	}

	w.RemoveEntity(b.ID)
	if _, ok := w.FirstWithTag("camera"); ok {
		t.Error("camera tag survived entity removal")
	}
}

func TestSystemsRunInOrder(t *testing.T) {
	w := NewWorld()
	var order []string
	first := &countingSystem{log: &order, name: "first"}
	second := &countingSystem{log: &order, name: "second"}
	w.AddSystem(first)
	w.AddSystem(second)

	w.Update(0.5)
	w.Update(0.25)

	if first.calls != 2 || second.calls != 2 {
		t.Fatalf("calls = %d, %d; want 2, 2", first.calls, second.calls)
	}
	if first.dt != 0.25 {
		t.Errorf("dt = %v, want 0.25", first.dt)
	}
	want := []string{"first", "second", "first", "second"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if len(w.GetSystems()) != 2 {
		t.Errorf("GetSystems() returned %d systems", len(w.GetSystems()))
	}
}

func TestEvents(t *testing.T) {
	w := NewWorld()
	var got []int
	w.Events().Subscribe("test", func(e Event) { got = append(got, e.(testEvent).n) })
	w.Events().Subscribe("test", func(e Event) { got = append(got, e.(testEvent).n*10) })

	w.EmitEvent(testEvent{n: 2})
	if len(got) != 2 || got[0] != 2 || got[1] != 20 {
		t.Fatalf("handlers saw %v, want [2 20]", got)
	}

	w.Events().Clear("test")
	w.EmitEvent(testEvent{n: 3})
	if len(got) != 2 {
		t.Errorf("handler called after Clear: %v", got)
	}
}
