package event

import "testing"

// TestBusReadersAreIndependent verifies each reader sees every event exactly once
func TestBusReadersAreIndependent(t *testing.T) {
	bus := NewBus()
	a := bus.NewReader()
	b := bus.NewReader()

	bus.Update()
	bus.Emit(EventFoodSpawned, nil, 1)
	bus.Emit(EventGrowth, nil, 1)

	first := a.Read()
	if len(first) != 2 {
		t.Fatalf("Expected reader A to see 2 events, got %d", len(first))
	}
	if first[0].Type != EventFoodSpawned || first[1].Type != EventGrowth {
		t.Errorf("Events out of order: %v, %v", first[0].Type, first[1].Type)
	}

	if again := a.Read(); len(again) != 0 {
		t.Errorf("Expected reader A to be drained, got %d events", len(again))
	}

	second := b.Read()
	if len(second) != 2 {
		t.Errorf("Expected reader B to see 2 events independently, got %d", len(second))
	}
}

// TestBusRetainsEventsForOneExtraTick verifies a reader running before the publisher still observes the event next tick
func TestBusRetainsEventsForOneExtraTick(t *testing.T) {
	bus := NewBus()
	early := bus.NewReader()

	bus.Update()
	if got := early.Read(); len(got) != 0 {
		t.Fatalf("Expected nothing yet, got %d", len(got))
	}
	bus.Emit(EventGameOver, nil, 1)

	bus.Update()
	got := early.Read()
	if len(got) != 1 || got[0].Type != EventGameOver {
		t.Fatalf("Expected GameOver from previous tick, got %v", got)
	}

	bus.Update()
	if bus.Len() != 0 {
		t.Errorf("Expected event to be dropped after two updates, %d retained", bus.Len())
	}
}

// TestBusMissedEvents verifies readers that fall behind the retention window count the loss
func TestBusMissedEvents(t *testing.T) {
	bus := NewBus()
	slow := bus.NewReader()

	bus.Update()
	bus.Emit(EventFoodRotted, nil, 1)
	bus.Emit(EventFoodRotted, nil, 1)
	bus.Update()
	bus.Emit(EventFoodSpawned, nil, 2)
	bus.Update()

	got := slow.Read()
	if len(got) != 1 || got[0].Type != EventFoodSpawned {
		t.Fatalf("Expected only the retained FoodSpawned, got %v", got)
	}
	if slow.Missed() != 2 {
		t.Errorf("Expected 2 missed events, got %d", slow.Missed())
	}

	bus.Update()
	bus.Update()
	if got := slow.Read(); len(got) != 0 {
		t.Errorf("Expected empty read, got %d", len(got))
	}
	if slow.Missed() != 2 {
		t.Errorf("Empty ticks must not add to missed count, got %d", slow.Missed())
	}
}

func TestReaderFromStart(t *testing.T) {
	bus := NewBus()
	bus.Update()
	bus.Emit(EventGrowth, nil, 1)

	late := bus.NewReader()
	if late.Len() != 0 {
		t.Errorf("NewReader should start at the end, pending %d", late.Len())
	}

	full := bus.NewReaderFromStart()
	if full.Len() != 1 {
		t.Errorf("NewReaderFromStart should see retained events, pending %d", full.Len())
	}
	if got := full.Read(); len(got) != 1 {
		t.Errorf("Expected 1 event, got %d", len(got))
	}
}

func TestRouterDispatch(t *testing.T) {
	bus := NewBus()
	router := NewRouter(bus)

	var growths, overs int
	router.Register(HandlerFunc{
		Types: []EventType{EventGrowth},
		Fn:    func(GameEvent) { growths++ },
	})
	router.Register(HandlerFunc{
		Types: []EventType{EventGrowth, EventGameOver},
		Fn: func(ev GameEvent) {
			if ev.Type == EventGameOver {
				overs++
			}
		},
	})

	if router.HandlerCount(EventGrowth) != 2 {
		t.Errorf("Expected 2 growth handlers, got %d", router.HandlerCount(EventGrowth))
	}

	// A system reader consuming the same events must not affect routing
	systemReader := bus.NewReader()

	bus.Update()
	bus.Emit(EventGrowth, &GrowthPayload{}, 1)
	bus.Emit(EventGameOver, &GameOverPayload{Cause: CauseWall}, 1)
	bus.Emit(EventFoodRotted, nil, 1)
	systemReader.Read()

	if n := router.DispatchAll(); n != 3 {
		t.Errorf("Expected 3 events dispatched, got %d", n)
	}
	if growths != 1 || overs != 1 {
		t.Errorf("Expected 1 growth and 1 game over, got %d and %d", growths, overs)
	}
	if n := router.DispatchAll(); n != 0 {
		t.Errorf("Expected nothing on second dispatch, got %d", n)
	}
}
