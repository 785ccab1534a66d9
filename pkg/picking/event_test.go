package picking

import "testing"

func TestQueue_DrainOrderAndReset(t *testing.T) {
	var q Queue
	q.Push(NewHoverEvent(1, HoverLeft))
	q.Push(NewHoverEvent(2, HoverEntered))
	q.Push(NewSelectionEvent(2, JustSelected))

	if q.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", q.Len())
	}

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("Drain: got %d events, want 3", len(events))
	}
	if events[0].Tile != 1 || events[0].Hover != HoverLeft {
		t.Errorf("first event: got %+v", events[0])
	}
	if !events[2].IsJustSelected() {
		t.Errorf("third event should be JustSelected, got %+v", events[2])
	}

	// 每个事件只能被取出一次
	if q.Len() != 0 || q.Drain() != nil {
		t.Error("queue should be empty after Drain")
	}
}

func TestEvent_Kinds(t *testing.T) {
	hover := NewHoverEvent(5, HoverEntered)
	if !hover.IsHover() || hover.IsJustSelected() {
		t.Errorf("hover event classification wrong: %+v", hover)
	}

	deselect := NewSelectionEvent(5, JustDeselected)
	if deselect.IsHover() || deselect.IsJustSelected() {
		t.Errorf("deselect event classification wrong: %+v", deselect)
	}
}

func TestNoPicker(t *testing.T) {
	if _, ok := (NoPicker{}).TopIntersection(); ok {
		t.Error("NoPicker should never hit")
	}
}
