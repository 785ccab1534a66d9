package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y, Z float64
}

type testMarkerComponent struct {
	Selected bool
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始，0保留为无效ID
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount: got %d, want 2", em.EntityCount())
	}
}

func TestGenericAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 3, Y: 1, Z: -2})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok {
		t.Fatal("Component should be found")
	}
	if pos.X != 3 || pos.Y != 1 || pos.Z != -2 {
		t.Errorf("Component data mismatch, got (%v, %v, %v)", pos.X, pos.Y, pos.Z)
	}

	// 泛型与反射接口互通
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("reflect HasComponent should see component added through generic API")
	}

	if _, ok := GetComponent[*testMarkerComponent](em, id); ok {
		t.Error("Missing component should not be found")
	}
}

func TestComponentIsSharedPointer(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testMarkerComponent{Selected: true})

	marker, _ := GetComponent[*testMarkerComponent](em, id)
	marker.Selected = false

	again, _ := GetComponent[*testMarkerComponent](em, id)
	if again.Selected {
		t.Error("Mutation through returned pointer should be visible to later queries")
	}
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testMarkerComponent{})

	RemoveComponent[*testMarkerComponent](em, id)
	if HasComponent[*testMarkerComponent](em, id) {
		t.Error("Component should be removed")
	}
}

func TestDestroyEntityIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	if !em.DestroyEntity(id) {
		t.Fatal("First DestroyEntity should report true")
	}

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}

	if removed := em.RemoveMarkedEntities(); removed != 1 {
		t.Errorf("RemoveMarkedEntities: got %d, want 1", removed)
	}
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("Mark should be cleared after cleanup")
	}
}

func TestDestroyEntityDeduplicates(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	if em.DestroyEntity(id) {
		t.Error("Second DestroyEntity on the same entity should be a no-op")
	}
	if em.PendingDestroyCount() != 1 {
		t.Errorf("PendingDestroyCount: got %d, want 1", em.PendingDestroyCount())
	}

	// 不存在的实体
	if em.DestroyEntity(EntityID(999)) {
		t.Error("DestroyEntity on unknown entity should be a no-op")
	}
	if em.DestroyEntity(0) {
		t.Error("DestroyEntity on invalid ID 0 should be a no-op")
	}
}

func TestGetEntitiesWithIsOrdered(t *testing.T) {
	em := NewEntityManager()

	var ids []EntityID
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testPositionComponent{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testMarkerComponent{})
			ids = append(ids, id)
		}
	}

	got := GetEntitiesWith2[*testPositionComponent, *testMarkerComponent](em)
	if len(got) != len(ids) {
		t.Fatalf("Expected %d entities, got %d", len(ids), len(got))
	}
	for i := range got {
		if got[i] != ids[i] {
			t.Fatalf("Result should be ordered by ID: index %d got %d, want %d", i, got[i], ids[i])
		}
	}

	if n := len(GetEntitiesWith1[*testPositionComponent](em)); n != 50 {
		t.Errorf("Expected 50 entities with position, got %d", n)
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id2, &testPositionComponent{})
	em.AddComponent(id3, &testPositionComponent{})

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	if em.HasComponent(id1, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id1 should be removed")
	}
	if !em.HasComponent(id2, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id2 should still exist")
	}
	if em.HasComponent(id3, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("id3 should be removed")
	}
}
