package event

import "testing"

func TestPublishOrder(t *testing.T) {
	var stream Stream[int]
	var got []int
	stream.Subscribe(func(v int) { got = append(got, v) })
	stream.Subscribe(func(v int) { got = append(got, v*10) })

	stream.Publish(1)
	stream.Publish(2)

	want := []int{1, 10, 2, 20}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestNilHandlerIgnored(t *testing.T) {
	var stream Stream[string]
	stream.Subscribe(nil)
	if stream.NumHandlers() != 0 {
		t.Fatalf("nil handler must not register")
	}
	stream.Publish("no panic")
}

func TestZeroValueUsable(t *testing.T) {
	var stream Stream[struct{}]
	stream.Publish(struct{}{}) // no subscribers, no panic
	fired := 0
	stream.Subscribe(func(struct{}) { fired++ })
	stream.Publish(struct{}{})
	if fired != 1 {
		t.Fatalf("expected exactly one delivery, got %d", fired)
	}
}
