package broadcast

import (
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Mohamed-Rirash/appointment-app-sub001/internal/core/domain"
)

func event(id string) domain.LifecycleEvent {
	return domain.LifecycleEvent{
		Type:          domain.EventApproved,
		AppointmentID: id,
		OfficeID:      "office-1",
		Status:        "approved",
		OccurredAt:    time.Now().UTC(),
	}
}

func receive(t *testing.T, sub *Subscription) domain.LifecycleEvent {
	t.Helper()
	select {
	case ev, ok := <-sub.Events():
		if !ok {
			t.Fatal("channel closed unexpectedly")
		}
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return domain.LifecycleEvent{}
}

func TestBroker_PublishReachesSubscriber(t *testing.T) {
	b := NewBroker(4, zerolog.Nop())
	defer b.Close()

	sub := b.Subscribe("office-1")
	defer sub.Close()

	b.Publish("office-1", event("appt-1"))

	got := receive(t, sub)
	if got.AppointmentID != "appt-1" {
		t.Errorf("expected appt-1, got %q", got.AppointmentID)
	}
}

func TestBroker_OfficeIsolation(t *testing.T) {
	b := NewBroker(4, zerolog.Nop())
	defer b.Close()

	sub1 := b.Subscribe("office-1")
	defer sub1.Close()
	sub2 := b.Subscribe("office-2")
	defer sub2.Close()

	b.Publish("office-1", event("appt-1"))

	if got := receive(t, sub1); got.AppointmentID != "appt-1" {
		t.Errorf("office-1 subscriber: got %q", got.AppointmentID)
	}
	select {
	case ev := <-sub2.Events():
		t.Errorf("office-2 subscriber must not receive office-1 events, got %+v", ev)
	default:
	}
}

func TestBroker_MultipleSubscribersEachReceive(t *testing.T) {
	b := NewBroker(4, zerolog.Nop())
	defer b.Close()

	sub1 := b.Subscribe("office-1")
	defer sub1.Close()
	sub2 := b.Subscribe("office-1")
	defer sub2.Close()

	b.Publish("office-1", event("appt-1"))

	if got := receive(t, sub1); got.AppointmentID != "appt-1" {
		t.Errorf("sub1: got %q", got.AppointmentID)
	}
	if got := receive(t, sub2); got.AppointmentID != "appt-1" {
		t.Errorf("sub2: got %q", got.AppointmentID)
	}
}

func TestBroker_UnsubscribedReceivesNothing(t *testing.T) {
	b := NewBroker(4, zerolog.Nop())
	defer b.Close()

	sub := b.Subscribe("office-1")
	sub.Close()

	// Must not panic and must not deliver.
	b.Publish("office-1", event("appt-1"))

	if _, ok := <-sub.Events(); ok {
		t.Error("closed subscription must have a closed channel")
	}
}

func TestBroker_CloseIdempotent(t *testing.T) {
	b := NewBroker(4, zerolog.Nop())
	sub := b.Subscribe("office-1")

	sub.Close()
	sub.Close()
	b.Close()
	b.Close()
}

func TestBroker_SlowSubscriberDropsOldest(t *testing.T) {
	b := NewBroker(2, zerolog.Nop())
	defer b.Close()

	sub := b.Subscribe("office-1")
	defer sub.Close()

	// Fill the buffer, then overflow it. With drop-oldest the last events win.
	for i := 0; i < 5; i++ {
		b.Publish("office-1", event(fmt.Sprintf("appt-%d", i)))
	}

	first := receive(t, sub)
	second := receive(t, sub)
	if first.AppointmentID != "appt-3" || second.AppointmentID != "appt-4" {
		t.Errorf("expected the newest events to survive, got %q then %q", first.AppointmentID, second.AppointmentID)
	}
}

func TestBroker_SlowSubscriberDoesNotBlockOthers(t *testing.T) {
	b := NewBroker(1, zerolog.Nop())
	defer b.Close()

	slow := b.Subscribe("office-1")
	defer slow.Close()
	fast := b.Subscribe("office-1")
	defer fast.Close()

	for i := 0; i < 10; i++ {
		b.Publish("office-1", event(fmt.Sprintf("appt-%d", i)))
		receive(t, fast)
	}
}

func TestBroker_SubscribeAfterCloseReturnsClosedChannel(t *testing.T) {
	b := NewBroker(4, zerolog.Nop())
	b.Close()

	sub := b.Subscribe("office-1")
	if _, ok := <-sub.Events(); ok {
		t.Error("subscription on a closed broker must have a closed channel")
	}
	// Close on such a subscription must still be safe.
	sub.Close()
}

func TestBroker_PublishAfterCloseIsNoop(t *testing.T) {
	b := NewBroker(4, zerolog.Nop())
	sub := b.Subscribe("office-1")
	b.Close()

	b.Publish("office-1", event("appt-1"))

	if _, ok := <-sub.Events(); ok {
		t.Error("expected closed channel after broker shutdown")
	}
}

func TestBroker_ConcurrentPublishAndSubscribe(t *testing.T) {
	b := NewBroker(8, zerolog.Nop())
	defer b.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			b.Publish("office-1", event(fmt.Sprintf("appt-%d", i)))
		}
	}()

	for i := 0; i < 50; i++ {
		sub := b.Subscribe("office-1")
		sub.Close()
	}
	<-done
}
