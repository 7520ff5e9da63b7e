package events

import "testing"

var (
	evNumber = NewEvent[int]("number")
	evText   = NewEvent[string]("text")
)

func TestPublishDeliversToAllHandlers(t *testing.T) {
	c := New()
	var a, b int

	Subscribe(c, evNumber, func(v int) { a += v })
	Subscribe(c, evNumber, func(v int) { b += v * 2 })

	Publish(c, evNumber, 3)

	if a != 3 || b != 6 {
		t.Errorf("expected a=3 b=6, got a=%d b=%d", a, b)
	}
}

func TestPublishOnlyMatchingName(t *testing.T) {
	c := New()
	numbers, texts := 0, 0

	Subscribe(c, evNumber, func(int) { numbers++ })
	Subscribe(c, evText, func(string) { texts++ })

	Publish(c, evText, "hello")

	if numbers != 0 {
		t.Errorf("number handler fired %d times", numbers)
	}
	if texts != 1 {
		t.Errorf("expected text handler once, got %d", texts)
	}
}

func TestUnsubscribe(t *testing.T) {
	c := New()
	calls := 0

	off := Subscribe(c, evNumber, func(int) { calls++ })
	off()
	Publish(c, evNumber, 1)

	if calls != 0 {
		t.Errorf("unsubscribed handler called %d times", calls)
	}

	// second call must be a no-op
	off()

	if c.Len(evNumber.Name()) != 0 {
		t.Errorf("expected no handlers, got %d", c.Len(evNumber.Name()))
	}
}

func TestUnsubscribeRemovesOnlyOwnHandler(t *testing.T) {
	c := New()
	first, second := 0, 0

	off := Subscribe(c, evNumber, func(int) { first++ })
	Subscribe(c, evNumber, func(int) { second++ })

	off()
	off()
	Publish(c, evNumber, 1)

	if first != 0 || second != 1 {
		t.Errorf("expected first=0 second=1, got first=%d second=%d", first, second)
	}
}

func TestClear(t *testing.T) {
	c := New()
	calls := 0

	off := Subscribe(c, evNumber, func(int) { calls++ })
	Subscribe(c, evText, func(string) { calls++ })

	c.Clear()
	Publish(c, evNumber, 1)
	Publish(c, evText, "x")

	if calls != 0 {
		t.Errorf("expected no calls after Clear, got %d", calls)
	}

	off()
}

func TestHandlerAddedDuringPublishWaitsForNextEvent(t *testing.T) {
	c := New()
	late := 0

	Subscribe(c, evNumber, func(int) {
		Subscribe(c, evNumber, func(int) { late++ })
	})

	Publish(c, evNumber, 1)
	if late != 0 {
		t.Errorf("handler registered mid-publish fired on the same event")
	}

	Publish(c, evNumber, 1)
	if late != 1 {
		t.Errorf("expected late handler once, got %d", late)
	}
}

func TestZeroValueChannel(t *testing.T) {
	var c Channel
	got := 0

	Subscribe(&c, evNumber, func(v int) { got = v })
	Publish(&c, evNumber, 7)

	if got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestPanicPropagates(t *testing.T) {
	c := New()
	Subscribe(c, evNumber, func(int) { panic("boom") })

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic to reach the publisher")
		}
	}()
	Publish(c, evNumber, 1)
}
