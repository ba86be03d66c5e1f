package state

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/five82/thermo/internal/telemetry"
)

func sampleAt(i int) telemetry.Sample {
	return telemetry.Sample{
		Time:   time.Date(2024, 1, 1, 10, 0, i, 0, time.Local),
		Values: []float64{float64(i)},
	}
}

func TestStore_DrainReturnsPushOrder(t *testing.T) {
	var s Store

	for i := 0; i < 5; i++ {
		s.Push(sampleAt(i))
	}

	got := s.Drain()
	if len(got) != 5 {
		t.Fatalf("Drain returned %d samples, want 5", len(got))
	}
	for i, sample := range got {
		if sample.Primary() != float64(i) {
			t.Fatalf("Drain()[%d] = %v, want %d", i, sample.Primary(), i)
		}
	}

	if again := s.Drain(); again != nil {
		t.Fatalf("second Drain = %v, want nil", again)
	}
}

func TestStore_DrainEmptyDoesNotBlock(t *testing.T) {
	var s Store

	done := make(chan []telemetry.Sample, 1)
	go func() { done <- s.Drain() }()

	select {
	case got := <-done:
		if got != nil {
			t.Fatalf("Drain on empty store = %v, want nil", got)
		}
	case <-time.After(time.Second):
		t.Fatal("Drain blocked on an empty store")
	}
}

func TestStore_Stats(t *testing.T) {
	var s Store

	if st := s.Stats(); !reflect.DeepEqual(st, Stats{}) {
		t.Fatalf("zero Stats = %#v, want empty", st)
	}

	before := time.Now()
	s.Push(sampleAt(1))
	s.Push(sampleAt(2))
	s.Reject()

	st := s.Stats()
	if st.Samples != 2 || st.Pending != 2 || st.Rejected != 1 {
		t.Fatalf("Stats = %#v, want samples=2 pending=2 rejected=1", st)
	}
	if st.LastPush.Before(before) {
		t.Fatalf("LastPush = %v, want >= %v", st.LastPush, before)
	}

	s.Drain()
	if st := s.Stats(); st.Pending != 0 || st.Samples != 2 {
		t.Fatalf("Stats after drain = %#v, want pending=0 samples=2", st)
	}
}

func TestStore_RecordError(t *testing.T) {
	var s Store

	s.RecordError(nil)
	if s.Stats().LastError != nil {
		t.Fatal("RecordError(nil) should not set an error")
	}

	orig := errors.New("read log: boom")
	s.RecordError(orig)
	if got := s.Stats().LastError; !errors.Is(got, orig) {
		t.Fatalf("LastError = %v, want %v", got, orig)
	}
}

func TestStore_ConcurrentPushAndDrainLosesNothing(t *testing.T) {
	var s Store
	const total = 5000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			s.Push(sampleAt(i % 60))
		}
	}()

	var got []telemetry.Sample
	deadline := time.Now().Add(5 * time.Second)
	for len(got) < total && time.Now().Before(deadline) {
		got = append(got, s.Drain()...)
	}
	wg.Wait()
	got = append(got, s.Drain()...)

	if len(got) != total {
		t.Fatalf("drained %d samples, want %d", len(got), total)
	}
	for i, sample := range got {
		if want := float64(i % 60); sample.Primary() != want {
			t.Fatalf("sample %d = %v, want %v (order broken)", i, sample.Primary(), want)
		}
	}
}
