package presence

import "testing"

func TestAnnounceAssignsDefaultMoodOnce(t *testing.T) {
	tracker := NewTracker()

	snapshot, changed := tracker.Announce("cherie")
	if !changed {
		t.Fatal("first announce should change the map")
	}
	if snapshot["cherie"] != DefaultMood {
		t.Fatalf("expected default mood %q, got %q", DefaultMood, snapshot["cherie"])
	}

	tracker.SetMood("cherie", "Excited")

	// A rejoin must not reset a previously announced mood.
	snapshot, changed = tracker.Announce("cherie")
	if changed {
		t.Fatal("re-announce should not change the map")
	}
	if snapshot["cherie"] != "Excited" {
		t.Fatalf("re-announce reset mood to %q", snapshot["cherie"])
	}
}

func TestSetMoodOverwrites(t *testing.T) {
	tracker := NewTracker()

	tracker.Announce("booboo")
	snapshot := tracker.SetMood("booboo", "Sleepy")
	if snapshot["booboo"] != "Sleepy" {
		t.Fatalf("expected Sleepy, got %q", snapshot["booboo"])
	}

	snapshot = tracker.SetMood("booboo", "Hungry")
	if snapshot["booboo"] != "Hungry" {
		t.Fatalf("expected Hungry, got %q", snapshot["booboo"])
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	tracker := NewTracker()
	tracker.Announce("cherie")

	snapshot := tracker.Snapshot()
	snapshot["cherie"] = "Tampered"

	if tracker.Snapshot()["cherie"] != DefaultMood {
		t.Fatal("mutating a snapshot leaked into the tracker")
	}
}

func TestEntriesSurviveWithoutRemoval(t *testing.T) {
	tracker := NewTracker()
	tracker.SetMood("booboo", "Grumpy")

	// There is no removal operation; a later snapshot still sees the mood.
	if tracker.Snapshot()["booboo"] != "Grumpy" {
		t.Fatal("presence entry was lost")
	}
}
