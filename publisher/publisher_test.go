package publisher

import (
	"errors"
	"path/filepath"
	"testing"

	"tasepin/stores"
)

// fakeMessenger scripted telegram stand-in
type fakeMessenger struct {
	editErr error
	sendErr error
	pinErr  error
	nextID  int64

	edits []int64
	sends []string
	pins  []int64
}

func (s *fakeMessenger) SendMessage(text string) (int64, error) {
	if s.sendErr != nil {
		return 0, s.sendErr
	}
	s.sends = append(s.sends, text)
	return s.nextID, nil
}

func (s *fakeMessenger) EditMessage(messageID int64, text string) error {
	s.edits = append(s.edits, messageID)
	return s.editErr
}

func (s *fakeMessenger) PinMessage(messageID int64) error {
	s.pins = append(s.pins, messageID)
	return s.pinErr
}

func newFileStore(t *testing.T) stores.Store {
	return stores.NewFileSystem(filepath.Join(t.TempDir(), "state.json"))
}

func TestPublisher_Publish_FirstSend(t *testing.T) {
	messenger := &fakeMessenger{nextID: 42}
	store := newFileStore(t)

	err := NewPublisher(messenger, store, "@channel").Publish("hello")
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(messenger.edits) != 0 {
		t.Errorf("edit attempted with no prior message")
	}

	if len(messenger.sends) != 1 || messenger.sends[0] != "hello" {
		t.Errorf("sends = %v", messenger.sends)
	}

	if len(messenger.pins) != 1 || messenger.pins[0] != 42 {
		t.Errorf("pins = %v", messenger.pins)
	}

	state, _ := store.Load()
	if state.MessageID != 42 || state.Chat != "@channel" {
		t.Errorf("persisted state = %+v", state)
	}
}

func TestPublisher_Publish_EditKeepsState(t *testing.T) {
	messenger := &fakeMessenger{nextID: 99}
	store := newFileStore(t)
	if err := store.Save(&stores.State{MessageID: 12345, Chat: "@channel"}); err != nil {
		t.Fatalf("seed state: %v", err)
	}

	err := NewPublisher(messenger, store, "@channel").Publish("update")
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(messenger.edits) != 1 || messenger.edits[0] != 12345 {
		t.Errorf("edits = %v", messenger.edits)
	}

	if len(messenger.sends) != 0 {
		t.Errorf("send attempted after successful edit")
	}

	state, _ := store.Load()
	if state.MessageID != 12345 {
		t.Errorf("state changed after successful edit: %+v", state)
	}
}

func TestPublisher_Publish_EditFailureRecovers(t *testing.T) {
	messenger := &fakeMessenger{editErr: errors.New("message not found"), nextID: 678}
	store := newFileStore(t)
	if err := store.Save(&stores.State{MessageID: 12345}); err != nil {
		t.Fatalf("seed state: %v", err)
	}

	err := NewPublisher(messenger, store, "@channel").Publish("update")
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(messenger.edits) != 1 || len(messenger.sends) != 1 {
		t.Errorf("edits = %v, sends = %v", messenger.edits, messenger.sends)
	}

	state, _ := store.Load()
	if state.MessageID != 678 {
		t.Errorf("state not overwritten with new id: %+v", state)
	}
}

func TestPublisher_Publish_EditAndSendFail(t *testing.T) {
	messenger := &fakeMessenger{
		editErr: errors.New("message not found"),
		sendErr: errors.New("forbidden"),
	}
	store := newFileStore(t)
	if err := store.Save(&stores.State{MessageID: 12345}); err != nil {
		t.Fatalf("seed state: %v", err)
	}

	err := NewPublisher(messenger, store, "@channel").Publish("update")
	if err == nil {
		t.Fatalf("Publish() expected error when edit and send both fail")
	}

	state, _ := store.Load()
	if state.MessageID != 12345 {
		t.Errorf("state changed on failed run: %+v", state)
	}
}

func TestPublisher_Publish_PinFailureTolerated(t *testing.T) {
	messenger := &fakeMessenger{nextID: 7, pinErr: errors.New("not enough rights")}
	store := newFileStore(t)

	err := NewPublisher(messenger, store, "@channel").Publish("hello")
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	state, _ := store.Load()
	if state.MessageID != 7 {
		t.Errorf("state not persisted despite pin failure: %+v", state)
	}
}

// unreadableStore load always fails, writes pass through
type unreadableStore struct {
	stores.Store
}

func (s unreadableStore) Load() (*stores.State, error) {
	return nil, errors.New("state unreadable")
}

func TestPublisher_Publish_LoadFailureSendsNew(t *testing.T) {
	messenger := &fakeMessenger{nextID: 77}
	inner := newFileStore(t)

	err := NewPublisher(messenger, unreadableStore{Store: inner}, "@channel").Publish("hello")
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}

	if len(messenger.edits) != 0 {
		t.Errorf("edit attempted with unreadable state")
	}

	if len(messenger.sends) != 1 || messenger.sends[0] != "hello" {
		t.Errorf("sends = %v", messenger.sends)
	}

	state, err := inner.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if state.MessageID != 77 {
		t.Errorf("persisted message id = %d, want 77", state.MessageID)
	}
}

// failingStore save always fails
type failingStore struct {
	stores.Store
}

func (s failingStore) Save(*stores.State) error {
	return errors.New("disk full")
}

func TestPublisher_Publish_SaveFailureSurfaces(t *testing.T) {
	messenger := &fakeMessenger{nextID: 8}
	store := failingStore{Store: newFileStore(t)}

	err := NewPublisher(messenger, store, "@channel").Publish("hello")
	if err == nil {
		t.Errorf("Publish() expected error when state save fails")
	}
}
