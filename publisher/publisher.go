package publisher

import (
	"fmt"

	"tasepin/stores"

	"go.uber.org/zap"
)

// Messenger define the messaging operations the publisher needs
type Messenger interface {
	// SendMessage send a new message, returning its message id
	SendMessage(text string) (int64, error)
	// EditMessage replace the text of an existing message
	EditMessage(messageID int64, text string) error
	// PinMessage pin a message in the chat
	PinMessage(messageID int64) error
}

// Publisher deliver one payload per run: edit the recorded message when one
// exists, otherwise send (and pin) a new one and record its id
type Publisher struct {
	messenger Messenger
	store     stores.Store
	chat      string
}

// NewPublisher create publisher
func NewPublisher(messenger Messenger, store stores.Store, chat string) *Publisher {
	return &Publisher{
		messenger: messenger,
		store:     store,
		chat:      chat,
	}
}

// Publish deliver payload. A successful edit leaves the stored state
// untouched; a send persists the new message id. Both edit and send failing
// is the run's terminal error.
func (s Publisher) Publish(text string) error {
	state, err := s.store.Load()
	if err != nil {
		// unreadable state is treated as no prior message
		zap.L().Warn("load state failed, assuming no prior message", zap.Error(err))
		state = new(stores.State)
	}

	if state.HasMessage() {
		err = s.messenger.EditMessage(state.MessageID, text)
		if err == nil {
			zap.L().Info("edit message success", zap.Int64("messageID", state.MessageID))
			return nil
		}

		zap.L().Warn("edit message failed, sending new message",
			zap.Error(err),
			zap.Int64("messageID", state.MessageID))
	}

	messageID, err := s.messenger.SendMessage(text)
	if err != nil {
		return fmt.Errorf("send message failed: %w", err)
	}

	err = s.messenger.PinMessage(messageID)
	if err != nil {
		// pin is best effort, the bot may lack rights
		zap.L().Warn("pin message failed", zap.Error(err), zap.Int64("messageID", messageID))
	}

	err = s.store.Save(&stores.State{MessageID: messageID, Chat: s.chat})
	if err != nil {
		return fmt.Errorf("save state failed: %w", err)
	}

	zap.L().Info("send message success", zap.Int64("messageID", messageID))

	return nil
}
