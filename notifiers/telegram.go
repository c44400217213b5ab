package notifiers

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"tasepin/utils"

	"github.com/bytedance/sonic"
	"github.com/nzai/netop"
	"go.uber.org/zap"
)

// DefaultEndpoint telegram bot api endpoint
const DefaultEndpoint = "https://api.telegram.org"

// Telegram telegram bot api client bound to one chat
type Telegram struct {
	// Endpoint bot api base url, overridable in tests
	Endpoint string
	token    string
	chat     string
}

// NewTelegram create telegram client
func NewTelegram(token, chat string) *Telegram {
	return &Telegram{
		Endpoint: DefaultEndpoint,
		token:    token,
		chat:     chat,
	}
}

func (s Telegram) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", s.Endpoint, s.token, method)
}

// User telegram bot identity
type User struct {
	ID       int64  `json:"id"`
	IsBot    bool   `json:"is_bot"`
	Username string `json:"username"`
}

// sendMessageRequest telegram sendMessage / editMessageText request
type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	MessageID             int64  `json:"message_id,omitempty"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// pinMessageRequest telegram pinChatMessage request
type pinMessageRequest struct {
	ChatID              string `json:"chat_id"`
	MessageID           int64  `json:"message_id"`
	DisableNotification bool   `json:"disable_notification"`
}

// messageResponse telegram response envelope for message methods
type messageResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Result      struct {
		MessageID int64 `json:"message_id"`
	} `json:"result"`
}

// boolResponse telegram response envelope for methods returning true on success
type boolResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Result      bool   `json:"result"`
}

// getMeResponse telegram response envelope for getMe
type getMeResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Result      *User  `json:"result"`
}

// SendMessage send a new message to the chat and return its message id
func (s Telegram) SendMessage(text string) (int64, error) {
	request := &sendMessageRequest{
		ChatID:                s.chat,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	}

	response := new(messageResponse)
	_, err := utils.PostJSON(s.methodURL("sendMessage"), request, response)
	if err != nil {
		zap.L().Error("send message failed", zap.Error(err), zap.String("chat", s.chat))
		return 0, err
	}

	if !response.OK {
		zap.L().Error("send message rejected",
			zap.Int("code", response.ErrorCode),
			zap.String("description", response.Description),
			zap.String("chat", s.chat))
		return 0, fmt.Errorf("send message failed due to %s(%d)", response.Description, response.ErrorCode)
	}

	return response.Result.MessageID, nil
}

// EditMessage replace the text of an existing message
func (s Telegram) EditMessage(messageID int64, text string) error {
	request := &sendMessageRequest{
		ChatID:                s.chat,
		MessageID:             messageID,
		Text:                  text,
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	}

	response := new(messageResponse)
	_, err := utils.PostJSON(s.methodURL("editMessageText"), request, response)
	if err != nil {
		zap.L().Warn("edit message failed",
			zap.Error(err),
			zap.String("chat", s.chat),
			zap.Int64("messageID", messageID))
		return err
	}

	if !response.OK {
		// the message already shows this exact payload
		if strings.Contains(response.Description, "message is not modified") {
			return nil
		}

		zap.L().Warn("edit message rejected",
			zap.Int("code", response.ErrorCode),
			zap.String("description", response.Description),
			zap.String("chat", s.chat),
			zap.Int64("messageID", messageID))
		return fmt.Errorf("edit message failed due to %s(%d)", response.Description, response.ErrorCode)
	}

	return nil
}

// PinMessage pin a message in the chat without notification
func (s Telegram) PinMessage(messageID int64) error {
	request := &pinMessageRequest{
		ChatID:              s.chat,
		MessageID:           messageID,
		DisableNotification: true,
	}

	response := new(boolResponse)
	_, err := utils.PostJSON(s.methodURL("pinChatMessage"), request, response)
	if err != nil {
		return err
	}

	if !response.OK {
		return fmt.Errorf("pin message failed due to %s(%d)", response.Description, response.ErrorCode)
	}

	return nil
}

// GetMe query the bot identity, used by the smoke check
func (s Telegram) GetMe() (*User, error) {
	raw, err := netop.Get(s.methodURL("getMe"), netop.Retry(1, time.Second))
	if err != nil {
		zap.L().Error("get me failed", zap.Error(err))
		return nil, err
	}
	defer raw.Body.Close()

	if raw.StatusCode != http.StatusOK && raw.StatusCode != http.StatusUnauthorized {
		return nil, fmt.Errorf("response status code %d", raw.StatusCode)
	}

	buffer, err := ioutil.ReadAll(raw.Body)
	if err != nil {
		zap.L().Error("read get me response failed", zap.Error(err))
		return nil, err
	}

	response := new(getMeResponse)
	err = sonic.Unmarshal(buffer, response)
	if err != nil {
		zap.L().Error("unmarshal get me response failed", zap.Error(err), zap.ByteString("response", buffer))
		return nil, err
	}

	if !response.OK || response.Result == nil {
		return nil, fmt.Errorf("get me failed due to %s(%d)", response.Description, response.ErrorCode)
	}

	return response.Result, nil
}
