package notifiers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(handler http.Handler) (*Telegram, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewTelegram("123:abc", "@channel")
	client.Endpoint = server.URL
	return client, server
}

func TestTelegram_SendMessage(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/bot123:abc/sendMessage") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"ok":true,"result":{"message_id":42}}`))
	}))
	defer server.Close()

	messageID, err := client.SendMessage("hello")
	if err != nil {
		t.Fatalf("SendMessage() error = %v", err)
	}

	if messageID != 42 {
		t.Errorf("SendMessage() = %d, want 42", messageID)
	}
}

func TestTelegram_SendMessage_Rejected(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"ok":false,"error_code":403,"description":"Forbidden: bot is not a member"}`))
	}))
	defer server.Close()

	_, err := client.SendMessage("hello")
	if err == nil {
		t.Errorf("SendMessage() expected error on rejected request")
	}
}

func TestTelegram_EditMessage(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/editMessageText") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"ok":true,"result":{"message_id":42}}`))
	}))
	defer server.Close()

	if err := client.EditMessage(42, "update"); err != nil {
		t.Errorf("EditMessage() error = %v", err)
	}
}

func TestTelegram_EditMessage_NotModified(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: message is not modified"}`))
	}))
	defer server.Close()

	// identical payload on screen counts as success
	if err := client.EditMessage(42, "same"); err != nil {
		t.Errorf("EditMessage() error = %v, want nil", err)
	}
}

func TestTelegram_EditMessage_NotFound(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: message to edit not found"}`))
	}))
	defer server.Close()

	if err := client.EditMessage(42, "update"); err == nil {
		t.Errorf("EditMessage() expected error on missing message")
	}
}

func TestTelegram_GetMe(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/getMe") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"ok":true,"result":{"id":7,"is_bot":true,"username":"tasepin_bot"}}`))
	}))
	defer server.Close()

	me, err := client.GetMe()
	if err != nil {
		t.Fatalf("GetMe() error = %v", err)
	}

	if me.Username != "tasepin_bot" || me.ID != 7 {
		t.Errorf("GetMe() = %+v", me)
	}
}

func TestTelegram_GetMe_BadToken(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"ok":false,"error_code":401,"description":"Unauthorized"}`))
	}))
	defer server.Close()

	if _, err := client.GetMe(); err == nil {
		t.Errorf("GetMe() expected error on bad token")
	}
}

func TestTelegram_PinMessage(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/pinChatMessage") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"ok":true,"result":true}`))
	}))
	defer server.Close()

	if err := client.PinMessage(42); err != nil {
		t.Errorf("PinMessage() error = %v", err)
	}
}
