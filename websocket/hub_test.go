// file: websocket/hub_test.go
package websocket

import (
	"net"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeConn is an in-memory WSConn for hub tests.
type fakeConn struct {
	mu     sync.Mutex
	closed bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error { return nil }
func (f *fakeConn) SetWriteDeadline(t time.Time) error              { return nil }
func (f *fakeConn) ReadMessage() (int, []byte, error) {
	select {} // block forever; hub tests never read
}
func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
func (f *fakeConn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0}
}
func (f *fakeConn) SetReadLimit(limit int64)            {}
func (f *fakeConn) SetReadDeadline(t time.Time) error   { return nil }
func (f *fakeConn) SetPongHandler(h func(string) error) {}

func newFakeConnection(studentID string) *Connection {
	return &Connection{
		conn:      &fakeConn{},
		send:      make(chan []byte, 8),
		studentID: studentID,
	}
}

var handleOnce sync.Once

func startHub() {
	handleOnce.Do(func() { go HandleMessages() })
}

func expectMessage(t *testing.T, c *Connection) []byte {
	t.Helper()
	select {
	case msg := <-c.send:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func expectSilence(t *testing.T, c *Connection) {
	t.Helper()
	select {
	case msg := <-c.send:
		t.Fatalf("unexpected message: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRegisterUnregister(t *testing.T) {
	c := newFakeConnection("s1")
	registerConnection(c)
	assert.Equal(t, 1, ActiveConnections())

	unregisterConnection(c)
	assert.Equal(t, 0, ActiveConnections())

	// Unregistering twice is safe.
	unregisterConnection(c)
	assert.Equal(t, 0, ActiveConnections())
}

func TestBroadcast_FansOutToAll(t *testing.T) {
	startHub()

	c1 := newFakeConnection("s1")
	c2 := newFakeConnection("s2")
	registerConnection(c1)
	registerConnection(c2)
	defer unregisterConnection(c1)
	defer unregisterConnection(c2)

	Broadcast(map[string]interface{}{"action": "notification", "type": "event"})

	assert.Contains(t, string(expectMessage(t, c1)), "notification")
	assert.Contains(t, string(expectMessage(t, c2)), "notification")
}

func TestBroadcast_FiltersByStudentID(t *testing.T) {
	startHub()

	c1 := newFakeConnection("s1")
	c2 := newFakeConnection("s2")
	registerConnection(c1)
	registerConnection(c2)
	defer unregisterConnection(c1)
	defer unregisterConnection(c2)

	Broadcast(map[string]interface{}{"action": "notification", "studentId": "s1"})

	assert.Contains(t, string(expectMessage(t, c1)), "s1")
	expectSilence(t, c2)
}

func TestServeWs_RequiresStudentID(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/notifications/ws", nil)
	w := httptest.NewRecorder()

	ServeWs(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
