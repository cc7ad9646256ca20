// Package websocket pushes notification payloads to connected students
// in real time. Creation of an event or competition broadcasts a
// summary; each connection may be addressed individually by student id.
// file: websocket/hub.go
package websocket

import (
	"encoding/json"
	"sync"

	"campus-teams/logger"
)

// Global registry of active feed connections.
var (
	connectionsMu sync.Mutex
	connections   = make(map[*Connection]bool)
	broadcast     = make(chan []byte, 64)
)

func registerConnection(c *Connection) {
	connectionsMu.Lock()
	connections[c] = true
	count := len(connections)
	connectionsMu.Unlock()

	logger.Info.Printf("[hub] student %s connected (%d active)", c.studentID, count)
	PublishFeedConnections(count)
}

func unregisterConnection(c *Connection) {
	connectionsMu.Lock()
	if _, ok := connections[c]; ok {
		delete(connections, c)
		close(c.send)
	}
	count := len(connections)
	connectionsMu.Unlock()

	logger.Info.Printf("[hub] student %s disconnected (%d active)", c.studentID, count)
	PublishFeedConnections(count)
}

// HandleMessages listens on the broadcast channel and distributes each
// message to matching connections. A payload carrying a studentId field
// goes only to that student's connections; everything else fans out to
// all of them.
func HandleMessages() {
	for {
		msg := <-broadcast

		var msgMap map[string]interface{}
		var studentFilter string
		if err := json.Unmarshal(msg, &msgMap); err == nil {
			if id, ok := msgMap["studentId"].(string); ok {
				studentFilter = id
			}
		}

		connectionsMu.Lock()
		for c := range connections {
			if studentFilter != "" && c.studentID != studentFilter {
				continue
			}
			select {
			case c.send <- msg:
			default:
				logger.Warn.Printf("[hub] dropping message for slow connection %v", c.conn.RemoteAddr())
			}
		}
		connectionsMu.Unlock()
	}
}

// Broadcast queues a payload for delivery to the connected students.
func Broadcast(payload map[string]interface{}) {
	msg, err := json.Marshal(payload)
	if err != nil {
		logger.Error.Printf("[hub] error marshalling payload: %v", err)
		return
	}
	broadcast <- msg
}

// ActiveConnections reports how many feed connections are open.
func ActiveConnections() int {
	connectionsMu.Lock()
	defer connectionsMu.Unlock()
	return len(connections)
}
