package realtime

import (
	"log"
	"sync"

	"fieldscore/metrics"
	"fieldscore/models"

	"github.com/gorilla/websocket"
)

var (
	roundClients = make(map[string]map[*websocket.Conn]bool) // Map of round ID to connected clients
	broadcast    = make(chan ScoreUpdate)                    // Broadcast channel for updates
	mutex        sync.Mutex                                  // Mutex to protect roundClients map
)

// ScoreUpdate is pushed to everyone watching a round's live score page
type ScoreUpdate struct {
	RoundID       string              `json:"round_id"`
	ParticipantID string              `json:"participant_id"`
	NonMember     bool                `json:"non_member"`
	TargetScore   *models.TargetScore `json:"target_score,omitempty"`
	TotalScore    int                 `json:"total_score"`
	UpdateType    string              `json:"update_type"` // "score", "completed" or "cancelled"
}

// RegisterClient adds a WebSocket client to a specific round
func RegisterClient(roundID string, conn *websocket.Conn) {
	mutex.Lock()
	if roundClients[roundID] == nil {
		roundClients[roundID] = make(map[*websocket.Conn]bool)
	}
	roundClients[roundID][conn] = true
	mutex.Unlock()
	metrics.WebsocketConnections.Inc()
}

// UnregisterClient removes a WebSocket client from a specific round
func UnregisterClient(roundID string, conn *websocket.Conn) {
	mutex.Lock()
	if clients, exists := roundClients[roundID]; exists {
		delete(clients, conn)
		if len(clients) == 0 {
			delete(roundClients, roundID)
		}
	}
	mutex.Unlock()
	metrics.WebsocketConnections.Dec()
}

// BroadcastScoreUpdate sends an update to all clients watching a round
func BroadcastScoreUpdate(update ScoreUpdate) {
	broadcast <- update
}

func handleBroadcast() {
	for {
		update := <-broadcast
		mutex.Lock()
		if clients, exists := roundClients[update.RoundID]; exists {
			for client := range clients {
				if err := client.WriteJSON(update); err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
		}
		mutex.Unlock()
	}
}

func init() {
	go handleBroadcast()
}
