// Package websocket implements a Hub for broadcasting real-time updates.
// Clients subscribe to a tournament day; whenever a score is written, the
// handlers re-run the evaluators and push the refreshed match results, skins,
// and live odds to everyone watching that day — no polling.
//
// The Hub is transport-agnostic: it deals in byte slices and channels, and the
// connection layer drains each client's Send channel into its socket. That
// keeps all map access on a single goroutine (no data races on the client set).
package websocket

import "sync"

// Client represents a single connected subscriber.
type Client struct {
	Day  string      // Which tournament day ("1".."3") this client is watching
	Send chan []byte // Buffered channel of outgoing messages
}

// Message is a unit of data to broadcast to all clients watching a day.
type Message struct {
	Day  string
	Data []byte // Raw bytes to send (JSON-encoded results payload)
}

// Hub manages all active connections, grouped by tournament day. It runs in
// its own goroutine and processes registration, unregistration, and broadcast
// events through channels.
type Hub struct {
	// clients is a nested map: day -> set of clients. A map[*Client]bool is
	// the usual Go stand-in for a set.
	clients map[string]map[*Client]bool

	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client

	// mu lets broadcasts read the client set concurrently with the main loop's
	// writes. RWMutex: many readers or one writer.
	mu sync.RWMutex
}

// NewHub creates a Hub. The broadcast channel is buffered so score-write
// handlers don't block if the Hub goroutine is briefly busy; register and
// unregister stay unbuffered because those need to complete synchronously.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run is the Hub's main event loop. Call it in a goroutine ("go hub.Run()").
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.Day] == nil {
				h.clients[client.Day] = make(map[*Client]bool)
			}
			h.clients[client.Day][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.drop(client)

		case msg := <-h.broadcast:
			h.mu.RLock()
			clients := h.clients[msg.Day]
			targets := make([]*Client, 0, len(clients))
			for client := range clients {
				targets = append(targets, client)
			}
			h.mu.RUnlock()

			for _, client := range targets {
				select {
				case client.Send <- msg.Data:
				default:
					// Send buffer full — the client is too slow; drop it rather
					// than stalling the broadcast loop for everyone else. Removed
					// inline: sending to h.unregister from this goroutine would
					// block forever.
					h.drop(client)
				}
			}
		}
	}
}

// drop removes a client from its day's set and closes its Send channel, which
// signals the connection's writer goroutine to stop. Safe to call twice for
// the same client; the second call is a no-op.
func (h *Hub) drop(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.clients[client.Day]
	if !ok {
		return
	}
	if _, ok := clients[client]; !ok {
		return
	}
	delete(clients, client)
	close(client.Send)
	if len(clients) == 0 {
		delete(h.clients, client.Day)
	}
}

// BroadcastToDay sends data to all clients currently watching the given day.
// Handlers call this after every accepted score write.
func (h *Hub) BroadcastToDay(day string, data []byte) {
	h.broadcast <- &Message{Day: day, Data: data}
}

// Register adds a client so it starts receiving broadcasts for its day.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister removes a client when its connection closes.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}
