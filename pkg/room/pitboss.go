package room

import (
	"github.com/sirupsen/logrus"
)

// PitBoss is responsible for dispatching sessions to rooms. Rooms are
// created on first connect and discarded when the last session leaves.
type PitBoss struct {
	dealers    map[string]*Dealer
	results    ResultStore
	connect    chan *Client
	disconnect chan *Client
}

// NewPitBoss returns a new dispatch object
func NewPitBoss(results ResultStore) *PitBoss {
	return &PitBoss{
		dealers:    make(map[string]*Dealer),
		results:    results,
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
	}
}

// StartShift starts the PitBoss run loop
func (p *PitBoss) StartShift() {
	go p.runLoop()
}

func (p *PitBoss) runLoop() {
	for {
		select {
		case client := <-p.connect:
			logrus.WithField("client", client.String()).Debug("client connected")
			dealer, found := p.dealers[client.roomKey]
			if !found {
				dealer = NewDealer(p, client.roomKey)
				dealer.StartShift()
				p.dealers[client.roomKey] = dealer
			}

			dealer.AddClient(client)
		case client := <-p.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			dealer, found := p.dealers[client.roomKey]
			if !found {
				logrus.WithField("room", client.roomKey).WithField("type", "exception").Error("room not found")
				continue
			}

			if dealer.RemoveClient(client) {
				dealer.EndShift()
				delete(p.dealers, client.roomKey)
			}
		}
	}
}

// ClientConnected is called when a client connects to the server
func (p *PitBoss) ClientConnected(client *Client) {
	p.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (p *PitBoss) ClientDisconnected(client *Client) {
	p.disconnect <- client
}
