package room

import (
	"context"
	"sync"

	"blackjack-server/pkg/blackjack"

	"github.com/sirupsen/logrus"
)

// Dealer owns a single room's game. All game mutations happen on the run
// loop, so sessions sharing a room are serialized in arrival order.
type Dealer struct {
	pitBoss *PitBoss
	roomKey string
	game    *blackjack.Game
	clients map[*Client]bool
	lock    sync.RWMutex

	// recorded is true once the current round's results have been tallied
	recorded bool

	execInRunLoop chan func()
	close         chan bool
}

// NewDealer creates a new dealer object
// This is called from a blocking state, so it needs to return quickly
func NewDealer(pitBoss *PitBoss, roomKey string) *Dealer {
	return &Dealer{
		pitBoss:       pitBoss,
		roomKey:       roomKey,
		game:          blackjack.NewGame(),
		clients:       make(map[*Client]bool),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// Clients will return a slice of connected (at the time) clients
func (d *Dealer) Clients() []*Client {
	d.lock.RLock()
	defer d.lock.RUnlock()

	clients := make([]*Client, 0, len(d.clients))
	for client := range d.clients {
		clients = append(clients, client)
	}

	return clients
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	log := logrus.WithField("room", d.roomKey)

	log.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			log.Debug("terminating dealer run loop")
			return
		}
	}
}

// AddClient adds a client, seats its participant if the name is new, and
// broadcasts the current snapshot to the room.
// This method must return quickly
func (d *Dealer) AddClient(client *Client) {
	d.lock.Lock()
	client.dealer = d
	d.clients[client] = true
	d.lock.Unlock()

	d.execInRunLoop <- func() {
		d.game.Join(client.username)
		d.broadcast()
	}
}

// RemoveClient removes a client. When no other session shares the name and
// the seat is not part of an active round, the seat is freed; a seat
// abandoned mid-round stays and blocks the turn until the round is
// restarted.
// This method must return quickly
func (d *Dealer) RemoveClient(client *Client) (lastClient bool) {
	d.lock.Lock()
	delete(d.clients, client)
	nClients := len(d.clients)
	d.lock.Unlock()

	if nClients == 0 {
		return true
	}

	d.execInRunLoop <- func() {
		for _, other := range d.Clients() {
			if other.username == client.username {
				return
			}
		}

		if d.game.Started() && !d.game.IsOver() && !d.sittingOut(client.username) {
			return
		}

		if d.game.Leave(client.username) {
			d.broadcast()
		}
	}

	return false
}

// sittingOut reports whether the named seat is waiting for the next deal
// NOTE: must only be called from the run loop
func (d *Dealer) sittingOut(name string) bool {
	for _, p := range d.game.Participants() {
		if p.Name() == name {
			return p.SittingOut()
		}
	}

	return false
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	close(d.close)
}

// ReceivedMessage is called when a client sends a message to the server.
// Rule violations (acting out of turn, on a finished round, etc.) are
// dropped without a broadcast.
func (d *Dealer) ReceivedMessage(c *Client, msg *PayloadIn) {
	switch msg.Action {
	case actionAddBot:
		d.execInRunLoop <- func() {
			name := d.game.AddBot()
			logrus.WithField("room", d.roomKey).WithField("bot", name).Debug("bot added")
			d.broadcast()
			d.reconcile()
		}
	case actionStart:
		d.execInRunLoop <- func() {
			d.game.Start()
			d.recorded = false
			d.broadcast()
			d.reconcile()
		}
	case actionHit:
		d.execInRunLoop <- func() {
			if err := d.game.Hit(c.username); err != nil {
				logrus.WithField("client", c.String()).WithError(err).Debug("hit rejected")
				return
			}

			d.broadcast()
			d.reconcile()
		}
	case actionStand:
		d.execInRunLoop <- func() {
			if err := d.game.Stand(c.username); err != nil {
				logrus.WithField("client", c.String()).WithError(err).Debug("stand rejected")
				return
			}

			d.broadcast()
			d.reconcile()
		}
	default:
		logrus.WithField("msg", msg).Warn("unknown action")
	}
}

// reconcile drains pending bot and dealer turns, broadcasting every
// incremental snapshot, then tallies results once the round ends.
// NOTE: must only be called from the run loop
func (d *Dealer) reconcile() {
	for _, state := range d.game.Reconcile() {
		d.broadcastState(state)
	}

	if d.game.IsOver() && !d.recorded {
		d.recordResults()
		d.recorded = true
	}
}

// NOTE: must only be called from the run loop
func (d *Dealer) broadcast() {
	d.broadcastState(d.game.State())
}

func (d *Dealer) broadcastState(state *blackjack.State) {
	msg := newStateMessage(state)
	for _, client := range d.Clients() {
		if !client.Send(msg) {
			logrus.WithField("client", client.String()).Warn("send buffer full, dropping state")
		}
	}
}

// recordResults compares each human participant's final hand with the
// dealer's and persists a win or a loss. Pushes and seats sitting out the
// round are not recorded.
// NOTE: must only be called from the run loop
func (d *Dealer) recordResults() {
	house := d.game.Dealer()

	for _, p := range d.game.Participants() {
		if p.IsBot() || p.SittingOut() {
			continue
		}

		result := outcome(p.Score(), p.Busted(), house.Score(), house.Busted())
		if result == OutcomePush {
			continue
		}

		if err := d.pitBoss.results.RecordResult(context.Background(), p.Name(), result == OutcomeWin); err != nil {
			logrus.WithField("username", p.Name()).WithError(err).Error("could not record result")
		}
	}
}
