package mux

import (
	"context"
	"net/http"
	"strings"
	"time"

	"blackjack-server/internal/config"
	"blackjack-server/internal/jwt"
	"blackjack-server/pkg/account"
	"blackjack-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

type ctxKey int

const ctxAccountKey ctxKey = iota

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	config    muxConfig
	version   string
	recaptcha recaptcha
	pitBoss   *room.PitBoss

	// store for testing purposes
	authRouter *gmux.Router
}

type muxConfig struct {
	// accountCreateDelay is the minimum duration between two account create events from a single remote address
	accountCreateDelay time.Duration
}

// accountResultStore records round results against the accounts table
type accountResultStore struct{}

func (accountResultStore) RecordResult(ctx context.Context, username string, win bool) error {
	_, _, err := account.RecordResult(ctx, username, win)
	return err
}

// NewMux returns a new HTTP mux
func NewMux(version string) *Mux {
	pitBoss := room.NewPitBoss(accountResultStore{})
	pitBoss.StartShift()

	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		pitBoss: pitBoss,
		config: muxConfig{
			accountCreateDelay: time.Second * time.Duration(config.Instance().AccountCreateDelay),
		},
		recaptcha: newRecaptcha(),
	}

	this.authRouter = this.Router.NewRoute().Subrouter()
	this.authRouter.Use(this.authMiddleware)

	// unauthorized endpoints
	{
		r := this.Router
		r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
		r.Methods(http.MethodPost).Path("/account").Handler(this.postAccount())
		r.Methods(http.MethodPost).Path("/account/auth").Handler(this.postAccountAuth())
		r.Methods(http.MethodGet).Path("/account/{username}").Handler(this.getAccountProfile())
	}

	// requires bearer authorization
	{
		r := this.authRouter
		r.Methods(http.MethodGet).Path("/room/{room:[a-zA-Z0-9_-]+}/ws").Handler(this.getRoomWS())
	}

	return this
}

func (m *Mux) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.FormValue("access_token")
		if token == "" {
			authHeader := strings.Split(r.Header.Get("Authorization"), " ")
			if len(authHeader) != 2 || strings.ToLower(authHeader[0]) != "bearer" {
				writeJSONError(w, http.StatusUnauthorized, nil)
				return
			}

			token = authHeader[1]
		}

		id, err := jwt.ValidAccountID(token)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		acct, err := account.GetAccountByID(r.Context(), id)
		if err != nil {
			writeJSONError(w, http.StatusUnauthorized, nil)
			return
		}

		newCtx := context.WithValue(r.Context(), ctxAccountKey, acct)
		w.Header().Set("BlackjackServer-Username", acct.Username)
		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}
