package mux

import (
	"errors"
	"net/http"
	"regexp"
	"time"

	"blackjack-server/internal/jwt"
	"blackjack-server/internal/util"
	"blackjack-server/pkg/account"

	gmux "github.com/gorilla/mux"
)

type accountPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
	Token    string `json:"token"`
}

var validUsernameRx = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N}_-]{0,39}\z`)

func (m *Mux) postAccount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ap accountPayload
		if !decodeRequest(w, r, &ap) {
			return
		}

		if err := m.recaptcha.Verify(ap.Token); err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		if !validUsernameRx.MatchString(ap.Username) {
			writeJSONError(w, http.StatusBadRequest, errors.New("username must start with a letter or number, only contain letters, numbers, hyphens, and underscores, and be 40 characters or less"))
			return
		}

		if len(ap.Password) < 6 {
			writeJSONError(w, http.StatusBadRequest, errors.New("password must be 6 or more characters"))
			return
		}

		avatar := ap.Avatar
		if avatar == "" {
			avatar = util.RandomAvatar()
		} else if !util.IsValidAvatar(avatar) {
			writeJSONError(w, http.StatusBadRequest, errors.New("unsupported avatar"))
			return
		}

		addr := remoteAddr(r)
		at, err := account.LastAccountCreatedAt(r.Context(), addr)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		if time.Since(at) < m.config.accountCreateDelay {
			writeJSONError(w, http.StatusBadRequest, errors.New("please wait before creating another account"))
			return
		}

		acct, err := account.CreateAccount(r.Context(), ap.Username, ap.Password, avatar, addr)
		if err != nil {
			if err == account.ErrDuplicateKey {
				writeJSONError(w, http.StatusBadRequest, errors.New("username is already taken"))
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusCreated, acct)
	}
}

type authResponse struct {
	JWT     string           `json:"jwt"`
	Account *account.Account `json:"account"`
}

func (m *Mux) postAccountAuth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ap accountPayload
		if !decodeRequest(w, r, &ap) {
			return
		}

		acct, err := account.GetAccountByUsernameAndPassword(r.Context(), ap.Username, ap.Password)
		if err != nil {
			if err == account.ErrInvalidUsernameOrPassword {
				writeJSONError(w, http.StatusUnauthorized, err)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		signed, err := jwt.Sign(acct.ID)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, authResponse{
			JWT:     signed,
			Account: acct,
		})
	}
}

func (m *Mux) getAccountProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := gmux.Vars(r)["username"]

		acct, err := account.GetAccountByUsername(r.Context(), username)
		if err != nil {
			if err == account.ErrAccountNotFound {
				writeJSONError(w, http.StatusNotFound, nil)
				return
			}

			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, acct)
	}
}
