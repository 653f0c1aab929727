package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/albertisntreal/showdown-survivor/controller"
	"github.com/albertisntreal/showdown-survivor/db"
	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/unrolled/render"
)

func rootHandler(_ controller.C, render *render.Render, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if userID(store, r) != "" {
			http.Redirect(w, r, "/lobby", http.StatusSeeOther)
			return
		}
		render.HTML(w, http.StatusOK, "landing", nil)
	}
}

func loginPageHandler(render *render.Render, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if userID(store, r) != "" {
			http.Redirect(w, r, "/lobby", http.StatusSeeOther)
			return
		}
		render.HTML(w, http.StatusOK, "login", nil)
	}
}

func loginHandler(ctrl controller.C, render *render.Render, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		u, err := ctrl.Authenticate(r.Context(), r.PostForm.Get("email"), r.PostForm.Get("password"))
		if err != nil {
			if errors.Is(err, controller.ErrBadPassword) {
				render.HTML(w, http.StatusUnauthorized, "login", map[string]any{"error": "Incorrect password."})
				return
			}
			render.HTML(w, http.StatusBadRequest, "login", map[string]any{"error": err.Error()})
			return
		}

		if err := saveUserSession(store, w, r, u.ID); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		http.Redirect(w, r, "/lobby", http.StatusSeeOther)
	}
}

func logoutHandler(store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := clearUserSession(store, w, r); err != nil {
			log.Printf("error clearing session: %v", err)
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func lobbyHandler(ctrl controller.C, render *render.Render, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := userID(store, r)
		u, err := ctrl.GetUser(r.Context(), uid)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		pools, err := ctrl.ListPools(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		week, err := ctrl.CurrentWeek(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		var mine, open []model.Pool
		for _, p := range pools {
			switch {
			case p.IsMember(uid):
				mine = append(mine, p)
			case p.Visibility == model.VisibilityPublic:
				open = append(open, p)
			}
		}

		render.HTML(w, http.StatusOK, "lobby", map[string]any{
			"user": u,
			"week": week,
			"mine": mine,
			"open": open,
		})
	}
}

func createPoolHandler(ctrl controller.C, render *render.Render, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		entryFee, _ := strconv.ParseFloat(r.PostForm.Get("entryFee"), 64)
		maxPlayers, _ := strconv.Atoi(r.PostForm.Get("maxPlayers"))

		p, err := ctrl.CreatePool(r.Context(),
			userID(store, r),
			r.PostForm.Get("name"),
			entryFee,
			maxPlayers,
			model.ParseVisibility(r.PostForm.Get("visibility")),
			r.PostForm.Get("joinKey"),
			model.ParseGameType(r.PostForm.Get("gameType")))
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		http.Redirect(w, r, "/pools/"+p.ID, http.StatusSeeOther)
	}
}

// poolMember is a row in the pool page roster.
type poolMember struct {
	ID          string
	DisplayName string
	Eliminated  bool
	Buybacks    int
	Pick        string
}

func poolHandler(ctrl controller.C, render *render.Render, store *sessions.CookieStore, cfg Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := userID(store, r)
		p, err := ctrl.GetPool(r.Context(), chi.URLParam(r, "poolID"))
		if err != nil {
			if errors.Is(err, db.ErrPoolNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "pool not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		week, err := ctrl.CurrentWeek(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		members := make([]poolMember, 0, len(p.Players))
		for _, id := range p.Players {
			m := poolMember{
				ID:          id,
				DisplayName: id,
				Eliminated:  p.IsEliminated(id),
				Buybacks:    p.Buybacks[id],
			}
			if u, err := ctrl.GetUser(r.Context(), id); err == nil {
				m.DisplayName = u.DisplayName
			}
			// Everyone can see your pick once it can no longer be changed.
			if id == uid {
				m.Pick = p.PickFor(id, week)
			}
			members = append(members, m)
		}

		canBuyBack := p.GameType == model.GameTypeBuyback &&
			p.IsMember(uid) &&
			p.IsEliminated(uid) &&
			p.Buybacks[uid] < model.MaxBuybacks

		data := map[string]any{
			"pool":        p,
			"members":     members,
			"week":        week,
			"games":       ctrl.Schedule().GamesInWeek(week),
			"pot":         p.Pot(),
			"myPick":      p.PickFor(uid, week),
			"isMember":    p.IsMember(uid),
			"eliminated":  p.IsEliminated(uid),
			"canBuyBack":  canBuyBack,
			"buybackCost": p.BuybackCost(p.Buybacks[uid] + 1),
			"vapidKey":    cfg.VAPIDPublicKey,
		}
		render.HTML(w, http.StatusOK, "pool", data)
	}
}

func joinPoolHandler(ctrl controller.C, render *render.Render, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		poolID := chi.URLParam(r, "poolID")
		err := ctrl.JoinPool(r.Context(), poolID, userID(store, r), r.PostForm.Get("joinKey"))
		if err != nil {
			renderRuleError(render, w, err)
			return
		}
		http.Redirect(w, r, "/pools/"+poolID, http.StatusSeeOther)
	}
}

func submitPickHandler(ctrl controller.C, render *render.Render, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		poolID := chi.URLParam(r, "poolID")
		week, err := strconv.Atoi(r.PostForm.Get("week"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", "invalid week")
			return
		}

		err = ctrl.SubmitPick(r.Context(), poolID, userID(store, r), r.PostForm.Get("team"), week)
		if err != nil {
			renderRuleError(render, w, err)
			return
		}
		http.Redirect(w, r, "/pools/"+poolID, http.StatusSeeOther)
	}
}

func buyBackHandler(ctrl controller.C, render *render.Render, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		poolID := chi.URLParam(r, "poolID")
		if err := ctrl.BuyBack(r.Context(), poolID, userID(store, r)); err != nil {
			renderRuleError(render, w, err)
			return
		}
		http.Redirect(w, r, "/pools/"+poolID, http.StatusSeeOther)
	}
}

func profilePageHandler(ctrl controller.C, render *render.Render, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := ctrl.GetUser(r.Context(), userID(store, r))
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		render.HTML(w, http.StatusOK, "profile", u)
	}
}

func updateProfileHandler(ctrl controller.C, render *render.Render, store *sessions.CookieStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		err := ctrl.UpdateProfile(r.Context(), userID(store, r),
			r.PostForm.Get("displayName"), r.PostForm.Get("avatarURL"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
	}
}

// pushSubscribeHandler accepts the subscription JSON the browser's service
// worker produces.
func pushSubscribeHandler(ctrl controller.C, render *render.Render, store *sessions.CookieStore) http.HandlerFunc {
	type subscribeRequest struct {
		Endpoint string `json:"endpoint"`
		Keys     struct {
			Auth   string `json:"auth"`
			P256dh string `json:"p256dh"`
		} `json:"keys"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req subscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		sub := model.PushSubscription{
			Endpoint: req.Endpoint,
			Auth:     req.Keys.Auth,
			P256dh:   req.Keys.P256dh,
		}
		if err := ctrl.AddPushSubscription(r.Context(), userID(store, r), sub); err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		render.JSON(w, http.StatusCreated, map[string]string{"status": "subscribed"})
	}
}

// renderRuleError maps the controller's rule violations to a 400 page and
// everything else to a 500.
func renderRuleError(render *render.Render, w http.ResponseWriter, err error) {
	for _, rule := range []error{
		controller.ErrWeekLocked,
		controller.ErrUnknownTeam,
		controller.ErrTeamNotPlayingThisWeek,
		controller.ErrTeamAlreadyUsed,
		controller.ErrPoolFull,
		controller.ErrInvalidJoinKey,
		controller.ErrNotBuybackVariant,
		controller.ErrNotAMember,
		controller.ErrNotEliminated,
		controller.ErrBuybackCapReached,
	} {
		if errors.Is(err, rule) {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
	}
	if errors.Is(err, db.ErrPoolNotFound) || errors.Is(err, db.ErrUserNotFound) {
		render.HTML(w, http.StatusNotFound, "404", err.Error())
		return
	}
	render.HTML(w, http.StatusInternalServerError, "500", err.Error())
}
