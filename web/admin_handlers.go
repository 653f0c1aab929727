package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/albertisntreal/showdown-survivor/controller"
	"github.com/albertisntreal/showdown-survivor/db"
	"github.com/albertisntreal/showdown-survivor/model"
	"github.com/unrolled/render"
)

func adminHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
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
		override, err := ctrl.GetWeekOverride(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		unused := 0
		for _, p := range pools {
			if p.IsUnused() {
				unused++
			}
		}

		render.HTML(w, http.StatusOK, "admin", map[string]any{
			"pools":    pools,
			"unused":   unused,
			"week":     week,
			"override": override,
			"weeks":    ctrl.Schedule().Weeks(),
		})
	}
}

func setWeekOverrideHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		// An empty value clears the override.
		week := 0
		if v := r.PostForm.Get("week"); v != "" {
			var err error
			week, err = strconv.Atoi(v)
			if err != nil {
				render.HTML(w, http.StatusBadRequest, "400", "invalid week")
				return
			}
		}

		if err := ctrl.SetWeekOverride(r.Context(), week); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

func resultsFormHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := weekParam(r.URL.Query().Get("week"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		var recorded *model.WeekResult
		recorded, err = ctrl.GetWeekResult(r.Context(), week)
		if err != nil && !errors.Is(err, db.ErrWeekResultNotFound) {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "results", map[string]any{
			"week":     week,
			"games":    ctrl.Schedule().GamesInWeek(week),
			"recorded": recorded,
		})
	}
}

// recordResultsHandler takes the bulk results form: one select per game named
// after the game key, empty meaning not played yet.
func recordResultsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		week, err := weekParam(r.PostForm.Get("week"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		winners := make(map[string]string)
		for _, g := range ctrl.Schedule().GamesInWeek(week) {
			winners[g.Key()] = r.PostForm.Get(g.Key())
		}

		if err := ctrl.RecordWinnersBulk(r.Context(), week, winners); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/admin/results?week=%d", week), http.StatusSeeOther)
	}
}

func processEliminationsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		week, err := weekParam(r.PostForm.Get("week"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		summary, err := ctrl.ProcessEliminations(r.Context(), week)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		render.HTML(w, http.StatusOK, "eliminations", summary)
	}
}

func clearResultsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		week, err := weekParam(r.PostForm.Get("week"))
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		if err := ctrl.ClearWeekResults(r.Context(), week); err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

func cleanupPoolsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := ctrl.CleanupUnusedPools(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}
		render.Text(w, http.StatusOK, fmt.Sprintf("deleted %d unused pools", deleted))
	}
}

func weekParam(v string) (int, error) {
	week, err := strconv.Atoi(v)
	if err != nil || week < 1 {
		return 0, fmt.Errorf("invalid week: %q", v)
	}
	return week, nil
}
