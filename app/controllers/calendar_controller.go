package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/arypfer/Proty-Content-Calendar/app/calendar"
	"github.com/arypfer/Proty-Content-Calendar/app/services"

	"github.com/gorilla/mux"
)

// CalendarController serves the month view derived from the post store.
type CalendarController struct {
	postService *services.PostService
	now         func() time.Time
}

// NewCalendarController creates a new CalendarController
func NewCalendarController(postService *services.PostService) *CalendarController {
	return &CalendarController{
		postService: postService,
		now:         time.Now,
	}
}

// Month handles GET /api/calendar/{year}/{month}. "Today" defaults to the
// server clock and can be pinned with ?today=YYYY-MM-DD.
func (cc *CalendarController) Month(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		sendError(w, "Invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		sendError(w, "Invalid month", http.StatusBadRequest)
		return
	}

	today := cc.now()
	if q := r.URL.Query().Get("today"); q != "" {
		t, err := time.Parse(calendar.DayKeyFormat, q)
		if err != nil {
			sendError(w, "Invalid today parameter, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		today = t
	}

	posts, err := cc.postService.List()
	if err != nil {
		sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	grid, err := calendar.BuildMonthGrid(year, time.Month(month), today, posts)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sendJSON(w, grid)
}
