package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/mergington/activities/internal/activity"
	"github.com/mergington/activities/internal/registry"
	"github.com/mergington/activities/internal/server/httpx"
	"github.com/mergington/activities/internal/server/observability"
	"github.com/mergington/activities/internal/server/static"
)

// Roster is the registry surface the HTTP handlers depend on.
type Roster interface {
	List() map[string]activity.Activity
	Signup(name, email string) error
	Unregister(name, email string) error
}

// activityDetail is the wire representation of one activity.
type activityDetail struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// messageResponse confirms a successful roster mutation.
type messageResponse struct {
	Message string `json:"message"`
}

// NewHandler builds the root handler with API routes, embedded static
// assets, and shared middleware.
func NewHandler(roster Roster, logger *log.Logger) http.Handler {
	if roster == nil {
		roster = registry.New()
	}
	if logger == nil {
		logger = log.Default()
	}
	routes := &api{roster: roster}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", routes.handleRoot)
	mux.HandleFunc("GET /activities", routes.handleListActivities)
	mux.HandleFunc("POST /activities/{name}/signup", routes.handleSignup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", routes.handleUnregister)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))
	return httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.TraceContext(),
		observability.RequestLogger(logger),
	)
}

type api struct {
	roster Roster
}

func (a *api) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (a *api) handleListActivities(w http.ResponseWriter, _ *http.Request) {
	activities := a.roster.List()
	payload := make(map[string]activityDetail, len(activities))
	for name, act := range activities {
		payload[name] = newActivityDetail(act)
	}
	_ = httpx.WriteJSON(w, http.StatusOK, payload)
}

func (a *api) handleSignup(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	email, err := activity.NormalizeEmail(r.URL.Query().Get("email"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := a.roster.Signup(name, email); err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, name),
	})
}

func (a *api) handleUnregister(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.PathValue("name"))
	email, err := activity.NormalizeEmail(r.URL.Query().Get("email"))
	if err != nil {
		httpx.WriteError(w, err)
		return
	}
	if err := a.roster.Unregister(name, email); err != nil {
		httpx.WriteError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, name),
	})
}

func newActivityDetail(act activity.Activity) activityDetail {
	participants := act.Participants
	if participants == nil {
		// Keep empty rosters as [] on the wire, never null.
		participants = []string{}
	}
	return activityDetail{
		Description:     act.Description,
		Schedule:        act.Schedule,
		MaxParticipants: act.MaxParticipants,
		Participants:    participants,
	}
}
