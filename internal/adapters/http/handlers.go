package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"pointsboard/internal/adapters/http/middleware"
	"pointsboard/internal/application/orchestrators"
	"pointsboard/internal/application/projections"
	"pointsboard/internal/domain/page"
	"pointsboard/internal/domain/student"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// PerfWindow is how far back GET /admin/perf looks by default.
const PerfWindow = 15 * time.Minute

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in activity text is omitted (WithUnsafe is NOT set).
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

var templateFuncs = template.FuncMap{
	"renderMarkdown": func(md string) template.HTML {
		var buf bytes.Buffer
		if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
			return template.HTML(template.HTMLEscapeString(md))
		}
		return template.HTML(buf.String())
	},
	"add": func(a, b int) int { return a + b },
}

var pageTitles = map[string]string{
	page.Login:     "Login",
	page.Student:   "Student Dashboard",
	page.Mentor:    "Mentor Dashboard",
	page.Floorwing: "Floor Wing Dashboard",
	page.Admin:     "Admin Dashboard",
	"blank":        "Points Board",
}

// pageData is what every template receives.
type pageData struct {
	Title     string
	Page      string
	Role      string
	Roles     []string
	CSRFField template.HTML
	Error     string
	Form      map[string]string
	Data      any
}

// studentPage pairs the dashboard with the roster used by the student picker.
type studentPage struct {
	Dashboard projections.StudentDashboardResult
	Roster    []student.Student
}

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("json_encode_failed", "error", err.Error())
	}
}

// render executes the named page template inside the layout.
// Output is buffered so a template failure never leaves a half-written page.
func (srv *Server) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	tpl, ok := srv.templates[name]
	if !ok {
		internalError(w, errors.New("no template for page "+name))
		return
	}

	data.Title = pageTitles[name]
	data.Page = name
	data.Roles = page.Roles
	data.CSRFField = csrf.TemplateField(r)
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		data.Role = sess.Role
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// handleHealthz handles GET /healthz
func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// handlePerf handles GET /admin/perf; ?minutes= narrows or widens the window.
func (srv *Server) handlePerf(w http.ResponseWriter, r *http.Request) {
	if srv.collector == nil {
		http.Error(w, "timing disabled", http.StatusNotFound)
		return
	}
	window := PerfWindow
	if raw := r.URL.Query().Get("minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes <= 0 {
			http.Error(w, "minutes must be a positive whole number", http.StatusBadRequest)
			return
		}
		window = time.Duration(minutes) * time.Minute
	}
	writeJSON(w, http.StatusOK, srv.collector.Snapshot(timeNow().Add(-window), 10))
}

// handlePage handles GET for every page token, with or without a ".html" suffix.
// Unknown single-segment tokens render the bare layout.
func (srv *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.URL.Path, "/")
	if strings.Contains(token, "/") {
		http.NotFound(w, r)
		return
	}

	identity, ok := page.Resolve(token)
	if !ok {
		srv.render(w, r, http.StatusOK, "blank", pageData{})
		return
	}

	switch identity {
	case page.Login:
		srv.render(w, r, http.StatusOK, page.Login, pageData{})
	case page.Student:
		srv.showStudent(w, r)
	case page.Mentor:
		srv.showMentor(w, r, http.StatusOK, pageData{})
	case page.Floorwing:
		srv.showFloorwing(w, r)
	case page.Admin:
		srv.showAdmin(w, r, http.StatusOK, pageData{})
	}
}

func (srv *Server) rosterDeps() projections.GetRosterDeps {
	return projections.GetRosterDeps{StudentStore: srv.stores.StudentStore}
}

// showStudent renders the student dashboard; ?id= selects the student.
func (srv *Server) showStudent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := projections.GetStudentDashboardQuery{}
	if raw := r.URL.Query().Get("id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			http.Error(w, "student id must be a positive whole number", http.StatusBadRequest)
			return
		}
		query.StudentID = id
	}

	deps := projections.GetStudentDashboardDeps{
		StudentStore:  srv.stores.StudentStore,
		ActivityStore: srv.stores.ActivityStore,
		Milestones:    srv.milestones,
		Badges:        srv.badges,
	}
	result, err := projections.QueryGetStudentDashboard(ctx, query, deps)
	status := http.StatusOK
	data := pageData{}
	if errors.Is(err, student.ErrNotFound) {
		status = http.StatusNotFound
		data.Error = err.Error()
	} else if err != nil {
		internalError(w, err)
		return
	}

	roster, err := projections.QueryGetMentorDashboard(ctx, srv.rosterDeps())
	if err != nil {
		internalError(w, err)
		return
	}

	if wantsJSON(r) {
		if status != http.StatusOK {
			writeJSON(w, status, map[string]string{"error": data.Error})
			return
		}
		writeJSON(w, status, result)
		return
	}
	data.Data = studentPage{Dashboard: result, Roster: roster.Students}
	srv.render(w, r, status, page.Student, data)
}

func (srv *Server) showMentor(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	result, err := projections.QueryGetMentorDashboard(r.Context(), srv.rosterDeps())
	if err != nil {
		internalError(w, err)
		return
	}
	if wantsJSON(r) && status == http.StatusOK {
		writeJSON(w, status, result)
		return
	}
	data.Data = result
	srv.render(w, r, status, page.Mentor, data)
}

func (srv *Server) showFloorwing(w http.ResponseWriter, r *http.Request) {
	result, err := projections.QueryGetFloorwingDashboard(r.Context(), srv.rosterDeps())
	if err != nil {
		internalError(w, err)
		return
	}
	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, result)
		return
	}
	srv.render(w, r, http.StatusOK, page.Floorwing, pageData{Data: result})
}

func (srv *Server) showAdmin(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	result, err := projections.QueryGetAdminDashboard(r.Context(), srv.rosterDeps())
	if err != nil {
		internalError(w, err)
		return
	}
	if wantsJSON(r) && status == http.StatusOK {
		writeJSON(w, status, result)
		return
	}
	data.Data = result
	srv.render(w, r, status, page.Admin, data)
}

// mutationFailed maps a mutation error to its status and reports whether it was a client error.
func mutationFailed(err error) (int, bool) {
	switch {
	case errors.Is(err, student.ErrInvalidInput):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, student.ErrNotFound):
		return http.StatusNotFound, true
	}
	return http.StatusInternalServerError, false
}

// handleLogin handles POST /login: remembers the chosen role and opens its dashboard.
func (srv *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	role := strings.TrimSpace(r.FormValue("role"))
	if !page.IsRole(role) {
		srv.render(w, r, http.StatusUnprocessableEntity, page.Login, pageData{Error: "Please choose a role."})
		return
	}

	if token := middleware.SessionToken(r); token != "" {
		srv.sessions.Delete(token)
	}
	middleware.SetSessionCookie(w, srv.sessions.Create(role))
	slog.Info("session_event", "event", "role_selected", "role", role)
	http.Redirect(w, r, "/"+role, http.StatusSeeOther)
}

// handleLogout handles POST /logout
func (srv *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token := middleware.SessionToken(r); token != "" {
		srv.sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// handleAssignPoints handles POST /mentor/points
func (srv *Server) handleAssignPoints(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := map[string]string{
		"student_id": r.FormValue("student_id"),
		"points":     r.FormValue("points"),
	}
	id, err := strconv.Atoi(strings.TrimSpace(form["student_id"]))
	if err != nil {
		const msg = "Please choose a student."
		if wantsJSON(r) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": msg})
			return
		}
		srv.showMentor(w, r, http.StatusUnprocessableEntity, pageData{Error: msg, Form: form})
		return
	}

	input := orchestrators.AssignPointsInput{StudentID: id, RawPoints: form["points"]}
	deps := orchestrators.AssignPointsDeps{
		StudentStore:  srv.stores.StudentStore,
		ActivityStore: srv.stores.ActivityStore,
	}
	updated, err := orchestrators.ExecuteAssignPoints(r.Context(), input, deps)
	if err != nil {
		status, client := mutationFailed(err)
		if !client {
			internalError(w, err)
			return
		}
		if wantsJSON(r) {
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}
		srv.showMentor(w, r, status, pageData{Error: err.Error(), Form: form})
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, updated)
		return
	}
	http.Redirect(w, r, "/mentor", http.StatusSeeOther)
}

// handleCreateStudent handles POST /admin/students
func (srv *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	form := map[string]string{
		"name":           r.FormValue("name"),
		"initial_points": r.FormValue("initial_points"),
	}
	input := orchestrators.CreateStudentInput{RawName: form["name"], RawPoints: form["initial_points"]}
	deps := orchestrators.CreateStudentDeps{StudentStore: srv.stores.StudentStore}

	created, err := orchestrators.ExecuteCreateStudent(r.Context(), input, deps)
	if err != nil {
		status, client := mutationFailed(err)
		if !client {
			internalError(w, err)
			return
		}
		if wantsJSON(r) {
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}
		srv.showAdmin(w, r, status, pageData{Error: err.Error(), Form: form})
		return
	}

	if wantsJSON(r) {
		writeJSON(w, http.StatusCreated, created)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
