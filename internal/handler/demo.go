package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tsegaye25/portfolio-api/internal/dashboard"
	"github.com/tsegaye25/portfolio-api/internal/session"
	"github.com/tsegaye25/portfolio-api/internal/store"
)

// DemoHandler exposes the store-backed demo layer over /demo: the
// session manager with its credential directory, and the dashboard
// message/project managers.  It runs entirely on the local key-value
// store; the database-backed API is untouched by anything here.
type DemoHandler struct {
	Sessions *session.Manager
	Messages *dashboard.Messages
	Projects *dashboard.Projects
}

// NewDemoHandler builds the demo layer over one store.  The manager
// restores any persisted session immediately so the first request
// already sees a settled state.
func NewDemoHandler(s store.Store) *DemoHandler {
	m := session.NewManager(s)
	m.Bootstrap()
	return &DemoHandler{
		Sessions: m,
		Messages: dashboard.NewMessages(s, nil),
		Projects: dashboard.NewProjects(s, nil),
	}
}

// sessionDTO is the session state as served to clients, including
// the route guard's verdict for the admin area.
type sessionDTO struct {
	Authenticated bool              `json:"authenticated"`
	User          *session.UserInfo `json:"user,omitempty"`
	ProfileImage  string            `json:"profileImage,omitempty"`
	Token         string            `json:"token,omitempty"`
	Loading       bool              `json:"loading"`
	Error         string            `json:"error,omitempty"`
	Guard         string            `json:"guard"`
}

func toSessionDTO(st session.State) sessionDTO {
	return sessionDTO{
		Authenticated: st.Authenticated,
		User:          st.User,
		ProfileImage:  st.ProfileImage,
		Token:         st.Token,
		Loading:       st.Loading,
		Error:         st.Err,
		Guard:         session.Guard(st).String(),
	}
}

// RequireSession is the HTTP face of the route guard: admin-side demo
// routes are reachable only while the guard allows them.
func (h *DemoHandler) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		switch session.Guard(h.Sessions.Get()) {
		case session.DecisionAllow:
			return next(c)
		case session.DecisionLoading:
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"guard": "loading"})
		default:
			return c.JSON(http.StatusUnauthorized, echo.Map{"guard": "redirect"})
		}
	}
}

// GetSession returns the current session snapshot.
func (h *DemoHandler) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, toSessionDTO(h.Sessions.Get()))
}

type demoLoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type demoRegisterReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type demoUserUpdateReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type demoImageReq struct {
	Image string `json:"image"`
}

// Login runs the credential check; the response body carries the
// resulting state either way, with the error message on failure.
func (h *DemoHandler) Login(c echo.Context) error {
	var req demoLoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	if !h.Sessions.Login(req.Email, req.Password) {
		return c.JSON(http.StatusBadRequest, toSessionDTO(h.Sessions.Get()))
	}
	return c.JSON(http.StatusOK, toSessionDTO(h.Sessions.Get()))
}

// Register creates a demo account and starts its session.
func (h *DemoHandler) Register(c echo.Context) error {
	var req demoRegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	if !h.Sessions.Register(req.Name, req.Email, req.Password) {
		return c.JSON(http.StatusBadRequest, toSessionDTO(h.Sessions.Get()))
	}
	return c.JSON(http.StatusOK, toSessionDTO(h.Sessions.Get()))
}

// Logout clears the session; idempotent.
func (h *DemoHandler) Logout(c echo.Context) error {
	h.Sessions.Logout()
	return c.JSON(http.StatusOK, toSessionDTO(h.Sessions.Get()))
}

// UpdateUser merges partial profile fields into the session user.
func (h *DemoHandler) UpdateUser(c echo.Context) error {
	var req demoUserUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	if !h.Sessions.UpdateUser(session.UserUpdate(req)) {
		return c.JSON(http.StatusBadRequest, toSessionDTO(h.Sessions.Get()))
	}
	return c.JSON(http.StatusOK, toSessionDTO(h.Sessions.Get()))
}

// UpdateProfileImage stores the image data for the session user.
func (h *DemoHandler) UpdateProfileImage(c echo.Context) error {
	var req demoImageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	h.Sessions.UpdateProfileImage(req.Image)
	return c.JSON(http.StatusOK, toSessionDTO(h.Sessions.Get()))
}

// RemoveProfileImage clears the stored image.
func (h *DemoHandler) RemoveProfileImage(c echo.Context) error {
	h.Sessions.RemoveProfileImage()
	return c.JSON(http.StatusOK, toSessionDTO(h.Sessions.Get()))
}

// ListMessages returns the message collection plus reply threads
// (admin side).
func (h *DemoHandler) ListMessages(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"messages": h.Messages.List(),
		"replies":  h.Messages.Replies(),
	})
}

// SubmitMessage is the public contact-form path: it appends the
// submission into the message collection.
func (h *DemoHandler) SubmitMessage(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil || len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	rec, err := h.Messages.Add(fields)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusCreated, rec)
}

// DeleteMessage removes a message; its reply thread stays behind.
// Unknown ids are a no-op, matching the collection semantics.
func (h *DemoHandler) DeleteMessage(c echo.Context) error {
	if err := h.Messages.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Message removed"})
}

type demoReplyReq struct {
	Text string `json:"text"`
}

// ReplyMessage threads an admin reply under a message id.
func (h *DemoHandler) ReplyMessage(c echo.Context) error {
	var req demoReplyReq
	if err := c.Bind(&req); err != nil || req.Text == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Reply text is required"})
	}
	rep, err := h.Messages.Reply(c.Param("id"), req.Text)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusCreated, rep)
}

// ListProjects returns the store-backed project records, seeding the
// sample set on first read.
func (h *DemoHandler) ListProjects(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Projects.List())
}

// AddProject prepends a new project record.
func (h *DemoHandler) AddProject(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil || len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	rec, err := h.Projects.Add(fields)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusCreated, rec)
}

// UpdateProject merges fields into an existing record.
func (h *DemoHandler) UpdateProject(c echo.Context) error {
	var fields map[string]any
	if err := c.Bind(&fields); err != nil || len(fields) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	rec, ok := h.Projects.Update(c.Param("id"), fields)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"msg": "Project not found"})
	}
	return c.JSON(http.StatusOK, rec)
}

// DeleteProject removes a record by id; unknown ids are a no-op.
func (h *DemoHandler) DeleteProject(c echo.Context) error {
	if err := h.Projects.Delete(c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Project removed"})
}
