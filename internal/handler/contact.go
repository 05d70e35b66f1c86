package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/tsegaye25/portfolio-api/internal/model"
	"github.com/tsegaye25/portfolio-api/internal/queue"
	"github.com/tsegaye25/portfolio-api/internal/repository"
	queue_publisher "github.com/tsegaye25/portfolio-api/internal/service"
)

// ContactHandler serves the contact form.  Submitting is public;
// reading and deleting messages is admin-only.
type ContactHandler struct {
	Contacts *repository.ContactRepo
}

func NewContactHandler(r *repository.ContactRepo) *ContactHandler {
	return &ContactHandler{Contacts: r}
}

type contactDTO struct {
	ID      uint64    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Subject string    `json:"subject"`
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
}

func toContactDTO(m model.ContactMessage) contactDTO {
	return contactDTO{ID: m.ID, Name: m.Name, Email: m.Email, Subject: m.Subject, Message: m.Message, Date: m.Date}
}

// List returns all messages, newest first (protected).
func (h *ContactHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	msgs, err := h.Contacts.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	out := make([]contactDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toContactDTO(m))
	}
	return c.JSON(http.StatusOK, out)
}

// Create stores a submitted message and publishes a contact.received
// event.  Publishing failures are swallowed: the visitor's message is
// already stored and they get a success either way.
func (h *ContactHandler) Create(c echo.Context) error {
	var d contactDTO
	if err := c.Bind(&d); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "invalid body"})
	}
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Message = strings.TrimSpace(d.Message)
	if d.Name == "" || d.Email == "" || d.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"msg": "Name, email and message are required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	m, err := h.Contacts.Create(ctx, model.ContactMessage{
		Name: d.Name, Email: d.Email, Subject: d.Subject, Message: d.Message,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}

	go func(m model.ContactMessage) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishContactReceived(pubCtx, queue.ContactReceivedEvent{
			EventID:    uuid.NewString(),
			ContactID:  m.ID,
			Name:       m.Name,
			Email:      m.Email,
			Subject:    m.Subject,
			ReceivedAt: m.Date.UTC().Format(time.RFC3339),
		})
	}(m)

	return c.JSON(http.StatusCreated, toContactDTO(m))
}

// Delete removes a message by id (protected).
func (h *ContactHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Contacts.Delete(ctx, idParam(c)); err != nil {
		if err == repository.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"msg": "Message not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"msg": "Server error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Message removed"})
}
