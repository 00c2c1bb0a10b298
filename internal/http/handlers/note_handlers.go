package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you/notehub/domain"
	"github.com/you/notehub/internal/http/middleware"
)

// NoteHandlers handles note CRUD requests. Every operation is scoped to the
// user the auth middleware puts in the context.
type NoteHandlers struct {
	noteSvc domain.NoteService
}

// NewNoteHandlers creates new note handlers
func NewNoteHandlers(noteSvc domain.NoteService) *NoteHandlers {
	return &NoteHandlers{noteSvc: noteSvc}
}

// NoteRequest represents a note create/update body
type NoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
	Tag     string `json:"tag"`
}

func currentUserID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return 0, false
	}
	return v.(uint), true
}

func noteID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "Invalid note id")
		return 0, false
	}
	return uint(id), true
}

// Create handles note creation
func (h *NoteHandlers) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	note, err := h.noteSvc.Create(c.Request.Context(), userID, req.Title, req.Content, req.Tag)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, note)
}

// List handles listing the user's notes, optionally filtered by tag and a
// title/content search term.
func (h *NoteHandlers) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	filter := domain.NoteFilter{
		Search: c.Query("search"),
		Tag:    c.Query("tag"),
	}

	notes, err := h.noteSvc.List(c.Request.Context(), userID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notes)
}

// Get handles fetching a single note
func (h *NoteHandlers) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}

	note, err := h.noteSvc.Get(c.Request.Context(), userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// Update handles updating a note
func (h *NoteHandlers) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}

	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	note, err := h.noteSvc.Update(c.Request.Context(), userID, id, req.Title, req.Content, req.Tag)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// Delete handles deleting a note
func (h *NoteHandlers) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := noteID(c)
	if !ok {
		return
	}

	if err := h.noteSvc.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note deleted"})
}
