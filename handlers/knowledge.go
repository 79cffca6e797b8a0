package handlers

import (
	"errors"
	"net/http"

	"innocurve/database/repository/knowledge"
	"innocurve/models"
	"innocurve/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// KnowledgeHandler serves the admin endpoints for curating knowledge entries.
type KnowledgeHandler struct {
	Repo knowledgeRepo.KnowledgeRepository
}

func NewKnowledgeHandler(repo knowledgeRepo.KnowledgeRepository) *KnowledgeHandler {
	return &KnowledgeHandler{Repo: repo}
}

// KnowledgeEntryRequest is the admin payload for creating or updating an entry.
type KnowledgeEntryRequest struct {
	Question string   `json:"question" binding:"required"`
	Answer   string   `json:"answer" binding:"required"`
	Keywords []string `json:"keywords"`
}

// validateAnswer enforces the store invariant: the answer must resolve to a
// non-empty display string after per-language unpacking.
func validateAnswer(answer string) bool {
	entry := models.KnowledgeEntry{Answer: answer}
	entry.Normalize()
	return entry.AnswerFor(models.DefaultLanguage) != ""
}

func (h *KnowledgeHandler) ListHandler(c *gin.Context) {
	entries, err := h.Repo.GetAll(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list knowledge entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

func (h *KnowledgeHandler) CreateHandler(c *gin.Context) {
	var req KnowledgeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if !validateAnswer(req.Answer) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer must resolve to a non-empty display string"})
		return
	}

	id, err := h.Repo.Create(c.Request.Context(), models.KnowledgeEntry{
		Question: req.Question,
		Answer:   req.Answer,
		Keywords: req.Keywords,
	})
	if err != nil {
		utils.GetLogger().Error("failed to create knowledge entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create entry"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *KnowledgeHandler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var req KnowledgeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if !validateAnswer(req.Answer) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "answer must resolve to a non-empty display string"})
		return
	}

	err := h.Repo.Update(c.Request.Context(), models.KnowledgeEntry{
		ID:       id,
		Question: req.Question,
		Answer:   req.Answer,
		Keywords: req.Keywords,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	if err != nil {
		utils.GetLogger().Error("failed to update knowledge entry",
			zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *KnowledgeHandler) DeleteHandler(c *gin.Context) {
	id := c.Param("id")

	err := h.Repo.Delete(c.Request.Context(), id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
		return
	}
	if err != nil {
		utils.GetLogger().Error("failed to delete knowledge entry",
			zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete entry"})
		return
	}
	c.Status(http.StatusNoContent)
}
