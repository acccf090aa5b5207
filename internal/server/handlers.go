package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/edostudy/internal/content"
	"github.com/abhisek/edostudy/internal/evaluate"
)

// ContentStore is the read side of the study content.
type ContentStore interface {
	ListFlashcards(ctx context.Context, f content.Filter) ([]content.Flashcard, error)
	ListQuizQuestions(ctx context.Context, f content.QuizFilter) ([]content.QuizQuestion, error)
	ListPublicPrompts(ctx context.Context, f content.Filter) ([]content.PublicPrompt, error)
	PromptByID(ctx context.Context, id string) (*content.ExplainPrompt, error)
	QuizQuestionByID(ctx context.Context, id string) (*content.QuizQuestion, error)
	Categories(ctx context.Context) []string
	Stats(ctx context.Context) content.Stats
}

// Evaluator grades a free-text answer.
type Evaluator interface {
	Evaluate(ctx context.Context, prompt string, rubric []string, answer string) (*evaluate.Result, error)
}

type handler struct {
	content   ContentStore
	evaluator Evaluator
}

func filterFrom(c *gin.Context) content.Filter {
	return content.Filter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}
}

func (h *handler) health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func (h *handler) listFlashcards(c *gin.Context) {
	cards, err := h.content.ListFlashcards(c.Request.Context(), filterFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	respondOK(c, cards)
}

func (h *handler) listQuizQuestions(c *gin.Context) {
	f := content.QuizFilter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
	}
	if raw := strings.TrimSpace(c.Query("count")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, http.StatusBadRequest, CodeInvalidRequest, "count must be a non-negative integer")
			return
		}
		f.Count = n
	}

	questions, err := h.content.ListQuizQuestions(c.Request.Context(), f)
	if err != nil {
		writeError(c, err)
		return
	}
	respondOK(c, questions)
}

type checkRequest struct {
	QuestionID string `json:"question_id" binding:"required"`
	Answer     string `json:"answer"`
}

func (h *handler) checkQuizAnswer(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}
	q, err := h.content.QuizQuestionByID(c.Request.Context(), req.QuestionID)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "Question not found")
			return
		}
		writeError(c, err)
		return
	}
	respondOK(c, content.CheckQuizAnswer(*q, req.Answer))
}

func (h *handler) listPrompts(c *gin.Context) {
	prompts, err := h.content.ListPublicPrompts(c.Request.Context(), filterFrom(c))
	if err != nil {
		writeError(c, err)
		return
	}
	respondOK(c, prompts)
}

type evaluateRequest struct {
	PromptID      string `json:"prompt_id"`
	StudentAnswer string `json:"student_answer"`
}

func (h *handler) evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, err.Error())
		return
	}

	ctx := c.Request.Context()
	prompt, err := h.content.PromptByID(ctx, req.PromptID)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			respondError(c, http.StatusNotFound, CodeNotFound, "Prompt not found")
			return
		}
		writeError(c, err)
		return
	}
	if strings.TrimSpace(req.StudentAnswer) == "" {
		respondError(c, http.StatusBadRequest, CodeInvalidRequest, "Answer cannot be empty")
		return
	}

	result, err := h.evaluator.Evaluate(ctx, prompt.Prompt, prompt.Rubric, req.StudentAnswer)
	if err != nil {
		writeError(c, err)
		return
	}
	respondOK(c, result)
}

func (h *handler) categories(c *gin.Context) {
	respondOK(c, h.content.Categories(c.Request.Context()))
}

func (h *handler) stats(c *gin.Context) {
	respondOK(c, h.content.Stats(c.Request.Context()))
}
