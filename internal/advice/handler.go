package advice

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shrvya4/Glucose-Guardian/internal/llm"
)

// Handler answers one-off glucose management questions with brief,
// practical advice.
type Handler struct {
	client llm.Client
}

func NewHandler(client llm.Client) *Handler {
	return &Handler{client: client}
}

// --------------------------------------------------
// POST /advice
// --------------------------------------------------
func (h *Handler) Ask(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}

	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Question) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	answer, err := h.client.Generate(c.Request.Context(), llm.BuildAdvicePrompt(req.Question))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "advice service unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"advice": strings.TrimSpace(answer)})
}
