package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"media-service/internal/config"
	"media-service/internal/event"
	"media-service/internal/middleware"
	"media-service/internal/scoring"
	"media-service/internal/service"
	"media-service/internal/share"
	"media-service/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	attemptsStarted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playground_attempts_started_total",
		Help: "Playground attempts started, by test.",
	}, []string{"test_id"})

	attemptsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playground_attempts_completed_total",
		Help: "Playground attempts scored successfully, by test and result band.",
	}, []string{"test_id", "band"})

	resultShares = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "playground_result_shares_total",
		Help: "Share links and report downloads generated, by format.",
	}, []string{"format"})
)

type PlaygroundHandler struct {
	Service   *service.PlaygroundService
	Publisher *event.AnalyticsPublisher
}

func NewPlaygroundHandler(s *service.PlaygroundService, pub *event.AnalyticsPublisher) *PlaygroundHandler {
	return &PlaygroundHandler{Service: s, Publisher: pub}
}

func (h *PlaygroundHandler) publish(eventType string, payload interface{}) {
	if h.Publisher == nil {
		return
	}
	_ = h.Publisher.Publish(eventType, payload)
}

func (h *PlaygroundHandler) ListTests(c *gin.Context) {
	utils.SuccessResponse(c, "playground tests", h.Service.ListTests())
}

// GetTest serves the public definition: prompts and choice texts only,
// never scoring weights or band tables.
func (h *PlaygroundHandler) GetTest(c *gin.Context) {
	test, err := h.Service.DescribeTest(c.Param("testId"))
	if err != nil {
		utils.NotFoundResponse(c, "Test not found")
		return
	}
	utils.SuccessResponse(c, "playground test", test)
}

func (h *PlaygroundHandler) StartAttempt(c *gin.Context) {
	userID := middleware.UserID(c)
	testID := c.Param("testId")

	attempt, err := h.Service.StartAttempt(context.Background(), userID, testID)
	if err != nil {
		utils.BadRequestResponse(c, "Failed to start attempt", err)
		return
	}

	attemptsStarted.WithLabelValues(testID).Inc()
	h.publish("playground.attempt.started", map[string]interface{}{
		"user_id": userID,
		"test_id": testID,
	})
	utils.CreatedResponse(c, "attempt started", attempt)
}

func (h *PlaygroundHandler) GetAttempt(c *gin.Context) {
	attempt, err := h.Service.GetAttempt(context.Background(), middleware.UserID(c), c.Param("testId"))
	if err != nil {
		utils.NotFoundResponse(c, "No attempt found")
		return
	}
	utils.SuccessResponse(c, "attempt", attempt)
}

func (h *PlaygroundHandler) RecordAnswer(c *gin.Context) {
	var req struct {
		QuestionID string `json:"question_id" binding:"required"`
		Choice     int    `json:"choice" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request format", err)
		return
	}

	attempt, err := h.Service.RecordAnswer(context.Background(), middleware.UserID(c), c.Param("testId"), req.QuestionID, req.Choice)
	if err != nil {
		utils.BadRequestResponse(c, "Failed to record answer", err)
		return
	}
	utils.SuccessResponse(c, "answer recorded", attempt)
}

func (h *PlaygroundHandler) NextQuestion(c *gin.Context) {
	question, done, err := h.Service.NextQuestion(context.Background(), middleware.UserID(c), c.Param("testId"))
	if err != nil {
		utils.BadRequestResponse(c, "Failed to load next question", err)
		return
	}
	utils.SuccessResponse(c, "next question", gin.H{
		"question": question,
		"done":     done,
	})
}

// SubmitAttempt scores the whole attempt at once. An incomplete attempt is a
// user error and reports which questions are still open; a questionnaire
// defect is a server error.
func (h *PlaygroundHandler) SubmitAttempt(c *gin.Context) {
	userID := middleware.UserID(c)
	testID := c.Param("testId")

	attempt, err := h.Service.SubmitAttempt(context.Background(), userID, testID)
	if err != nil {
		var incomplete *scoring.IncompleteAttemptError
		var invalid *scoring.InvalidAnswerError
		switch {
		case errors.As(err, &incomplete):
			c.JSON(http.StatusBadRequest, utils.APIResponse{
				Success: false,
				Message: "Attempt is incomplete",
				Data:    gin.H{"missing_question_ids": incomplete.MissingIDs},
				Error:   err.Error(),
			})
		case errors.As(err, &invalid):
			utils.BadRequestResponse(c, "Attempt contains an invalid answer", err)
		default:
			var degenerate *scoring.DegenerateQuestionnaireError
			var noBand *scoring.NoMatchingBandError
			if errors.As(err, &degenerate) || errors.As(err, &noBand) {
				utils.InternalErrorResponse(c, "Test is misconfigured", err)
			} else {
				utils.BadRequestResponse(c, "Failed to submit attempt", err)
			}
		}
		return
	}

	attemptsCompleted.WithLabelValues(testID, attempt.Result.Band.Label).Inc()
	h.publish("playground.attempt.completed", map[string]interface{}{
		"user_id":    userID,
		"test_id":    testID,
		"band":       attempt.Result.Band.Label,
		"percentage": attempt.Result.Percentage,
	})
	utils.SuccessResponse(c, "attempt scored", attempt)
}

func (h *PlaygroundHandler) GetResult(c *gin.Context) {
	attempt, err := h.Service.GetResult(context.Background(), middleware.UserID(c), c.Param("testId"))
	if err != nil {
		utils.NotFoundResponse(c, "No completed result found")
		return
	}
	utils.SuccessResponse(c, "result", attempt)
}

func (h *PlaygroundHandler) ListResults(c *gin.Context) {
	results, err := h.Service.ListResults(context.Background(), middleware.UserID(c))
	if err != nil {
		utils.InternalErrorResponse(c, "Failed to list results", err)
		return
	}
	utils.SuccessResponse(c, "results", results)
}

func (h *PlaygroundHandler) ResetAttempt(c *gin.Context) {
	if err := h.Service.ResetAttempt(context.Background(), middleware.UserID(c), c.Param("testId")); err != nil {
		utils.InternalErrorResponse(c, "Failed to reset attempt", err)
		return
	}
	utils.SuccessResponse(c, "attempt reset", nil)
}

// ShareResult returns the public link for a completed result.
func (h *PlaygroundHandler) ShareResult(c *gin.Context) {
	testID := c.Param("testId")
	attempt, err := h.Service.GetResult(context.Background(), middleware.UserID(c), testID)
	if err != nil {
		utils.NotFoundResponse(c, "No completed result found")
		return
	}

	resultShares.WithLabelValues("link").Inc()
	h.publish("playground.result.shared", map[string]interface{}{
		"test_id": testID,
		"band":    attempt.Result.Band.Label,
	})
	utils.SuccessResponse(c, "share link", gin.H{
		"url": share.ShareURL(config.AppConfig.ShareBaseURL, testID, attempt.Result),
	})
}

// DownloadReport serves the plain-text result summary as an attachment.
func (h *PlaygroundHandler) DownloadReport(c *gin.Context) {
	testID := c.Param("testId")
	attempt, err := h.Service.GetResult(context.Background(), middleware.UserID(c), testID)
	if err != nil {
		utils.NotFoundResponse(c, "No completed result found")
		return
	}
	test, err := h.Service.GetTest(testID)
	if err != nil {
		utils.NotFoundResponse(c, "Test not found")
		return
	}

	resultShares.WithLabelValues("text").Inc()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-result.txt", testID))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(share.TextReport(test, attempt.Result)))
}
