package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/meltemi-labs/reviewboost/internal/llm"
	"github.com/meltemi-labs/reviewboost/internal/review"
	"github.com/meltemi-labs/reviewboost/internal/rewrite"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleRewrite(c *gin.Context) {
	var payload review.Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	result, err := s.rewriter.Rewrite(c.Request.Context(), payload)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info("review rewritten",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("script", result.Script),
		zap.Int("original_length", result.OriginalLength),
		zap.Int("improved_length", result.ImprovedLength),
	)

	c.JSON(http.StatusOK, gin.H{"improved": result.ImprovedText})
}

// writeError translates a pipeline failure into an HTTP status and a JSON
// body with a stable error string. Stack traces never reach the response;
// development mode may attach a details field on 5xx answers.
func (s *Server) writeError(c *gin.Context, err error) {
	var perr *rewrite.Error
	if !errors.As(err, &perr) {
		// Client went away; nothing useful to send.
		if errors.Is(err, context.Canceled) {
			c.Status(http.StatusRequestTimeout)
			return
		}
		perr = &rewrite.Error{Code: rewrite.CodeUpstreamUnavailable, Message: "rewrite failed, please try again later"}
	}

	status := statusFor(perr)

	s.logger.Warn("rewrite failed",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.String("code", string(perr.Code)),
		zap.Int("status", status),
		zap.Error(err),
	)

	body := gin.H{"error": perr.Message}
	if s.cfg.Development() && status >= http.StatusInternalServerError {
		if cause := errors.Unwrap(perr); cause != nil {
			body["details"] = cause.Error()
		}
	}
	c.JSON(status, body)
}

func statusFor(perr *rewrite.Error) int {
	switch perr.Code {
	case rewrite.CodeInvalidInput:
		return http.StatusBadRequest
	case rewrite.CodeConfiguration:
		return http.StatusInternalServerError
	case rewrite.CodeTimeout:
		return http.StatusGatewayTimeout
	case rewrite.CodeUpstreamUnavailable, rewrite.CodeEmptyGeneration:
		return http.StatusBadGateway
	case rewrite.CodeUpstreamRejected:
		return rejectionStatus(perr)
	default:
		return http.StatusInternalServerError
	}
}

// rejectionStatus maps upstream sub-codes onto client-facing statuses:
// quota and rate errors are retryable after a delay, auth errors are not.
func rejectionStatus(perr *rewrite.Error) int {
	var rej *llm.RejectionError
	if errors.As(perr, &rej) {
		switch rej.Code {
		case "insufficient_quota", "rate_limit_exceeded":
			return http.StatusTooManyRequests
		case "invalid_api_key":
			return http.StatusUnauthorized
		}
		switch rej.StatusCode {
		case http.StatusUnauthorized, http.StatusTooManyRequests:
			return rej.StatusCode
		}
	}
	return http.StatusBadGateway
}
