package handlers

import (
	"net/http"
	"strconv"
	"time"

	"meal_voting_system/internal/apperrors"
	"meal_voting_system/internal/db/models"
	"meal_voting_system/internal/db/repositories"
	"meal_voting_system/internal/pubsub"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SessionManager is the slice of the lifecycle manager the HTTP surface
// drives.
type SessionManager interface {
	Start(groupID, initiatorID int64, proposalDuration time.Duration) (*models.VotingSession, error)
	Propose(sessionID, memberID, mealID int64) (*models.MealProposal, error)
	ConfirmReady(sessionID, memberID int64) (*models.ReadyConfirmation, error)
	Vote(sessionID, voterID, proposalID int64, voteType models.VoteType) (*models.Vote, error)
	ConfirmVotesFinal(sessionID, memberID int64) (*models.VoteConfirmation, error)
	Finalize(sessionID, callerID int64) (*models.VotingSession, error)
	Cancel(sessionID, callerID int64) (*models.VotingSession, error)
}

// HTTPHandler holds the dependencies for the HTTP and websocket handlers.
type HTTPHandler struct {
	manager                 SessionManager
	snapshots               repositories.SnapshotRepository
	publisher               *pubsub.Publisher
	defaultProposalDuration time.Duration
	logger                  *zap.SugaredLogger
}

func NewHTTPHandler(
	manager SessionManager,
	snapshots repositories.SnapshotRepository,
	publisher *pubsub.Publisher,
	defaultProposalDuration time.Duration,
	logger *zap.SugaredLogger,
) *HTTPHandler {
	return &HTTPHandler{
		manager:                 manager,
		snapshots:               snapshots,
		publisher:               publisher,
		defaultProposalDuration: defaultProposalDuration,
		logger:                  logger,
	}
}

func (h *HTTPHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/groups/:groupID/sessions", h.StartSession)
	router.GET("/sessions/:sessionID", h.GetSession)
	router.POST("/sessions/:sessionID/proposals", h.Propose)
	router.POST("/sessions/:sessionID/ready", h.ConfirmReady)
	router.POST("/sessions/:sessionID/votes", h.Vote)
	router.POST("/sessions/:sessionID/vote-confirmations", h.ConfirmVotesFinal)
	router.POST("/sessions/:sessionID/finalize", h.Finalize)
	router.POST("/sessions/:sessionID/cancel", h.Cancel)
	router.GET("/ws", h.HandleWS)
}

type startSessionRequest struct {
	InitiatorMemberID       int64 `json:"initiator_member_id" binding:"required"`
	ProposalDurationSeconds int   `json:"proposal_duration_seconds"`
}

func (h *HTTPHandler) StartSession(c *gin.Context) {
	groupID, ok := pathID(c, "groupID")
	if !ok {
		return
	}

	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	duration := h.defaultProposalDuration
	if req.ProposalDurationSeconds > 0 {
		duration = time.Duration(req.ProposalDurationSeconds) * time.Second
	}

	session, err := h.manager.Start(groupID, req.InitiatorMemberID, duration)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (h *HTTPHandler) GetSession(c *gin.Context) {
	sessionID, ok := pathID(c, "sessionID")
	if !ok {
		return
	}

	snapshot, err := h.snapshots.GetSessionSnapshot(sessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

type proposeRequest struct {
	MemberID int64 `json:"member_id" binding:"required"`
	MealID   int64 `json:"meal_id" binding:"required"`
}

func (h *HTTPHandler) Propose(c *gin.Context) {
	sessionID, ok := pathID(c, "sessionID")
	if !ok {
		return
	}

	var req proposeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proposal, err := h.manager.Propose(sessionID, req.MemberID, req.MealID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, proposal)
}

type memberRequest struct {
	MemberID int64 `json:"member_id" binding:"required"`
}

func (h *HTTPHandler) ConfirmReady(c *gin.Context) {
	sessionID, ok := pathID(c, "sessionID")
	if !ok {
		return
	}

	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := h.manager.ConfirmReady(sessionID, req.MemberID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, confirmation)
}

type voteRequest struct {
	MemberID   int64  `json:"member_id" binding:"required"`
	ProposalID int64  `json:"proposal_id" binding:"required"`
	VoteType   string `json:"vote_type"`
}

func (h *HTTPHandler) Vote(c *gin.Context) {
	sessionID, ok := pathID(c, "sessionID")
	if !ok {
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	voteType := models.VoteType(req.VoteType)
	if req.VoteType == "" {
		voteType = models.VoteTypeYes
	}
	if !voteType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown vote type"})
		return
	}

	vote, err := h.manager.Vote(sessionID, req.MemberID, req.ProposalID, voteType)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, vote)
}

func (h *HTTPHandler) ConfirmVotesFinal(c *gin.Context) {
	sessionID, ok := pathID(c, "sessionID")
	if !ok {
		return
	}

	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmation, err := h.manager.ConfirmVotesFinal(sessionID, req.MemberID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, confirmation)
}

func (h *HTTPHandler) Finalize(c *gin.Context) {
	sessionID, ok := pathID(c, "sessionID")
	if !ok {
		return
	}

	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.manager.Finalize(sessionID, req.MemberID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (h *HTTPHandler) Cancel(c *gin.Context) {
	sessionID, ok := pathID(c, "sessionID")
	if !ok {
		return
	}

	var req memberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.manager.Cancel(sessionID, req.MemberID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}

	return id, true
}

func (h *HTTPHandler) writeError(c *gin.Context, err error) {
	var (
		conflict     *apperrors.ConflictError
		duplicate    *apperrors.DuplicateProposalError
		invalidPhase *apperrors.InvalidPhaseError
		forbidden    *apperrors.ForbiddenError
		notFound     *apperrors.NotFoundError
		unknown      *apperrors.UnknownProposalError
	)

	switch {
	case errors.As(err, &conflict), errors.As(err, &duplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &invalidPhase):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.As(err, &forbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &notFound), errors.As(err, &unknown):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.logger.Errorw("internal error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
