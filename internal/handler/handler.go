package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/handler/dto"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type PoolSvc interface {
	List(ctx context.Context, filters domain.PoolFilters) ([]*domain.Pool, error)
	GetByID(ctx context.Context, id int64) (*domain.Pool, error)
	CreatePool(ctx context.Context, in domain.CreatePoolInput) (*domain.Pool, *domain.TxResult, error)
	SetMetadata(ctx context.Context, meta domain.PoolMetadata) (*domain.Pool, error)
	SyncPool(ctx context.Context, id int64) (*domain.Pool, error)
	LoadPools(ctx context.Context) (int, error)
	ListByCreator(ctx context.Context, address string) ([]*domain.Pool, error)
}

type ParticipationSvc interface {
	RecordJoin(ctx context.Context, poolID int64, txHash string) (*domain.Participation, error)
	Claim(ctx context.Context, poolID int64, address string) (*domain.Claim, error)
	ListByUser(ctx context.Context, address string) ([]*domain.Participation, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	Profile(ctx context.Context, address string) (*domain.UserProfile, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	poolService          PoolSvc
	participationService ParticipationSvc
	userService          UserSvc
}

func NewHandler(poolService PoolSvc, participationService ParticipationSvc, userService UserSvc) *Handler {
	return &Handler{
		poolService:          poolService,
		participationService: participationService,
		userService:          userService,
	}
}

// Pools

func (h *Handler) ListPools(c *ginext.Context) {
	var q dto.PoolFilterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	filters := domain.PoolFilters{
		Type:     domain.PoolType(q.Type),
		Status:   domain.PoolStatus(q.Status),
		Category: q.Category,
		Search:   q.Search,
	}
	var err error
	if filters.MinAmount, err = parseOptionalAmount(q.MinAmount); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid min_amount"})
		return
	}
	if filters.MaxAmount, err = parseOptionalAmount(q.MaxAmount); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid max_amount"})
		return
	}

	pools, err := h.poolService.List(c.Request.Context(), filters)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPoolResponses(pools))
}

func (h *Handler) GetPool(c *ginext.Context) {
	id, ok := poolID(c)
	if !ok {
		return
	}

	pool, err := h.poolService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPoolResponse(pool))
}

func (h *Handler) CreatePool(c *ginext.Context) {
	var req dto.CreatePoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	ticketPrice, err := decimal.NewFromString(req.TicketPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticket_price"})
		return
	}
	entryAmount, err := decimal.NewFromString(req.EntryAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid entry_amount"})
		return
	}

	var eventDate time.Time
	if req.EventDate != "" {
		eventDate, err = time.Parse(time.RFC3339, req.EventDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid event_date format, expected RFC3339",
			})
			return
		}
	}

	input := domain.CreatePoolInput{
		EventName:         req.EventName,
		EventDescription:  req.EventDescription,
		EventVenue:        req.EventVenue,
		EventDate:         eventDate,
		EventCategory:     req.EventCategory,
		TicketPrice:       ticketPrice,
		PoolType:          domain.PoolType(req.PoolType),
		EntryAmount:       entryAmount,
		MaxParticipants:   req.MaxParticipants,
		WinnerCount:       req.WinnerCount,
		DaysUntilDeadline: req.DaysUntilDeadline,
	}

	pool, tx, err := h.poolService.CreatePool(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.CreatePoolResponse{
		Pool: dto.ToPoolResponse(pool),
		Tx:   dto.ToTxResponse(tx),
	})
}

func (h *Handler) SetPoolMetadata(c *ginext.Context) {
	id, ok := poolID(c)
	if !ok {
		return
	}

	var req dto.MetadataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected RFC3339",
		})
		return
	}

	pool, err := h.poolService.SetMetadata(c.Request.Context(), domain.PoolMetadata{
		PoolID:      id,
		Description: req.Description,
		Venue:       req.Venue,
		Date:        date,
		Category:    req.Category,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPoolResponse(pool))
}

func (h *Handler) SyncPool(c *ginext.Context) {
	id, ok := poolID(c)
	if !ok {
		return
	}

	pool, err := h.poolService.SyncPool(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPoolResponse(pool))
}

func (h *Handler) SyncAll(c *ginext.Context) {
	loaded, err := h.poolService.LoadPools(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SyncResponse{Loaded: loaded})
}

// Participations

func (h *Handler) JoinPool(c *ginext.Context) {
	id, ok := poolID(c)
	if !ok {
		return
	}

	var req dto.JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.participationService.RecordJoin(c.Request.Context(), id, req.TxHash)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToParticipationResponse(p))
}

func (h *Handler) ClaimTicket(c *ginext.Context) {
	id, ok := poolID(c)
	if !ok {
		return
	}

	var req dto.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	claim, err := h.participationService.Claim(c.Request.Context(), id, req.Address)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ClaimResponse{
		Participation: dto.ToParticipationResponse(claim.Participation),
		Fee:           claim.Fee.String(),
	})
}

func (h *Handler) GetUserParticipations(c *ginext.Context) {
	list, err := h.participationService.ListByUser(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ParticipationResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, dto.ToParticipationResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUserPools(c *ginext.Context) {
	pools, err := h.poolService.ListByCreator(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPoolResponses(pools))
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Address:        req.Address,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Register(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetUser(c *ginext.Context) {
	profile, err := h.userService.Profile(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrPoolNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrParticipationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyJoined),
		errors.Is(err, domain.ErrNotClaimable),
		errors.Is(err, domain.ErrPoolClosed),
		errors.Is(err, domain.ErrTxPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrAddressTaken),
		errors.Is(err, domain.ErrJoinMismatch),
		errors.Is(err, domain.ErrTxFailed),
		errors.Is(err, domain.ErrEventNotEmitted):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrReadOnly):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func poolID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pool id"})
		return 0, false
	}
	return id, true
}

func parseOptionalAmount(v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(v)
}

func toPoolResponses(pools []*domain.Pool) []dto.PoolResponse {
	resp := make([]dto.PoolResponse, 0, len(pools))
	for _, p := range pools {
		resp = append(resp, dto.ToPoolResponse(p))
	}
	return resp
}
