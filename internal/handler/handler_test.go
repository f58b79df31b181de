package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/handler/dto"
	hmocks "github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/handler/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const (
	testAddress = "0x2222222222222222222222222222222222222222"
	testTxHash  = "0x9f1c3a2b4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8"
)

func setupRouter(t *testing.T) (*hmocks.MockPoolSvc, *hmocks.MockParticipationSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	poolSvc := hmocks.NewMockPoolSvc(t)
	participationSvc := hmocks.NewMockParticipationSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(poolSvc, participationSvc, userSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/pools", h.ListPools)
		api.POST("/pools", h.CreatePool)
		api.GET("/pools/:id", h.GetPool)
		api.PUT("/pools/:id/metadata", h.SetPoolMetadata)
		api.POST("/pools/:id/sync", h.SyncPool)
		api.POST("/pools/:id/join", h.JoinPool)
		api.POST("/pools/:id/claim", h.ClaimTicket)
		api.POST("/sync", h.SyncAll)
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:address", h.GetUser)
		api.GET("/users/:address/participations", h.GetUserParticipations)
		api.GET("/users/:address/pools", h.GetUserPools)
	}

	return poolSvc, participationSvc, userSvc, r
}

func testPool(id int64) *domain.Pool {
	return &domain.Pool{
		ID:            id,
		Event:         domain.Event{ID: "1", Name: "Eras Tour", Date: time.Now(), TicketPrice: decimal.NewFromInt(250)},
		Type:          domain.PoolTypeLuckyDraw,
		Status:        domain.PoolStatusActive,
		TargetAmount:  decimal.NewFromInt(250),
		CurrentAmount: decimal.NewFromInt(50),
		EntryAmount:   decimal.NewFromInt(10),
		Deadline:      time.Now().Add(time.Hour),
		CreatedAt:     time.Now(),
		SyncedAt:      time.Now(),
	}
}

func doJSON(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Pools ---

func TestHandler_ListPools_ParsesFilters(t *testing.T) {
	poolSvc, _, _, r := setupRouter(t)

	poolSvc.EXPECT().List(mock.Anything, mock.MatchedBy(func(f domain.PoolFilters) bool {
		return f.Type == domain.PoolTypeLuckyDraw &&
			f.Search == "eras" &&
			f.MinAmount.Equal(decimal.NewFromInt(5)) &&
			f.MaxAmount.IsZero()
	})).Return([]*domain.Pool{testPool(1), testPool(2)}, nil)

	w := doJSON(r, http.MethodGet, "/api/pools?type=LUCKY_DRAW&search=eras&min_amount=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.PoolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, float64(20), resp[0].Progress)
	assert.Equal(t, []string{}, resp[0].Winners)
}

func TestHandler_ListPools_InvalidAmount(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/pools?max_amount=lots", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetPool_Success(t *testing.T) {
	poolSvc, _, _, r := setupRouter(t)

	poolSvc.EXPECT().GetByID(mock.Anything, int64(3)).Return(testPool(3), nil)

	w := doJSON(r, http.MethodGet, "/api/pools/3", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.PoolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "Eras Tour", resp.Event.Name)
	assert.Equal(t, "10", resp.EntryAmount)
}

func TestHandler_GetPool_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/pools/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetPool_NotFound(t *testing.T) {
	poolSvc, _, _, r := setupRouter(t)

	poolSvc.EXPECT().GetByID(mock.Anything, int64(9)).Return(nil, domain.ErrPoolNotFound)

	w := doJSON(r, http.MethodGet, "/api/pools/9", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreatePool_Success(t *testing.T) {
	poolSvc, _, _, r := setupRouter(t)

	poolSvc.EXPECT().CreatePool(mock.Anything, mock.MatchedBy(func(in domain.CreatePoolInput) bool {
		return in.EventName == "Finals" &&
			in.PoolType == domain.PoolTypeLuckyDraw &&
			in.TicketPrice.Equal(decimal.RequireFromString("99.5")) &&
			in.DaysUntilDeadline == 7
	})).Return(testPool(5), &domain.TxResult{Hash: "0xabc", BlockNumber: 12}, nil)

	body, _ := json.Marshal(dto.CreatePoolRequest{
		EventName:         "Finals",
		TicketPrice:       "99.5",
		PoolType:          "LUCKY_DRAW",
		EntryAmount:       "5",
		MaxParticipants:   20,
		DaysUntilDeadline: 7,
	})

	w := doJSON(r, http.MethodPost, "/api/pools", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CreatePoolResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(5), resp.Pool.ID)
	assert.Equal(t, "0xabc", resp.Tx.Hash)
}

func TestHandler_CreatePool_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/pools", []byte(`{"event_name":"x","pool_type":"RAFFLE"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreatePool_InvalidAmount(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"event_name":"x","pool_type":"LUCKY_DRAW","ticket_price":"ten","entry_amount":"1","days_until_deadline":3}`)
	w := doJSON(r, http.MethodPost, "/api/pools", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreatePool_ReadOnly(t *testing.T) {
	poolSvc, _, _, r := setupRouter(t)

	poolSvc.EXPECT().CreatePool(mock.Anything, mock.Anything).Return(nil, nil, domain.ErrReadOnly)

	body := []byte(`{"event_name":"x","pool_type":"LUCKY_DRAW","ticket_price":"10","entry_amount":"1","max_participants":5,"days_until_deadline":3}`)
	w := doJSON(r, http.MethodPost, "/api/pools", body)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_SetPoolMetadata(t *testing.T) {
	poolSvc, _, _, r := setupRouter(t)

	date := time.Date(2027, 1, 10, 20, 0, 0, 0, time.UTC)
	poolSvc.EXPECT().SetMetadata(mock.Anything, domain.PoolMetadata{
		PoolID: 2, Venue: "Wembley", Date: date,
	}).Return(testPool(2), nil)

	w := doJSON(r, http.MethodPut, "/api/pools/2/metadata", []byte(`{"venue":"Wembley","date":"2027-01-10T20:00:00Z"}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetPoolMetadata_InvalidDate(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPut, "/api/pools/2/metadata", []byte(`{"date":"tomorrow"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_SyncAll(t *testing.T) {
	poolSvc, _, _, r := setupRouter(t)

	poolSvc.EXPECT().LoadPools(mock.Anything).Return(4, nil)

	w := doJSON(r, http.MethodPost, "/api/sync", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SyncResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Loaded)
}

func TestHandler_SyncPool_InternalError(t *testing.T) {
	poolSvc, _, _, r := setupRouter(t)

	poolSvc.EXPECT().SyncPool(mock.Anything, int64(1)).Return(nil, errors.New("rpc down"))

	w := doJSON(r, http.MethodPost, "/api/pools/1/sync", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}

// --- Participations ---

func TestHandler_JoinPool_Success(t *testing.T) {
	_, participationSvc, _, r := setupRouter(t)

	participationSvc.EXPECT().RecordJoin(mock.Anything, int64(2), testTxHash).Return(&domain.Participation{
		ID:                "p-1",
		PoolID:            2,
		UserAddress:       testAddress,
		Status:            domain.ParticipationJoined,
		AmountContributed: decimal.NewFromInt(10),
		TokenRewards:      decimal.NewFromInt(1000),
		TxHash:            testTxHash,
		JoinedAt:          time.Now(),
	}, nil)

	body, _ := json.Marshal(dto.JoinRequest{TxHash: testTxHash})
	w := doJSON(r, http.MethodPost, "/api/pools/2/join", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ParticipationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "JOINED", resp.Status)
	assert.Equal(t, "1000", resp.TokenRewards)
}

func TestHandler_JoinPool_AlreadyJoined(t *testing.T) {
	_, participationSvc, _, r := setupRouter(t)

	participationSvc.EXPECT().RecordJoin(mock.Anything, int64(2), testTxHash).Return(nil, domain.ErrAlreadyJoined)

	body, _ := json.Marshal(dto.JoinRequest{TxHash: testTxHash})
	w := doJSON(r, http.MethodPost, "/api/pools/2/join", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_JoinPool_TxNotMined(t *testing.T) {
	_, participationSvc, _, r := setupRouter(t)

	participationSvc.EXPECT().RecordJoin(mock.Anything, int64(2), testTxHash).
		Return(nil, fmt.Errorf("read join receipt: %w", domain.ErrTxPending))

	body, _ := json.Marshal(dto.JoinRequest{TxHash: testTxHash})
	w := doJSON(r, http.MethodPost, "/api/pools/2/join", body)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "not yet mined")
}

func TestHandler_JoinPool_Mismatch(t *testing.T) {
	_, participationSvc, _, r := setupRouter(t)

	participationSvc.EXPECT().RecordJoin(mock.Anything, int64(2), testTxHash).Return(nil, domain.ErrJoinMismatch)

	body, _ := json.Marshal(dto.JoinRequest{TxHash: testTxHash})
	w := doJSON(r, http.MethodPost, "/api/pools/2/join", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ClaimTicket(t *testing.T) {
	_, participationSvc, _, r := setupRouter(t)

	claimed := time.Now()
	participationSvc.EXPECT().Claim(mock.Anything, int64(2), testAddress).Return(&domain.Claim{
		Participation: &domain.Participation{PoolID: 2, UserAddress: testAddress, Status: domain.ParticipationClaimed, ClaimedAt: &claimed},
		Fee:           decimal.NewFromInt(50),
	}, nil)

	body, _ := json.Marshal(dto.ClaimRequest{Address: testAddress})
	w := doJSON(r, http.MethodPost, "/api/pools/2/claim", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ClaimResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "50", resp.Fee)
	assert.Equal(t, "CLAIMED", resp.Participation.Status)
	assert.NotNil(t, resp.Participation.ClaimedAt)
}

func TestHandler_ClaimTicket_NotClaimable(t *testing.T) {
	_, participationSvc, _, r := setupRouter(t)

	participationSvc.EXPECT().Claim(mock.Anything, int64(2), testAddress).Return(nil, domain.ErrNotClaimable)

	body, _ := json.Marshal(dto.ClaimRequest{Address: testAddress})
	w := doJSON(r, http.MethodPost, "/api/pools/2/claim", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetUserParticipations(t *testing.T) {
	_, participationSvc, _, r := setupRouter(t)

	participationSvc.EXPECT().ListByUser(mock.Anything, testAddress).Return([]*domain.Participation{
		{ID: "p-1", PoolID: 1, Status: domain.ParticipationWon, JoinedAt: time.Now()},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/users/"+testAddress+"/participations", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ParticipationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_GetUserPools_InvalidAddress(t *testing.T) {
	poolSvc, _, _, r := setupRouter(t)

	poolSvc.EXPECT().ListByCreator(mock.Anything, "bob").Return(nil, domain.ErrValidation)

	w := doJSON(r, http.MethodGet, "/api/users/bob/pools", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	chatID := int64(777)
	userSvc.EXPECT().Register(mock.Anything, domain.CreateUserInput{
		Address:        testAddress,
		TelegramChatID: &chatID,
	}).Return(&domain.User{Address: testAddress, TelegramChatID: &chatID, XP: 0, CreatedAt: time.Now()}, nil)

	body, _ := json.Marshal(dto.CreateUserRequest{Address: testAddress, TelegramChatID: &chatID})
	w := doJSON(r, http.MethodPost, "/api/users", body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Level)
}

func TestHandler_CreateUser_Taken(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrAddressTaken)

	body, _ := json.Marshal(dto.CreateUserRequest{Address: testAddress})
	w := doJSON(r, http.MethodPost, "/api/users", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_MissingAddress(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/users", []byte(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListUsers(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().List(mock.Anything).Return([]*domain.User{
		{Address: testAddress, XP: 250, CreatedAt: time.Now()},
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, 3, resp[0].Level)
}

func TestHandler_GetUser_Profile(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Profile(mock.Anything, testAddress).Return(&domain.UserProfile{
		User:         domain.User{Address: testAddress, XP: 120, CreatedAt: time.Now()},
		Level:        2,
		TokenBalance: decimal.RequireFromString("1500.25"),
		PoolsJoined:  4,
		PoolsWon:     1,
	}, nil)

	w := doJSON(r, http.MethodGet, "/api/users/"+testAddress, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1500.25", resp.TokenBalance)
	assert.Equal(t, 4, resp.PoolsJoined)
	assert.Equal(t, 2, resp.Level)
}

func TestHandler_GetUser_NotFound(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Profile(mock.Anything, testAddress).Return(nil, domain.ErrUserNotFound)

	w := doJSON(r, http.MethodGet, "/api/users/"+testAddress, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
