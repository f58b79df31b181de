package chain

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/rizwanmoulvi/tloot-social-pooling-platform/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJoinTx = "0x9f1c3a2b4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f8"

var (
	testCreator = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testAlice   = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func tloot(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(TokenDecimals)), nil))
}

func createPoolTx() domain.CreatePoolTx {
	return domain.CreatePoolTx{
		Type:            domain.PoolTypeLuckyDraw,
		EventName:       "Eras Tour",
		EntryAmount:     decimal.NewFromInt(10),
		TicketPrice:     decimal.NewFromInt(250),
		MaxParticipants: 25,
		Deadline:        time.Now().Add(24 * time.Hour),
	}
}

func TestClient_CreatePool_DecodesPoolCreated(t *testing.T) {
	node := newFakeNode(t)
	node.mineWith(types.ReceiptStatusSuccessful,
		node.eventLog("UserJoined", big.NewInt(3), testAlice, big.NewInt(1), big.NewInt(1)),
		node.eventLog("PoolCreated", big.NewInt(12), uint8(0), testCreator, "Eras Tour"),
	)
	c := newOperatorClient(t, node)

	id, res, err := c.CreatePool(context.Background(), createPoolTx())

	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	require.NotNil(t, res)
	assert.Equal(t, uint64(42), res.BlockNumber)
	assert.Equal(t, uint64(21000), res.GasUsed)
	assert.Equal(t, c.TxURL(res.Hash), res.ExplorerURL)
	assert.Equal(t, 1, node.sentCount())
}

func TestClient_CreatePool_IgnoresLogsOfOtherContracts(t *testing.T) {
	node := newFakeNode(t)
	foreign := node.eventLog("PoolCreated", big.NewInt(99), uint8(0), testCreator, "Other")
	foreign.Address = common.HexToAddress(testUSDT)
	node.mineWith(types.ReceiptStatusSuccessful,
		foreign,
		node.eventLog("PoolCreated", big.NewInt(4), uint8(1), testCreator, "Eras Tour"),
	)
	c := newOperatorClient(t, node)

	id, _, err := c.CreatePool(context.Background(), createPoolTx())

	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
}

func TestClient_CreatePool_MissingEvent(t *testing.T) {
	node := newFakeNode(t)
	node.mineWith(types.ReceiptStatusSuccessful)
	c := newOperatorClient(t, node)

	_, res, err := c.CreatePool(context.Background(), createPoolTx())

	assert.ErrorIs(t, err, domain.ErrEventNotEmitted)
	require.NotNil(t, res)
	assert.NotEmpty(t, res.Hash)
}

func TestClient_CreatePool_Reverted(t *testing.T) {
	node := newFakeNode(t)
	node.mineWith(types.ReceiptStatusFailed)
	c := newOperatorClient(t, node)

	_, _, err := c.CreatePool(context.Background(), createPoolTx())

	assert.ErrorIs(t, err, domain.ErrTxFailed)
}

func TestClient_DecodeJoin(t *testing.T) {
	node := newFakeNode(t)
	c := newTestClient(t, node)
	receipt := newReceipt(common.HexToHash(testJoinTx), types.ReceiptStatusSuccessful, []*types.Log{
		node.eventLog("PoolCreated", big.NewInt(2), uint8(0), testCreator, "Eras Tour"),
		node.eventLog("UserJoined", big.NewInt(2), testAlice, big.NewInt(10_500_000), tloot(1050)),
	})

	ev, err := c.decodeJoin(receipt, c.txResult(receipt))

	require.NoError(t, err)
	assert.Equal(t, int64(2), ev.PoolID)
	assert.Equal(t, testAlice.Hex(), ev.User)
	assert.True(t, decimal.RequireFromString("10.5").Equal(ev.Amount))
	assert.True(t, decimal.NewFromInt(1050).Equal(ev.TlootMinted))
	assert.Equal(t, testJoinTx, ev.Tx.Hash)
}

func TestClient_DecodeJoin_NoEvent(t *testing.T) {
	node := newFakeNode(t)
	c := newTestClient(t, node)
	receipt := newReceipt(common.HexToHash(testJoinTx), types.ReceiptStatusSuccessful, nil)

	_, err := c.decodeJoin(receipt, c.txResult(receipt))

	assert.ErrorIs(t, err, domain.ErrEventNotEmitted)
}

func TestClient_JoinFromReceipt(t *testing.T) {
	node := newFakeNode(t)
	node.addReceipt(common.HexToHash(testJoinTx), types.ReceiptStatusSuccessful,
		node.eventLog("UserJoined", big.NewInt(5), testAlice, big.NewInt(10_000_000), tloot(1000)),
	)
	c := newTestClient(t, node)

	ev, err := c.JoinFromReceipt(context.Background(), testJoinTx)

	require.NoError(t, err)
	assert.Equal(t, int64(5), ev.PoolID)
	assert.Equal(t, testAlice.Hex(), ev.User)
	assert.True(t, decimal.NewFromInt(10).Equal(ev.Amount))
	assert.True(t, decimal.NewFromInt(1000).Equal(ev.TlootMinted))
	assert.Equal(t, uint64(42), ev.Tx.BlockNumber)
}

func TestClient_JoinFromReceipt_FailedTx(t *testing.T) {
	node := newFakeNode(t)
	node.addReceipt(common.HexToHash(testJoinTx), types.ReceiptStatusFailed)
	c := newTestClient(t, node)

	_, err := c.JoinFromReceipt(context.Background(), testJoinTx)

	assert.ErrorIs(t, err, domain.ErrTxFailed)
}

func TestClient_JoinFromReceipt_NotMined(t *testing.T) {
	c := newTestClient(t, newFakeNode(t))

	_, err := c.JoinFromReceipt(context.Background(), testJoinTx)

	assert.ErrorIs(t, err, domain.ErrTxPending)
}

func TestClient_PoolWinners(t *testing.T) {
	node := newFakeNode(t)
	node.returns("getPoolWinners", []common.Address{testAlice, testCreator})
	c := newTestClient(t, node)

	winners, err := c.PoolWinners(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, []string{testAlice.Hex(), testCreator.Hex()}, winners)
}

func TestClient_PoolWinners_FallsBackToWinnerField(t *testing.T) {
	node := newFakeNode(t)
	node.returns("getPool", poolRecord{
		Id:              big.NewInt(2),
		PoolType:        0,
		Status:          1,
		Creator:         testCreator,
		EventName:       "Eras Tour",
		EntryAmount:     big.NewInt(10_000_000),
		TicketPrice:     big.NewInt(250_000_000),
		MaxParticipants: big.NewInt(50),
		Deadline:        big.NewInt(time.Now().Unix()),
		TotalPooled:     big.NewInt(20_000_000),
		Winner:          testAlice,
		Participants:    []common.Address{testAlice, testCreator},
	})
	c := newTestClient(t, node)

	winners, err := c.PoolWinners(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, []string{testAlice.Hex()}, winners)
}

func TestClient_PoolWinners_FallbackWithoutWinner(t *testing.T) {
	node := newFakeNode(t)
	node.returns("getPool", poolRecord{
		Id:              big.NewInt(3),
		Creator:         testCreator,
		EventName:       "Eras Tour",
		EntryAmount:     big.NewInt(10_000_000),
		TicketPrice:     big.NewInt(250_000_000),
		MaxParticipants: big.NewInt(50),
		Deadline:        big.NewInt(time.Now().Unix()),
		TotalPooled:     big.NewInt(0),
		Participants:    []common.Address{},
	})
	c := newTestClient(t, node)

	winners, err := c.PoolWinners(context.Background(), 3)

	require.NoError(t, err)
	assert.Empty(t, winners)
}
