package actions

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/ledger"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func TestDeleteAccount_IgnoresMissingID(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockAcct := new(mockAccountTable)
	mockAcct.On("DeleteByID", mock.Anything, id).Return(int64(0), nil)

	action := &DeleteAccount{ID: id}
	err := action.Perform(context.Background(), &storage.Writer{Accounts: mockAcct})

	assert.NoError(t, err)
	mockAcct.AssertExpectations(t)
}

func TestDeleteTransactions_ReportsCount(t *testing.T) {
	ids := []uuid.UUID{uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4())}

	mockTxn := new(mockTransactionTable)
	mockTxn.On("DeleteByIDs", mock.Anything, ids).Return(int64(2), nil)

	action := &DeleteTransactions{IDs: ids}
	err := action.Perform(context.Background(), &storage.Writer{Transactions: mockTxn})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), action.Deleted)
	mockTxn.AssertExpectations(t)
}

func TestEraseDateRange_ReportsCount(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	mockTxn := new(mockTransactionTable)
	mockTxn.On("DeleteByDateRange", mock.Anything, start, end).Return(int64(7), nil)

	action := &EraseDateRange{Start: start, End: end}
	err := action.Perform(context.Background(), &storage.Writer{Transactions: mockTxn})

	assert.NoError(t, err)
	assert.Equal(t, int64(7), action.Deleted)
	mockTxn.AssertExpectations(t)
}

func TestEraseDateRange_SingleDayWindow(t *testing.T) {
	day := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)

	mockTxn := new(mockTransactionTable)
	mockTxn.On("DeleteByDateRange", mock.Anything, day, day).Return(int64(1), nil)

	action := &EraseDateRange{Start: day, End: day}
	err := action.Perform(context.Background(), &storage.Writer{Transactions: mockTxn})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), action.Deleted)
	mockTxn.AssertExpectations(t)
}

func TestEraseDateRange_MissingBounds(t *testing.T) {
	mockTxn := new(mockTransactionTable)

	action := &EraseDateRange{End: time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)}
	err := action.Perform(context.Background(), &storage.Writer{Transactions: mockTxn})

	var valErr *ledger.ValidationError
	assert.ErrorAs(t, err, &valErr)
	mockTxn.AssertNotCalled(t, "DeleteByDateRange")
}

func TestEraseDateRange_EndBeforeStart(t *testing.T) {
	mockTxn := new(mockTransactionTable)

	action := &EraseDateRange{
		Start: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	err := action.Perform(context.Background(), &storage.Writer{Transactions: mockTxn})

	var valErr *ledger.ValidationError
	assert.ErrorAs(t, err, &valErr)
	mockTxn.AssertNotCalled(t, "DeleteByDateRange")
}
