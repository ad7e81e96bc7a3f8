package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/personal_os/internal/apperrors"
	"github.com/SscSPs/personal_os/internal/core/domain"
	portsrepo "github.com/SscSPs/personal_os/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/personal_os/internal/core/ports/services"
	"github.com/SscSPs/personal_os/internal/core/services"
	"github.com/SscSPs/personal_os/internal/dto"
	"github.com/SscSPs/personal_os/internal/platform/config"
	"github.com/SscSPs/personal_os/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

// ledgerSuite wires every service to a fresh in-memory store per test.
type ledgerSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
	svc   *portssvc.ServiceContainer
}

func (s *ledgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.repos = memory.New().NewRepositoryProvider()
	s.svc = services.NewServiceContainer(
		&config.Config{DefaultCurrency: domain.DefaultCurrency},
		s.repos,
		services.WithClock(func() time.Time { return fixedNow }),
	)
}

func (s *ledgerSuite) createAsset(name string, balance string, primary bool) *domain.Asset {
	asset, err := s.svc.Asset.CreateAsset(s.ctx, dto.CreateAssetRequest{
		Name:      name,
		AssetType: "cash",
		Balance:   dec(balance),
		IsPrimary: primary,
	})
	s.Require().NoError(err)
	return asset
}

func (s *ledgerSuite) createLiability(name string, balance string) *domain.Liability {
	l, err := s.svc.Liability.CreateLiability(s.ctx, dto.CreateLiabilityRequest{
		Name:          name,
		LiabilityType: "credit_card",
		Balance:       dec(balance),
	})
	s.Require().NoError(err)
	return l
}

func (s *ledgerSuite) assertAssetBalance(id int64, want string) {
	s.T().Helper()
	got, err := s.repos.AssetRepo.FindAssetByID(s.ctx, id)
	s.Require().NoError(err)
	s.Truef(got.Balance.Equal(dec(want)), "asset %d balance = %s, want %s", id, got.Balance, want)
}

func (s *ledgerSuite) assertLiabilityBalance(id int64, want string) {
	s.T().Helper()
	got, err := s.repos.LiabilityRepo.FindLiabilityByID(s.ctx, id)
	s.Require().NoError(err)
	s.Truef(got.Balance.Equal(dec(want)), "liability %d balance = %s, want %s", id, got.Balance, want)
}

func (s *ledgerSuite) history(entity domain.EntityType) []domain.AuditLogEntry {
	entries, err := s.svc.Audit.ListHistory(s.ctx, domain.AuditFilter{EntityType: entity, Limit: 200})
	s.Require().NoError(err)
	return entries
}

type TransactionServiceTestSuite struct {
	ledgerSuite
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) TestWalletScenario() {
	wallet := s.createAsset("Wallet", "0", true)

	income, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnIncome,
		Amount:       dec("500"),
		Category:     "Salary",
		TransactedAt: fixedNow,
	})
	s.Require().NoError(err)
	s.Require().NotNil(income.ToAssetID)
	s.Equal(wallet.ID, *income.ToAssetID)
	s.assertAssetBalance(wallet.ID, "500")

	expense, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnExpense,
		Amount:       dec("200"),
		Category:     "Food",
		TransactedAt: fixedNow,
	})
	s.Require().NoError(err)
	s.Require().NotNil(expense.FromAssetID)
	s.Equal(wallet.ID, *expense.FromAssetID)
	s.assertAssetBalance(wallet.ID, "300")

	s.Require().NoError(s.svc.Transaction.DeleteTransaction(s.ctx, income.ID))
	s.assertAssetBalance(wallet.ID, "-200")

	_, err = s.svc.Transaction.GetTransactionByID(s.ctx, income.ID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	entries := s.history(domain.EntityTransaction)
	s.Require().Len(entries, 3)
	s.Equal(domain.AuditDeleted, entries[0].Action)
	s.NotNil(entries[0].BeforeJSON)
	s.Nil(entries[0].AfterJSON)
}

func (s *TransactionServiceTestSuite) TestCardScenario() {
	wallet := s.createAsset("Wallet", "300", true)
	card := s.createLiability("Card", "1000")

	payment, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnLiabilityPayment,
		Amount:       dec("300"),
		Category:     "Card bill",
		TransactedAt: fixedNow,
		FromAssetID:  &wallet.ID,
		LiabilityID:  &card.ID,
	})
	s.Require().NoError(err)
	s.assertAssetBalance(wallet.ID, "0")
	s.assertLiabilityBalance(card.ID, "700")

	updated, err := s.svc.Transaction.UpdateTransaction(s.ctx, payment.ID, dto.UpdateTransactionRequest{
		Amount: dto.Some(dec("100")),
	})
	s.Require().NoError(err)
	s.True(updated.Amount.Equal(dec("100")))
	s.NotNil(updated.UpdatedAt)
	s.assertAssetBalance(wallet.ID, "200")
	s.assertLiabilityBalance(card.ID, "900")
}

func (s *TransactionServiceTestSuite) TestUpdateChangesType() {
	wallet := s.createAsset("Wallet", "1000", true)
	savings := s.createAsset("Savings", "0", false)

	txn, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnIncome,
		Amount:       dec("100"),
		Category:     "Interest",
		TransactedAt: fixedNow,
		ToAssetID:    &savings.ID,
	})
	s.Require().NoError(err)
	s.assertAssetBalance(savings.ID, "100")

	_, err = s.svc.Transaction.UpdateTransaction(s.ctx, txn.ID, dto.UpdateTransactionRequest{
		TxnType:     dto.Some(domain.TxnTransfer),
		FromAssetID: dto.Some(wallet.ID),
	})
	s.Require().NoError(err)
	s.assertAssetBalance(wallet.ID, "900")
	s.assertAssetBalance(savings.ID, "100")
}

func (s *TransactionServiceTestSuite) TestTransferToSameAssetRejected() {
	wallet := s.createAsset("Wallet", "50", true)

	_, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnTransfer,
		Amount:       dec("10"),
		Category:     "Move",
		TransactedAt: fixedNow,
		FromAssetID:  &wallet.ID,
		ToAssetID:    &wallet.ID,
	})
	s.ErrorIs(err, apperrors.ErrInvalidEffect)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.assertAssetBalance(wallet.ID, "50")

	txns, err := s.svc.Transaction.ListTransactions(s.ctx, domain.TransactionFilter{})
	s.Require().NoError(err)
	s.Empty(txns)
}

func (s *TransactionServiceTestSuite) TestRejectedUpdateChangesNothing() {
	wallet := s.createAsset("Wallet", "1000", true)

	txn, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnExpense,
		Amount:       dec("50"),
		Category:     "Coffee",
		TransactedAt: fixedNow,
	})
	s.Require().NoError(err)
	s.assertAssetBalance(wallet.ID, "950")

	_, err = s.svc.Transaction.UpdateTransaction(s.ctx, txn.ID, dto.UpdateTransactionRequest{
		Amount:      dto.Some(dec("75")),
		FromAssetID: dto.Some(int64(9999)),
	})
	s.ErrorIs(err, apperrors.ErrInvalidEffect)

	s.assertAssetBalance(wallet.ID, "950")
	stored, err := s.svc.Transaction.GetTransactionByID(s.ctx, txn.ID)
	s.Require().NoError(err)
	s.True(stored.Amount.Equal(dec("50")))
	s.Nil(stored.UpdatedAt)
	s.Len(s.history(domain.EntityTransaction), 1)
}

func (s *TransactionServiceTestSuite) TestUpdateRejectsNonPositiveAmount() {
	s.createAsset("Wallet", "10", true)
	txn, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnExpense,
		Amount:       dec("5"),
		Category:     "Snacks",
		TransactedAt: fixedNow,
	})
	s.Require().NoError(err)

	_, err = s.svc.Transaction.UpdateTransaction(s.ctx, txn.ID, dto.UpdateTransactionRequest{Amount: dto.Some(dec("0"))})
	s.ErrorIs(err, apperrors.ErrInvalidEffect)

	_, err = s.svc.Transaction.UpdateTransaction(s.ctx, txn.ID, dto.UpdateTransactionRequest{Amount: dto.Null[decimal.Decimal]()})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestCreateWithMissingAccountChangesNothing() {
	_, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnIncome,
		Amount:       dec("10"),
		Category:     "Gift",
		TransactedAt: fixedNow,
		ToAssetID:    ptr(int64(42)),
	})
	s.ErrorIs(err, apperrors.ErrInvalidEffect)

	assets, err := s.svc.Asset.ListAssets(s.ctx)
	s.Require().NoError(err)
	s.Empty(assets)
	s.Empty(s.history(domain.EntityTransaction))
}

func (s *TransactionServiceTestSuite) TestDefaultPrimaryIsCreatedWhenNoAssetExists() {
	txn, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnExpense,
		Amount:       dec("20"),
		Category:     "Taxi",
		TransactedAt: fixedNow,
	})
	s.Require().NoError(err)

	assets, err := s.svc.Asset.ListAssets(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(assets, 1)
	s.Equal(domain.DefaultPrimaryAssetName, assets[0].Name)
	s.Equal(domain.DefaultCurrency, assets[0].Currency)
	s.True(assets[0].IsPrimary)
	s.Equal(assets[0].ID, *txn.FromAssetID)
	s.assertAssetBalance(assets[0].ID, "-20")
}

func (s *TransactionServiceTestSuite) TestLowestIDAssetIsPromoted() {
	first := s.createAsset("Bank", "100", false)
	second := s.createAsset("Cash", "100", false)

	_, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnIncome,
		Amount:       dec("1"),
		Category:     "Cashback",
		TransactedAt: fixedNow,
	})
	s.Require().NoError(err)

	primary, err := s.svc.Asset.GetPrimaryAsset(s.ctx)
	s.Require().NoError(err)
	s.Equal(first.ID, primary.ID)
	s.assertAssetBalance(first.ID, "101")
	s.assertAssetBalance(second.ID, "100")
}

func (s *TransactionServiceTestSuite) TestDeleteMissingTransaction() {
	err := s.svc.Transaction.DeleteTransaction(s.ctx, 404)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *TransactionServiceTestSuite) TestApplyThenReverseIsIdentity() {
	wallet := s.createAsset("Wallet", "12.34", true)
	savings := s.createAsset("Savings", "0.01", false)
	card := s.createLiability("Card", "99.99")

	reqs := []dto.CreateTransactionRequest{
		{TxnType: domain.TxnIncome, Amount: dec("0.10"), Category: "a", TransactedAt: fixedNow},
		{TxnType: domain.TxnExpense, Amount: dec("3.33"), Category: "b", TransactedAt: fixedNow},
		{TxnType: domain.TxnTransfer, Amount: dec("7.07"), Category: "c", TransactedAt: fixedNow, FromAssetID: &wallet.ID, ToAssetID: &savings.ID},
		{TxnType: domain.TxnLiabilityPayment, Amount: dec("11.11"), Category: "d", TransactedAt: fixedNow, LiabilityID: &card.ID},
	}
	for _, req := range reqs {
		txn, err := s.svc.Transaction.CreateTransaction(s.ctx, req)
		s.Require().NoError(err)
		s.Require().NoError(s.svc.Transaction.DeleteTransaction(s.ctx, txn.ID))
	}

	s.assertAssetBalance(wallet.ID, "12.34")
	s.assertAssetBalance(savings.ID, "0.01")
	s.assertLiabilityBalance(card.ID, "99.99")
}

func (s *TransactionServiceTestSuite) TestListTransactionsValidatesFilter() {
	_, err := s.svc.Transaction.ListTransactions(s.ctx, domain.TransactionFilter{TxnType: "refund"})
	s.ErrorIs(err, apperrors.ErrValidation)

	start := fixedNow
	end := fixedNow.AddDate(0, 0, -1)
	_, err = s.svc.Transaction.ListTransactions(s.ctx, domain.TransactionFilter{StartDate: &start, EndDate: &end})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *TransactionServiceTestSuite) TestZeroAccountIDIsInvalidEffect() {
	wallet := s.createAsset("Wallet", "100", true)

	_, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnExpense,
		Amount:       dec("10"),
		Category:     "Food",
		TransactedAt: fixedNow,
		FromAssetID:  ptr(int64(0)),
	})
	s.ErrorIs(err, apperrors.ErrInvalidEffect)
	s.NotErrorIs(err, apperrors.ErrNotFound)
	s.assertAssetBalance(wallet.ID, "100")

	card := s.createLiability("Card", "50")
	_, err = s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnLiabilityPayment,
		Amount:       dec("10"),
		Category:     "Card",
		TransactedAt: fixedNow,
		LiabilityID:  ptr(int64(0)),
	})
	s.ErrorIs(err, apperrors.ErrInvalidEffect)
	s.assertAssetBalance(wallet.ID, "100")
	s.assertLiabilityBalance(card.ID, "50")
}

func (s *TransactionServiceTestSuite) TestSubCentAmountsRejected() {
	wallet := s.createAsset("Wallet", "100.00", true)

	_, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnExpense,
		Amount:       dec("10.005"),
		Category:     "Food",
		TransactedAt: fixedNow,
	})
	s.ErrorIs(err, apperrors.ErrInvalidEffect)
	s.assertAssetBalance(wallet.ID, "100")

	txn, err := s.svc.Transaction.CreateTransaction(s.ctx, dto.CreateTransactionRequest{
		TxnType:      domain.TxnExpense,
		Amount:       dec("10.010"),
		Category:     "Food",
		TransactedAt: fixedNow,
	})
	s.Require().NoError(err)
	s.assertAssetBalance(wallet.ID, "89.99")

	_, err = s.svc.Transaction.UpdateTransaction(s.ctx, txn.ID, dto.UpdateTransactionRequest{Amount: dto.Some(dec("0.125"))})
	s.ErrorIs(err, apperrors.ErrInvalidEffect)
	s.assertAssetBalance(wallet.ID, "89.99")

	s.Require().NoError(s.svc.Transaction.DeleteTransaction(s.ctx, txn.ID))
	s.assertAssetBalance(wallet.ID, "100")
}
